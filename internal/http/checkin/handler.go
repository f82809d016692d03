package checkin

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/gymd/internal/checkin"
	"github.com/MrJamesThe3rd/gymd/internal/http/httputil"
	"github.com/MrJamesThe3rd/gymd/internal/http/middleware"
	"github.com/MrJamesThe3rd/gymd/internal/membership"
)

type Handler struct {
	svc *checkin.Service
}

func NewHandler(svc *checkin.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type checkinResponse struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user"`
	MembershipID uuid.UUID `json:"membership"`
	Timestamp    time.Time `json:"timestamp"`
}

func toResponse(c *checkin.Checkin) checkinResponse {
	return checkinResponse{
		ID:           c.ID,
		UserID:       c.UserID,
		MembershipID: c.MembershipID,
		Timestamp:    c.Timestamp,
	}
}

type createCheckinRequest struct {
	UserID       *uuid.UUID `json:"user"`
	MembershipID uuid.UUID  `json:"membership"`
}

// create records a check-in. The user defaults to the authenticated caller
// when the body omits one. Ineligible memberships are rejected with the
// reason in the detail body.
func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createCheckinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Detail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.MembershipID == uuid.Nil {
		httputil.Detail(w, http.StatusBadRequest, "membership is required")
		return
	}

	userID := uuid.Nil
	if req.UserID != nil {
		userID = *req.UserID
	}

	if userID == uuid.Nil {
		caller, ok := middleware.GetUserID(r.Context())
		if !ok {
			http.Error(w, "missing authorization", http.StatusUnauthorized)
			return
		}

		userID = caller
	}

	c, err := h.svc.Create(r.Context(), userID, req.MembershipID)
	if err != nil {
		if isRejection(err) {
			httputil.Detail(w, http.StatusBadRequest, err.Error())
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// isRejection reports whether a check-in failure was caused by the request
// rather than the system.
func isRejection(err error) bool {
	return errors.Is(err, membership.ErrCanceled) ||
		errors.Is(err, membership.ErrNoCredits) ||
		errors.Is(err, membership.ErrExpired) ||
		errors.Is(err, membership.ErrNotStarted) ||
		errors.Is(err, membership.ErrNotFound) ||
		errors.Is(err, checkin.ErrUserNotFound)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := checkin.ListFilter{}

	if s := r.URL.Query().Get("user"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.UserID = new(id)
		}
	}

	if s := r.URL.Query().Get("membership"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.MembershipID = new(id)
		}
	}

	cs, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]checkinResponse, len(cs))
	for i, c := range cs {
		resp[i] = toResponse(c)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, checkin.ErrNotFound) {
			http.Error(w, "checkin not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateCheckinRequest struct {
	UserID       *uuid.UUID `json:"user,omitempty"`
	MembershipID *uuid.UUID `json:"membership,omitempty"`
}

// update reassigns a recorded check-in. The timestamp is immutable.
func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateCheckinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, checkin.ErrNotFound) {
			http.Error(w, "checkin not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.UserID != nil {
		c.UserID = *req.UserID
	}

	if req.MembershipID != nil {
		c.MembershipID = *req.MembershipID
	}

	if err := h.svc.Update(r.Context(), c); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, checkin.ErrNotFound) {
			http.Error(w, "checkin not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
