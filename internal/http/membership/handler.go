package membership

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/gymd/internal/billing"
	"github.com/MrJamesThe3rd/gymd/internal/http/httputil"
	"github.com/MrJamesThe3rd/gymd/internal/membership"
)

type Handler struct {
	svc        *membership.Service
	billingSvc *billing.Service
}

func NewHandler(svc *membership.Service, billingSvc *billing.Service) *Handler {
	return &Handler{svc: svc, billingSvc: billingSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Get("/{id}/invoices", h.invoices)
}

type createMembershipRequest struct {
	UserID    uuid.UUID        `json:"user_id"`
	State     membership.State `json:"state"`
	Credits   int              `json:"credits"`
	StartDate string           `json:"start_date"`
	EndDate   *string          `json:"end_date"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createMembershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	start, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		httputil.Detail(w, http.StatusBadRequest, "invalid start_date")
		return
	}

	var end *time.Time

	if req.EndDate != nil && *req.EndDate != "" {
		t, err := time.Parse(time.DateOnly, *req.EndDate)
		if err != nil {
			httputil.Detail(w, http.StatusBadRequest, "invalid end_date")
			return
		}

		end = &t
	}

	state := req.State
	if state == "" {
		state = membership.StateActive
	}

	m, err := h.svc.Create(r.Context(), membership.CreateParams{
		UserID:    req.UserID,
		State:     state,
		Credits:   req.Credits,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(m)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := membership.ListFilter{}

	if s := r.URL.Query().Get("user"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.UserID = new(id)
		}
	}

	if s := r.URL.Query().Get("state"); s != "" {
		filter.State = new(membership.State(s))
	}

	if s := r.URL.Query().Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.StartDate = new(t)
		}
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.EndDate = new(t)
		}
	}

	ms, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(ms)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	m, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, membership.ErrNotFound) {
			http.Error(w, "membership not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(m)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateMembershipRequest struct {
	State     *membership.State `json:"state,omitempty"`
	Credits   *int              `json:"credits,omitempty"`
	StartDate *string           `json:"start_date,omitempty"`
	EndDate   *string           `json:"end_date,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateMembershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, membership.ErrNotFound) {
			http.Error(w, "membership not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.State != nil {
		m.State = *req.State
	}

	if req.Credits != nil {
		m.Credits = *req.Credits
	}

	if req.StartDate != nil {
		start, err := time.Parse(time.DateOnly, *req.StartDate)
		if err != nil {
			httputil.Detail(w, http.StatusBadRequest, "invalid start_date")
			return
		}

		m.StartDate = start
	}

	if req.EndDate != nil {
		if *req.EndDate == "" {
			m.EndDate = nil
		} else {
			end, err := time.Parse(time.DateOnly, *req.EndDate)
			if err != nil {
				httputil.Detail(w, http.StatusBadRequest, "invalid end_date")
				return
			}

			m.EndDate = &end
		}
	}

	if err := h.svc.Update(r.Context(), m); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(m)); err != nil {
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
		if errors.Is(err, membership.ErrNotFound) {
			http.Error(w, "membership not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type invoiceResponse struct {
	ID          uuid.UUID       `json:"id"`
	UserID      *uuid.UUID      `json:"user_id,omitempty"`
	Date        time.Time       `json:"date"`
	Status      billing.Status  `json:"status"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (h *Handler) invoices(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if _, err := h.svc.Get(r.Context(), id); err != nil {
		if errors.Is(err, membership.ErrNotFound) {
			http.Error(w, "membership not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	invs, err := h.billingSvc.ListByMembership(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]invoiceResponse, 0, len(invs))
	for _, inv := range invs {
		resp = append(resp, invoiceResponse{
			ID:          inv.ID,
			UserID:      inv.UserID,
			Date:        inv.Date,
			Status:      inv.Status,
			Description: inv.Description,
			Amount:      inv.Amount,
			CreatedAt:   inv.CreatedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
