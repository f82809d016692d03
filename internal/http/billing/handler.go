package billing

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
)

type Handler struct {
	svc *billing.Service
}

func NewHandler(svc *billing.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/add_line", h.addLine)
}

type createInvoiceRequest struct {
	UserID      *uuid.UUID      `json:"user_id"`
	Date        string          `json:"date"`
	Status      billing.Status  `json:"status"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		httputil.Detail(w, http.StatusBadRequest, "invalid date")
		return
	}

	status := req.Status
	if status == "" {
		status = billing.StatusOutstanding
	}

	inv, err := h.svc.Create(r.Context(), billing.CreateParams{
		UserID:      req.UserID,
		Date:        date,
		Status:      status,
		Description: req.Description,
		Amount:      req.Amount,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(inv)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := billing.ListFilter{}

	if s := r.URL.Query().Get("user"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.UserID = new(id)
		}
	}

	if s := r.URL.Query().Get("status"); s != "" {
		filter.Status = new(billing.Status(s))
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

	invs, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(invs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	inv, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, billing.ErrNotFound) {
			http.Error(w, "invoice not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(inv)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateInvoiceRequest struct {
	Date        *string          `json:"date,omitempty"`
	Status      *billing.Status  `json:"status,omitempty"`
	Description *string          `json:"description,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	inv, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, billing.ErrNotFound) {
			http.Error(w, "invoice not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			httputil.Detail(w, http.StatusBadRequest, "invalid date")
			return
		}

		inv.Date = date
	}

	if req.Status != nil {
		inv.Status = *req.Status
	}

	if req.Description != nil {
		inv.Description = *req.Description
	}

	if req.Amount != nil {
		inv.Amount = *req.Amount
	}

	if err := h.svc.Update(r.Context(), inv); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(inv)); err != nil {
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
		if errors.Is(err, billing.ErrNotFound) {
			http.Error(w, "invoice not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type addLineRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

func (h *Handler) addLine(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req addLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Detail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	line, err := h.svc.AddLine(r.Context(), id, req.Description, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, billing.ErrInvalidLine):
			httputil.Detail(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, billing.ErrNotFound):
			http.Error(w, "invoice not found", http.StatusNotFound)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toLineResponse(line)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// parseDate accepts calendar dates with or without a time component.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}

	return time.Parse(time.RFC3339, s)
}
