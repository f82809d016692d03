package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/gymd/internal/importer"
	"github.com/MrJamesThe3rd/gymd/internal/membership"
	"github.com/MrJamesThe3rd/gymd/internal/user"
)

type Handler struct {
	importSvc     *importer.Service
	userSvc       *user.Service
	membershipSvc *membership.Service
}

func NewHandler(importSvc *importer.Service, userSvc *user.Service, membershipSvc *membership.Service) *Handler {
	return &Handler{
		importSvc:     importSvc,
		userSvc:       userSvc,
		membershipSvc: membershipSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type membershipResponse struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"user_id"`
	State     membership.State `json:"state"`
	Credits   int              `json:"credits"`
	StartDate string           `json:"start_date"`
	EndDate   *string          `json:"end_date,omitempty"`
}

type importSuccessResponse struct {
	Imported    int                  `json:"imported"`
	Skipped     int                  `json:"skipped"`
	Memberships []membershipResponse `json:"memberships"`
}

// importCSV ingests a roster export: one user (matched or created by email)
// and one membership per row. Rows that fail to import are counted and
// logged, not fatal.
func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	format := importer.Format(r.FormValue("format"))
	if format == "" {
		format = importer.FormatRoster
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	records, err := h.importSvc.Import(format, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := importSuccessResponse{
		Memberships: make([]membershipResponse, 0, len(records)),
	}

	for _, rec := range records {
		u, err := h.userSvc.EnsureByEmail(r.Context(), rec.Email, rec.Name)
		if err != nil {
			slog.Warn("skipping roster row", "email", rec.Email, "error", err)
			resp.Skipped++

			continue
		}

		m, err := h.membershipSvc.Create(r.Context(), membership.CreateParams{
			UserID:    u.ID,
			State:     rec.State,
			Credits:   rec.Credits,
			StartDate: rec.StartDate,
			EndDate:   rec.EndDate,
		})
		if err != nil {
			slog.Warn("skipping roster row", "email", rec.Email, "error", err)
			resp.Skipped++

			continue
		}

		resp.Imported++
		resp.Memberships = append(resp.Memberships, toMembershipResponse(m))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toMembershipResponse(m *membership.Membership) membershipResponse {
	resp := membershipResponse{
		ID:        m.ID,
		UserID:    m.UserID,
		State:     m.State,
		Credits:   m.Credits,
		StartDate: m.StartDate.Format(time.DateOnly),
	}

	if m.EndDate != nil {
		resp.EndDate = new(m.EndDate.Format(time.DateOnly))
	}

	return resp
}
