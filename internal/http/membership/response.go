package membership

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/gymd/internal/membership"
)

type membershipResponse struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"user_id"`
	State     membership.State `json:"state"`
	Credits   int              `json:"credits"`
	StartDate string           `json:"start_date"`
	EndDate   *string          `json:"end_date,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt *time.Time       `json:"updated_at,omitempty"`
}

func toResponse(m *membership.Membership) membershipResponse {
	resp := membershipResponse{
		ID:        m.ID,
		UserID:    m.UserID,
		State:     m.State,
		Credits:   m.Credits,
		StartDate: m.StartDate.Format(time.DateOnly),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	if m.EndDate != nil {
		resp.EndDate = new(m.EndDate.Format(time.DateOnly))
	}

	return resp
}

func toResponseList(ms []*membership.Membership) []membershipResponse {
	resp := make([]membershipResponse, len(ms))
	for i, m := range ms {
		resp[i] = toResponse(m)
	}

	return resp
}
