package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/gymd/internal/billing"
)

type invoiceResponse struct {
	ID          uuid.UUID       `json:"id"`
	UserID      *uuid.UUID      `json:"user_id,omitempty"`
	Date        time.Time       `json:"date"`
	Status      billing.Status  `json:"status"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Lines       []lineResponse  `json:"lines"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty"`
}

type lineResponse struct {
	ID          uuid.UUID       `json:"id"`
	InvoiceID   uuid.UUID       `json:"invoice_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

func toResponse(inv *billing.Invoice) invoiceResponse {
	resp := invoiceResponse{
		ID:          inv.ID,
		UserID:      inv.UserID,
		Date:        inv.Date,
		Status:      inv.Status,
		Description: inv.Description,
		Amount:      inv.Amount,
		Lines:       make([]lineResponse, 0, len(inv.Lines)),
		CreatedAt:   inv.CreatedAt,
		UpdatedAt:   inv.UpdatedAt,
	}

	for _, line := range inv.Lines {
		resp.Lines = append(resp.Lines, toLineResponse(line))
	}

	return resp
}

func toLineResponse(line *billing.InvoiceLine) lineResponse {
	return lineResponse{
		ID:          line.ID,
		InvoiceID:   line.InvoiceID,
		Description: line.Description,
		Amount:      line.Amount,
		CreatedAt:   line.CreatedAt,
	}
}

func toResponseList(invs []*billing.Invoice) []invoiceResponse {
	resp := make([]invoiceResponse, len(invs))
	for i, inv := range invs {
		resp[i] = toResponse(inv)
	}

	return resp
}
