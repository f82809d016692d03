package billing

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the lifecycle state of an invoice. It is the single
// source of truth for invoice statuses; handlers and stores consume it.
type Status string

const (
	StatusOutstanding Status = "outstanding"
	StatusPaid        Status = "paid"
	StatusVoid        Status = "void"
)

func (s Status) Valid() bool {
	switch s {
	case StatusOutstanding, StatusPaid, StatusVoid:
		return true
	}

	return false
}

var (
	ErrNotFound    = errors.New("invoice not found")
	ErrInvalidLine = errors.New("invalid invoice line")
)

// Invoice is a billing document. Lines are owned by the invoice and are
// deleted with it.
type Invoice struct {
	ID          uuid.UUID
	UserID      *uuid.UUID
	Date        time.Time
	Status      Status
	Description string
	Amount      decimal.Decimal
	Lines       []*InvoiceLine
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// InvoiceLine is an itemized charge on an invoice. Amount is never null;
// zero is the floor default.
type InvoiceLine struct {
	ID          uuid.UUID
	InvoiceID   uuid.UUID
	Description string
	Amount      decimal.Decimal
	CreatedAt   time.Time
}
