package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=billing
type Repository interface {
	CreateInvoice(ctx context.Context, inv *Invoice) error
	GetInvoice(ctx context.Context, id uuid.UUID) (*Invoice, error)
	ListInvoices(ctx context.Context, filter ListFilter) ([]*Invoice, error)
	UpdateInvoice(ctx context.Context, inv *Invoice) error
	DeleteInvoice(ctx context.Context, id uuid.UUID) error

	CreateLine(ctx context.Context, line *InvoiceLine) error
	ListByMembership(ctx context.Context, membershipID uuid.UUID) ([]*Invoice, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	UserID      *uuid.UUID
	Date        time.Time
	Status      Status
	Description string
	Amount      decimal.Decimal
}

type ListFilter struct {
	UserID    *uuid.UUID
	Status    *Status
	StartDate *time.Time
	EndDate   *time.Time
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Invoice, error) {
	if !params.Status.Valid() {
		return nil, fmt.Errorf("invalid status %q", params.Status)
	}

	inv := &Invoice{
		UserID:      params.UserID,
		Date:        params.Date,
		Status:      params.Status,
		Description: params.Description,
		Amount:      params.Amount,
	}
	if err := s.repo.CreateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	return s.repo.GetInvoice(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Invoice, error) {
	return s.repo.ListInvoices(ctx, filter)
}

func (s *Service) Update(ctx context.Context, inv *Invoice) error {
	if !inv.Status.Valid() {
		return fmt.Errorf("invalid status %q", inv.Status)
	}

	return s.repo.UpdateInvoice(ctx, inv)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteInvoice(ctx, id)
}

// AddLine appends a line to an existing invoice. The description must be
// non-empty and the amount non-negative.
func (s *Service) AddLine(ctx context.Context, invoiceID uuid.UUID, description string, amount decimal.Decimal) (*InvoiceLine, error) {
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", ErrInvalidLine)
	}

	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", ErrInvalidLine)
	}

	if _, err := s.repo.GetInvoice(ctx, invoiceID); err != nil {
		return nil, err
	}

	line := &InvoiceLine{
		InvoiceID:   invoiceID,
		Description: description,
		Amount:      amount,
	}
	if err := s.repo.CreateLine(ctx, line); err != nil {
		return nil, err
	}

	return line, nil
}

// ListByMembership returns the invoices linked to a membership.
func (s *Service) ListByMembership(ctx context.Context, membershipID uuid.UUID) ([]*Invoice, error) {
	return s.repo.ListByMembership(ctx, membershipID)
}
