package checkin

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/gymd/internal/billing"
	"github.com/MrJamesThe3rd/gymd/internal/membership"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=checkin
type Repository interface {
	GetCheckin(ctx context.Context, id uuid.UUID) (*Checkin, error)
	ListCheckins(ctx context.Context, filter ListFilter) ([]*Checkin, error)
	UpdateCheckin(ctx context.Context, c *Checkin) error
	DeleteCheckin(ctx context.Context, id uuid.UUID) error

	Begin(ctx context.Context) (Tx, error)
}

// Tx is the unit of work for a check-in. The membership row stays locked
// from MembershipForUpdate until Commit or Rollback.
type Tx interface {
	MembershipForUpdate(ctx context.Context, id uuid.UUID) (*membership.Membership, error)
	UserExists(ctx context.Context, id uuid.UUID) (bool, error)
	UpdateCredits(ctx context.Context, membershipID uuid.UUID, credits int) error
	CreateCheckin(ctx context.Context, c *Checkin) error
	InvoiceForDate(ctx context.Context, day time.Time) (*billing.Invoice, error)
	CreateLine(ctx context.Context, line *billing.InvoiceLine) error
	LinkInvoice(ctx context.Context, membershipID, invoiceID uuid.UUID) error
	Commit() error
	Rollback() error
}

type ListFilter struct {
	UserID       *uuid.UUID
	MembershipID *uuid.UUID
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create performs a check-in as one atomic unit: lock and re-validate the
// membership, consume a credit, record the check-in, and bill a line on the
// day's invoice (created on first use, then reused for the rest of the day).
// Any failure rolls the whole unit back.
func (s *Service) Create(ctx context.Context, userID, membershipID uuid.UUID) (*Checkin, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin checkin: %w", err)
	}
	defer tx.Rollback()

	m, err := tx.MembershipForUpdate(ctx, membershipID)
	if err != nil {
		return nil, err
	}

	if err := membership.CanCheckIn(m, time.Now()); err != nil {
		return nil, err
	}

	ok, err := tx.UserExists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("checking user: %w", err)
	}

	if !ok {
		return nil, ErrUserNotFound
	}

	if err := tx.UpdateCredits(ctx, m.ID, m.Credits-1); err != nil {
		return nil, fmt.Errorf("updating credits: %w", err)
	}

	c := &Checkin{
		UserID:       userID,
		MembershipID: membershipID,
	}
	if err := tx.CreateCheckin(ctx, c); err != nil {
		return nil, fmt.Errorf("creating checkin: %w", err)
	}

	inv, err := tx.InvoiceForDate(ctx, time.Now())
	if err != nil {
		return nil, fmt.Errorf("resolving invoice: %w", err)
	}

	line := &billing.InvoiceLine{
		InvoiceID:   inv.ID,
		Description: LineDescription,
		Amount:      decimal.Zero,
	}
	if err := tx.CreateLine(ctx, line); err != nil {
		return nil, fmt.Errorf("creating invoice line: %w", err)
	}

	if err := tx.LinkInvoice(ctx, membershipID, inv.ID); err != nil {
		return nil, fmt.Errorf("linking invoice: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit checkin: %w", err)
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Checkin, error) {
	return s.repo.GetCheckin(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Checkin, error) {
	return s.repo.ListCheckins(ctx, filter)
}

// Update reassigns a check-in to another membership. The timestamp is
// immutable.
func (s *Service) Update(ctx context.Context, c *Checkin) error {
	return s.repo.UpdateCheckin(ctx, c)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteCheckin(ctx, id)
}
