package membership

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=membership
type Repository interface {
	CreateMembership(ctx context.Context, m *Membership) error
	GetMembership(ctx context.Context, id uuid.UUID) (*Membership, error)
	ListMemberships(ctx context.Context, filter ListFilter) ([]*Membership, error)
	UpdateMembership(ctx context.Context, m *Membership) error
	DeleteMembership(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	UserID    uuid.UUID
	State     State
	Credits   int
	StartDate time.Time
	EndDate   *time.Time
}

// ListFilter narrows membership listings. StartDate is an inclusive lower
// bound on start_date; EndDate an inclusive upper bound on end_date.
type ListFilter struct {
	UserID    *uuid.UUID
	State     *State
	StartDate *time.Time
	EndDate   *time.Time
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Membership, error) {
	if !params.State.Valid() {
		return nil, fmt.Errorf("invalid state %q", params.State)
	}

	m := &Membership{
		UserID:    params.UserID,
		State:     params.State,
		Credits:   params.Credits,
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
	}
	if err := s.repo.CreateMembership(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Membership, error) {
	return s.repo.GetMembership(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Membership, error) {
	return s.repo.ListMemberships(ctx, filter)
}

func (s *Service) Update(ctx context.Context, m *Membership) error {
	if !m.State.Valid() {
		return fmt.Errorf("invalid state %q", m.State)
	}

	return s.repo.UpdateMembership(ctx, m)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteMembership(ctx, id)
}
