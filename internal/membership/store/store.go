package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/gymd/internal/membership"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanMembership reads a membership row from the scanner.
// Expected column order: id, user_id, state, credits, start_date, end_date, created_at, updated_at
func scanMembership(s scanner) (*membership.Membership, error) {
	var m membership.Membership

	var stateStr string

	if err := s.Scan(
		&m.ID, &m.UserID, &stateStr, &m.Credits, &m.StartDate, &m.EndDate,
		&m.CreatedAt, &m.UpdatedAt,
	); err != nil {
		return nil, err
	}

	m.State = membership.State(stateStr)

	return &m, nil
}

const selectMembershipColumns = `
	m.id, m.user_id, m.state, m.credits, m.start_date, m.end_date, m.created_at, m.updated_at
`

func (s *Store) CreateMembership(ctx context.Context, m *membership.Membership) error {
	query := `
		INSERT INTO memberships (user_id, state, credits, start_date, end_date, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		m.UserID,
		m.State,
		m.Credits,
		m.StartDate,
		m.EndDate,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating membership: %w", err)
	}

	return nil
}

func (s *Store) GetMembership(ctx context.Context, id uuid.UUID) (*membership.Membership, error) {
	query := `SELECT ` + selectMembershipColumns + `
		FROM memberships m
		WHERE m.id = $1`

	m, err := scanMembership(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, membership.ErrNotFound
		}

		return nil, fmt.Errorf("getting membership: %w", err)
	}

	return m, nil
}

func (s *Store) ListMemberships(ctx context.Context, filter membership.ListFilter) ([]*membership.Membership, error) {
	query := `SELECT ` + selectMembershipColumns + `
		FROM memberships m
		WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.UserID != nil {
		query += fmt.Sprintf(" AND m.user_id = $%d", argIdx)

		args = append(args, *filter.UserID)
		argIdx++
	}

	if filter.State != nil {
		query += fmt.Sprintf(" AND m.state = $%d", argIdx)

		args = append(args, *filter.State)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND m.start_date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND m.end_date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY m.created_at ASC, m.id ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing memberships: %w", err)
	}
	defer rows.Close()

	var ms []*membership.Membership

	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning membership: %w", err)
		}

		ms = append(ms, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating membership rows: %w", err)
	}

	return ms, nil
}

func (s *Store) UpdateMembership(ctx context.Context, m *membership.Membership) error {
	query := `
		UPDATE memberships
		SET state = $1, credits = $2, start_date = $3, end_date = $4, updated_at = NOW()
		WHERE id = $5
	`

	res, err := s.db.ExecContext(ctx, query,
		m.State,
		m.Credits,
		m.StartDate,
		m.EndDate,
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("updating membership: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return membership.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteMembership(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM memberships WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting membership: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return membership.ErrNotFound
	}

	return nil
}
