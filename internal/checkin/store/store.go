package store

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/gymd/internal/billing"
	"github.com/MrJamesThe3rd/gymd/internal/checkin"
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

func scanCheckin(s scanner) (*checkin.Checkin, error) {
	var c checkin.Checkin

	if err := s.Scan(&c.ID, &c.UserID, &c.MembershipID, &c.Timestamp); err != nil {
		return nil, err
	}

	return &c, nil
}

const selectCheckinColumns = `c.id, c.user_id, c.membership_id, c.timestamp`

func (s *Store) GetCheckin(ctx context.Context, id uuid.UUID) (*checkin.Checkin, error) {
	query := `SELECT ` + selectCheckinColumns + ` FROM checkins c WHERE c.id = $1`

	c, err := scanCheckin(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, checkin.ErrNotFound
		}

		return nil, fmt.Errorf("getting checkin: %w", err)
	}

	return c, nil
}

func (s *Store) ListCheckins(ctx context.Context, filter checkin.ListFilter) ([]*checkin.Checkin, error) {
	query := `SELECT ` + selectCheckinColumns + ` FROM checkins c WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.UserID != nil {
		query += fmt.Sprintf(" AND c.user_id = $%d", argIdx)

		args = append(args, *filter.UserID)
		argIdx++
	}

	if filter.MembershipID != nil {
		query += fmt.Sprintf(" AND c.membership_id = $%d", argIdx)

		args = append(args, *filter.MembershipID)
		argIdx++
	}

	query += " ORDER BY c.timestamp ASC, c.id ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing checkins: %w", err)
	}
	defer rows.Close()

	var cs []*checkin.Checkin

	for rows.Next() {
		c, err := scanCheckin(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning checkin: %w", err)
		}

		cs = append(cs, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating checkin rows: %w", err)
	}

	return cs, nil
}

func (s *Store) UpdateCheckin(ctx context.Context, c *checkin.Checkin) error {
	// timestamp is never rewritten.
	query := `
		UPDATE checkins
		SET user_id = $1, membership_id = $2
		WHERE id = $3
	`

	res, err := s.db.ExecContext(ctx, query, c.UserID, c.MembershipID, c.ID)
	if err != nil {
		return fmt.Errorf("updating checkin: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return checkin.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteCheckin(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM checkins WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting checkin: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return checkin.ErrNotFound
	}

	return nil
}

type checkinTx struct {
	tx *sql.Tx
}

func (s *Store) Begin(ctx context.Context) (checkin.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning checkin tx: %w", err)
	}

	return &checkinTx{tx: dbTx}, nil
}

func (t *checkinTx) Commit() error   { return t.tx.Commit() }
func (t *checkinTx) Rollback() error { return t.tx.Rollback() }

// MembershipForUpdate locks the membership row for the rest of the
// transaction so concurrent check-ins on the same membership serialize.
func (t *checkinTx) MembershipForUpdate(ctx context.Context, id uuid.UUID) (*membership.Membership, error) {
	query := `
		SELECT m.id, m.user_id, m.state, m.credits, m.start_date, m.end_date, m.created_at, m.updated_at
		FROM memberships m
		WHERE m.id = $1
		FOR UPDATE
	`

	var m membership.Membership

	var stateStr string

	err := t.tx.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.UserID, &stateStr, &m.Credits, &m.StartDate, &m.EndDate,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, membership.ErrNotFound
		}

		return nil, fmt.Errorf("locking membership: %w", err)
	}

	m.State = membership.State(stateStr)

	return &m, nil
}

func (t *checkinTx) UserExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	if err := t.tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking user: %w", err)
	}

	return exists, nil
}

func (t *checkinTx) UpdateCredits(ctx context.Context, membershipID uuid.UUID, credits int) error {
	query := `
		UPDATE memberships
		SET credits = $1, updated_at = NOW()
		WHERE id = $2
	`

	if _, err := t.tx.ExecContext(ctx, query, credits, membershipID); err != nil {
		return fmt.Errorf("updating credits: %w", err)
	}

	return nil
}

func (t *checkinTx) CreateCheckin(ctx context.Context, c *checkin.Checkin) error {
	query := `
		INSERT INTO checkins (user_id, membership_id)
		VALUES ($1, $2)
		RETURNING id, timestamp
	`

	err := t.tx.QueryRowContext(ctx, query, c.UserID, c.MembershipID).Scan(&c.ID, &c.Timestamp)
	if err != nil {
		return fmt.Errorf("creating checkin: %w", err)
	}

	return nil
}

func invoiceLockKey(day time.Time) int64 {
	h := fnv.New64a()
	h.Write([]byte("invoice-date"))
	h.Write([]byte{0})
	h.Write([]byte(day.Format("2006-01-02")))

	return int64(h.Sum64())
}

// InvoiceForDate resolves the single invoice for the given calendar day,
// creating it with outstanding status on first use. An advisory lock keyed
// on the date serializes concurrent creators across transactions.
func (t *checkinTx) InvoiceForDate(ctx context.Context, day time.Time) (*billing.Invoice, error) {
	lockKey := invoiceLockKey(day)
	if _, err := t.tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", lockKey); err != nil {
		return nil, fmt.Errorf("acquiring invoice lock: %w", err)
	}

	selectQuery := `
		SELECT i.id, i.user_id, i.date, i.status, i.description, i.amount, i.created_at, i.updated_at
		FROM invoices i
		WHERE i.date = $1
		ORDER BY i.created_at ASC, i.id ASC
		LIMIT 1
	`

	var inv billing.Invoice

	var statusStr string

	err := t.tx.QueryRowContext(ctx, selectQuery, day.Format("2006-01-02")).Scan(
		&inv.ID, &inv.UserID, &inv.Date, &statusStr, &inv.Description, &inv.Amount,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err == nil {
		inv.Status = billing.Status(statusStr)
		return &inv, nil
	}

	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("finding invoice for date: %w", err)
	}

	insertQuery := `
		INSERT INTO invoices (date, status, description, amount, created_at)
		VALUES ($1, $2, '', 0, NOW())
		RETURNING id, date, created_at
	`

	inv.Status = billing.StatusOutstanding
	if err := t.tx.QueryRowContext(ctx, insertQuery, day.Format("2006-01-02"), billing.StatusOutstanding).Scan(
		&inv.ID, &inv.Date, &inv.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("creating invoice for date: %w", err)
	}

	return &inv, nil
}

func (t *checkinTx) CreateLine(ctx context.Context, line *billing.InvoiceLine) error {
	query := `
		INSERT INTO invoice_lines (invoice_id, description, amount, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`

	err := t.tx.QueryRowContext(ctx, query, line.InvoiceID, line.Description, line.Amount).
		Scan(&line.ID, &line.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating invoice line: %w", err)
	}

	return nil
}

func (t *checkinTx) LinkInvoice(ctx context.Context, membershipID, invoiceID uuid.UUID) error {
	query := `
		INSERT INTO membership_invoices (membership_id, invoice_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	if _, err := t.tx.ExecContext(ctx, query, membershipID, invoiceID); err != nil {
		return fmt.Errorf("linking invoice to membership: %w", err)
	}

	return nil
}
