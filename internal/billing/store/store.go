package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/gymd/internal/billing"
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

// scanInvoice reads an invoice row from the scanner.
// Expected column order: id, user_id, date, status, description, amount, created_at, updated_at
func scanInvoice(s scanner) (*billing.Invoice, error) {
	var inv billing.Invoice

	var statusStr string

	if err := s.Scan(
		&inv.ID, &inv.UserID, &inv.Date, &statusStr, &inv.Description, &inv.Amount,
		&inv.CreatedAt, &inv.UpdatedAt,
	); err != nil {
		return nil, err
	}

	inv.Status = billing.Status(statusStr)

	return &inv, nil
}

const selectInvoiceColumns = `
	i.id, i.user_id, i.date, i.status, i.description, i.amount, i.created_at, i.updated_at
`

func (s *Store) CreateInvoice(ctx context.Context, inv *billing.Invoice) error {
	query := `
		INSERT INTO invoices (user_id, date, status, description, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		inv.UserID,
		inv.Date,
		inv.Status,
		inv.Description,
		inv.Amount,
	).Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating invoice: %w", err)
	}

	return nil
}

func (s *Store) GetInvoice(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + `
		FROM invoices i
		WHERE i.id = $1`

	inv, err := scanInvoice(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, billing.ErrNotFound
		}

		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	if err := s.attachLines(ctx, []*billing.Invoice{inv}); err != nil {
		return nil, err
	}

	return inv, nil
}

func (s *Store) ListInvoices(ctx context.Context, filter billing.ListFilter) ([]*billing.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + `
		FROM invoices i
		WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.UserID != nil {
		query += fmt.Sprintf(" AND i.user_id = $%d", argIdx)

		args = append(args, *filter.UserID)
		argIdx++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND i.status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND i.date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND i.date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY i.created_at ASC, i.id ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	var invs []*billing.Invoice

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		invs = append(invs, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoice rows: %w", err)
	}

	if err := s.attachLines(ctx, invs); err != nil {
		return nil, err
	}

	return invs, nil
}

func (s *Store) UpdateInvoice(ctx context.Context, inv *billing.Invoice) error {
	query := `
		UPDATE invoices
		SET user_id = $1, date = $2, status = $3, description = $4, amount = $5, updated_at = NOW()
		WHERE id = $6
	`

	res, err := s.db.ExecContext(ctx, query,
		inv.UserID,
		inv.Date,
		inv.Status,
		inv.Description,
		inv.Amount,
		inv.ID,
	)
	if err != nil {
		return fmt.Errorf("updating invoice: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return billing.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting invoice: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return billing.ErrNotFound
	}

	return nil
}

func (s *Store) CreateLine(ctx context.Context, line *billing.InvoiceLine) error {
	query := `
		INSERT INTO invoice_lines (invoice_id, description, amount, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		line.InvoiceID,
		line.Description,
		line.Amount,
	).Scan(&line.ID, &line.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating invoice line: %w", err)
	}

	return nil
}

func (s *Store) ListByMembership(ctx context.Context, membershipID uuid.UUID) ([]*billing.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + `
		FROM invoices i
		JOIN membership_invoices mi ON mi.invoice_id = i.id
		WHERE mi.membership_id = $1
		ORDER BY i.created_at ASC, i.id ASC`

	rows, err := s.db.QueryContext(ctx, query, membershipID)
	if err != nil {
		return nil, fmt.Errorf("listing membership invoices: %w", err)
	}
	defer rows.Close()

	var invs []*billing.Invoice

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		invs = append(invs, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoice rows: %w", err)
	}

	if err := s.attachLines(ctx, invs); err != nil {
		return nil, err
	}

	return invs, nil
}

// attachLines loads the line collections for the given invoices in one query,
// preserving insertion order within each invoice.
func (s *Store) attachLines(ctx context.Context, invs []*billing.Invoice) error {
	if len(invs) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*billing.Invoice, len(invs))
	ids := make([]string, 0, len(invs))

	for _, inv := range invs {
		byID[inv.ID] = inv
		ids = append(ids, inv.ID.String())
	}

	query := `
		SELECT l.id, l.invoice_id, l.description, l.amount, l.created_at
		FROM invoice_lines l
		WHERE l.invoice_id = ANY($1::uuid[])
		ORDER BY l.created_at ASC, l.id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("listing invoice lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line billing.InvoiceLine
		if err := rows.Scan(&line.ID, &line.InvoiceID, &line.Description, &line.Amount, &line.CreatedAt); err != nil {
			return fmt.Errorf("scanning invoice line: %w", err)
		}

		if inv, ok := byID[line.InvoiceID]; ok {
			inv.Lines = append(inv.Lines, &line)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating invoice line rows: %w", err)
	}

	return nil
}
