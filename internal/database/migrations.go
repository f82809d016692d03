package database

import (
	"database/sql"
	"fmt"
)

// schema is applied on startup. Statements are idempotent; ordering matters
// because of the foreign keys (users before everything, invoices before
// invoice_lines and the join table).
const schema = `
CREATE EXTENSION IF NOT EXISTS pgcrypto;

CREATE TABLE IF NOT EXISTS users (
	id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	email text NOT NULL UNIQUE,
	name text NOT NULL DEFAULT '',
	password_hash text NOT NULL DEFAULT '',
	created_at timestamptz NOT NULL DEFAULT NOW(),
	updated_at timestamptz
);

CREATE TABLE IF NOT EXISTS invoices (
	id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id uuid REFERENCES users(id) ON DELETE CASCADE,
	date date NOT NULL,
	status text NOT NULL,
	description text NOT NULL DEFAULT '',
	amount numeric(10,2) NOT NULL DEFAULT 0,
	created_at timestamptz NOT NULL DEFAULT NOW(),
	updated_at timestamptz
);

CREATE TABLE IF NOT EXISTS invoice_lines (
	id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	invoice_id uuid NOT NULL REFERENCES invoices(id) ON DELETE CASCADE,
	description text NOT NULL DEFAULT '',
	amount numeric(10,2) NOT NULL DEFAULT 0,
	created_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS memberships (
	id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id uuid NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	state text NOT NULL,
	credits integer NOT NULL DEFAULT 0,
	start_date date NOT NULL,
	end_date date,
	created_at timestamptz NOT NULL DEFAULT NOW(),
	updated_at timestamptz
);

CREATE TABLE IF NOT EXISTS membership_invoices (
	membership_id uuid NOT NULL REFERENCES memberships(id) ON DELETE CASCADE,
	invoice_id uuid NOT NULL REFERENCES invoices(id) ON DELETE CASCADE,
	PRIMARY KEY (membership_id, invoice_id)
);

CREATE TABLE IF NOT EXISTS checkins (
	id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id uuid NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	membership_id uuid NOT NULL REFERENCES memberships(id) ON DELETE CASCADE,
	timestamp timestamptz NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_invoices_date ON invoices(date);
CREATE INDEX IF NOT EXISTS idx_invoice_lines_invoice_id ON invoice_lines(invoice_id);
CREATE INDEX IF NOT EXISTS idx_memberships_user_id ON memberships(user_id);
CREATE INDEX IF NOT EXISTS idx_checkins_membership_id ON checkins(membership_id);
CREATE INDEX IF NOT EXISTS idx_checkins_user_id ON checkins(user_id);
`

// Migrate creates the schema if it does not exist yet.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	return nil
}
