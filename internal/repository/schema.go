package repository

import "database/sql"

// EnsureSchema creates the tables and uniqueness constraints on startup.
// The unique indexes on account_number and sort_code are the authoritative
// guard behind the generator's non-transactional existence checks.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id               TEXT PRIMARY KEY,
	name             TEXT NOT NULL DEFAULT '',
	email            TEXT NOT NULL DEFAULT '',
	phone_number     TEXT NOT NULL DEFAULT '',
	address_line1    TEXT,
	address_line2    TEXT,
	address_line3    TEXT,
	address_town     TEXT,
	address_county   TEXT,
	address_postcode TEXT,
	created_at       TIMESTAMPTZ NOT NULL,
	updated_at       TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS accounts (
	id             TEXT PRIMARY KEY,
	account_number TEXT NOT NULL UNIQUE,
	sort_code      TEXT NOT NULL UNIQUE,
	name           TEXT NOT NULL DEFAULT '',
	account_type   TEXT NOT NULL,
	balance        BIGINT NOT NULL DEFAULT 0,
	currency       TEXT NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL,
	updated_at     TIMESTAMPTZ NOT NULL
);
`

func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
