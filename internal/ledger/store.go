// Package ledger persists the double-entry ledger in a SQLite file:
// chart of accounts, accounting periods, documents and entries, plus a
// record of import batches. All writes from an import run inside one
// transaction.
package ledger

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/tilikirja-dev/tilikirja/internal/model"
)

// Document numbers are assigned per period from this range.
const (
	numberRangeStart = 1
	numberRangeEnd   = 999999
)

const schema = `
CREATE TABLE IF NOT EXISTS accounts (
	id      INTEGER PRIMARY KEY AUTOINCREMENT,
	number  TEXT NOT NULL UNIQUE,
	name    TEXT NOT NULL,
	type    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS periods (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	start_date    TEXT NOT NULL,
	end_date      TEXT NOT NULL,
	number_start  INTEGER NOT NULL,
	number_end    INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS documents (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	period_id  INTEGER NOT NULL REFERENCES periods(id),
	number     INTEGER NOT NULL,
	date       TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS entries (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	document_id  INTEGER NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
	account_id   INTEGER NOT NULL REFERENCES accounts(id),
	row_number   INTEGER NOT NULL,
	is_debit     INTEGER NOT NULL,
	amount       TEXT NOT NULL,
	description  TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS imports (
	id           TEXT PRIMARY KEY,
	filename     TEXT NOT NULL,
	documents    INTEGER NOT NULL,
	entries      INTEGER NOT NULL,
	imported_at  TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_documents_period ON documents(period_id);
CREATE INDEX IF NOT EXISTS idx_entries_document ON entries(document_id);
CREATE INDEX IF NOT EXISTS idx_entries_account ON entries(account_id);
`

// Store wraps the ledger database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the ledger database and ensures the schema
// exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Begin starts a write session covering one import batch.
func (s *Store) Begin() (*Session, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	return &Session{tx: tx}, nil
}

// Accounts returns the full chart of accounts ordered by number.
func (s *Store) Accounts() ([]model.Account, error) {
	rows, err := s.db.Query("SELECT id, number, name, type FROM accounts ORDER BY number")
	if err != nil {
		return nil, fmt.Errorf("querying accounts: %w", err)
	}
	defer rows.Close()

	var accounts []model.Account
	for rows.Next() {
		var a model.Account
		if err := rows.Scan(&a.ID, &a.Number, &a.Name, &a.Type); err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// SeedAccounts inserts accounts that do not exist yet, keyed by number.
func (s *Store) SeedAccounts(accounts []model.Account) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	for _, a := range accounts {
		_, err := tx.Exec(
			"INSERT OR IGNORE INTO accounts (number, name, type) VALUES (?, ?, ?)",
			a.Number, a.Name, string(a.Type),
		)
		if err != nil {
			return fmt.Errorf("seeding account %s: %w", a.Number, err)
		}
	}
	return tx.Commit()
}

// EntryCount returns the total number of ledger entries.
func (s *Store) EntryCount() (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM entries").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting entries: %w", err)
	}
	return n, nil
}

// DocumentEntries returns a document's entries ordered by row number.
func (s *Store) DocumentEntries(documentID int64) ([]model.Entry, error) {
	rows, err := s.db.Query(
		"SELECT id, document_id, account_id, row_number, is_debit, amount, description FROM entries WHERE document_id = ? ORDER BY row_number",
		documentID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	var entries []model.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
