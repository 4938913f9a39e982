// Package sqlite exports contact lists to standalone SQLite database files
// and reads them back. A snapshot is a copy for other tools; the JSON backing
// file stays the source of truth.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/addressbook/pkg/types"
)

// ErrNotSnapshot is returned by Import when the file has no contacts table.
var ErrNotSnapshot = errors.New("not a contacts snapshot")

const createContacts = `CREATE TABLE contacts (
    contact_id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    phone TEXT NOT NULL,
    email TEXT NOT NULL,
    address TEXT NOT NULL,
    exported_at TEXT NOT NULL
);`

const insertContact = `INSERT INTO contacts
    (contact_id, position, name, phone, email, address, exported_at)
    VALUES (?, ?, ?, ?, ?, ?, ?)`

const selectContacts = `SELECT name, phone, email, address FROM contacts ORDER BY position`

// Export writes records to a new SQLite database at path, replacing any file
// already there. Rows keep the list order in the position column.
func Export(ctx context.Context, path string, records []types.Record) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove old snapshot: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open sqlite %q: %w", path, err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning export transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, createContacts); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertContact)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for i, r := range records {
		m := r.ToMap()
		_, err := stmt.ExecContext(ctx, generateUUID(), i,
			m[types.FieldName], m[types.FieldPhone], m[types.FieldEmail], m[types.FieldAddress], now)
		if err != nil {
			return fmt.Errorf("insert %q: %w", r.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing export: %w", err)
	}
	return nil
}

// Import reads the records stored in the snapshot at path, in list order.
func Import(ctx context.Context, path string) ([]types.Record, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}
	defer db.Close()

	var n int
	err = db.QueryRowContext(ctx,
		"SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = 'contacts'").Scan(&n)
	if err != nil {
		return nil, fmt.Errorf("inspect %s: %w", path, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNotSnapshot)
	}

	rows, err := db.QueryContext(ctx, selectContacts)
	if err != nil {
		return nil, fmt.Errorf("query contacts: %w", err)
	}
	defer rows.Close()

	var records []types.Record
	for rows.Next() {
		var r types.Record
		if err := rows.Scan(&r.Name, &r.Phone, &r.Email, &r.Address); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read contacts: %w", err)
	}
	return records, nil
}

// generateUUID generates a new UUID v7 for snapshot row IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
