package registry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteFile is the database file name inside the registry directory.
const SQLiteFile = "codes.db"

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS product_codes (
	id         TEXT PRIMARY KEY,
	code       TEXT NOT NULL,
	name       TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_product_codes_code ON product_codes(code);
`

// SQLiteBackend stores records in SQLite. The unique index on code is the
// source of truth for uniqueness.
type SQLiteBackend struct {
	db *sql.DB
}

// OpenSQLiteBackend opens or creates codes.db in dir.
func OpenSQLiteBackend(dir string) (*SQLiteBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create registry dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, SQLiteFile))
	if err != nil {
		return nil, fmt.Errorf("open registry database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create registry schema: %w", err)
	}
	return &SQLiteBackend{db: db}, nil
}

// Exists reports whether code is recorded.
func (b *SQLiteBackend) Exists(ctx context.Context, code string) (bool, error) {
	var one int
	err := b.db.QueryRowContext(ctx, `SELECT 1 FROM product_codes WHERE code = ?`, code).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query code: %w", err)
	}
	return true, nil
}

// Insert records rec. A conflicting code leaves the table unchanged.
func (b *SQLiteBackend) Insert(ctx context.Context, rec Record) error {
	result, err := b.db.ExecContext(ctx,
		`INSERT INTO product_codes (id, code, name, created_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(code) DO NOTHING`,
		rec.ID, rec.Code, rec.Name, rec.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("insert code: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("insert code: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrCodeTaken, rec.Code)
	}
	return nil
}

// Get returns the record for code.
func (b *SQLiteBackend) Get(ctx context.Context, code string) (Record, error) {
	row := b.db.QueryRowContext(ctx,
		`SELECT id, code, name, created_at FROM product_codes WHERE code = ?`, code)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, code)
	}
	if err != nil {
		return Record{}, fmt.Errorf("query code: %w", err)
	}
	return rec, nil
}

// List returns all records ordered by creation time, then code.
func (b *SQLiteBackend) List(ctx context.Context) ([]Record, error) {
	rows, err := b.db.QueryContext(ctx,
		`SELECT id, code, name, created_at FROM product_codes ORDER BY created_at, code`)
	if err != nil {
		return nil, fmt.Errorf("list codes: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan code: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list codes: %w", err)
	}
	return records, nil
}

// Close closes the database.
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var rec Record
	var createdAt int64
	if err := row.Scan(&rec.ID, &rec.Code, &rec.Name, &createdAt); err != nil {
		return Record{}, err
	}
	rec.CreatedAt = time.Unix(0, createdAt).UTC()
	return rec, nil
}
