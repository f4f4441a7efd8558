// Package export writes the cleaned and extracted table to SQLite for
// ad-hoc querying. The report pipeline itself never persists anything;
// this is a standalone convenience.
package export

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/vmunix/catstat/internal/extract"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	title       TEXT NOT NULL,
	type        TEXT NOT NULL,
	director    TEXT NOT NULL,
	"cast"      TEXT NOT NULL,
	country     TEXT NOT NULL,
	date_added  TEXT NOT NULL,
	rating      TEXT NOT NULL,
	duration    TEXT NOT NULL,
	listed_in   TEXT NOT NULL,
	added_year  INTEGER NOT NULL,
	added_month INTEGER NOT NULL,
	added_day   INTEGER NOT NULL,
	minutes     INTEGER NOT NULL,
	seasons     INTEGER NOT NULL
)`

// Store writes extracted rows to a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and ensures the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	s := NewStore(db)
	if err := s.Init(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// NewStore wraps an existing database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Init creates the records table if needed.
func (s *Store) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Insert writes all rows in one transaction and returns the count.
func (s *Store) Insert(ctx context.Context, rows []extract.Row) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records (title, type, director, "cast", country, date_added,
			rating, duration, listed_in, added_year, added_month, added_day,
			minutes, seasons)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, row := range rows {
		_, err := stmt.ExecContext(ctx,
			row.Title, string(row.Type), row.Director, row.Cast, row.Country,
			row.DateAdded, row.Rating, row.Duration, row.ListedIn,
			row.AddedYear, row.AddedMonth, row.AddedDay,
			row.Minutes, row.Seasons,
		)
		if err != nil {
			return 0, fmt.Errorf("insert row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return len(rows), nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM records").Scan(&n); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
