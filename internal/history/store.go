// Package history records translated texts in a SQLite database.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"codeberg.org/snonux/naivetrans/internal"
)

// Entry is one translated text
type Entry struct {
	ID        string
	CreatedAt time.Time
	Language  string
	Input     string
	Output    string
}

// Store persists entries in SQLite
type Store struct {
	db *sql.DB
}

// Open opens (and creates if needed) the history database at path
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return s, nil
}

func (s *Store) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS translations (
			id text PRIMARY KEY,
			created integer NOT NULL,
			language text NOT NULL,
			input text NOT NULL,
			output text NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS ix_translations_created ON translations (created)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}
	return nil
}

// Add stores a translation and returns it with ID and timestamp filled in
func (s *Store) Add(ctx context.Context, e Entry) (Entry, error) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	if e.ID == "" {
		e.ID = internal.GenerateEntryID(e.Input)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO translations (id, created, language, input, output) VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.CreatedAt.UnixNano(), e.Language, e.Input, e.Output,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to insert translation: %w", err)
	}
	return e, nil
}

// Recent returns up to limit entries, newest first
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created, language, input, output FROM translations ORDER BY created DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var created int64
		if err := rows.Scan(&e.ID, &created, &e.Language, &e.Input, &e.Output); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		e.CreatedAt = time.Unix(0, created)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count returns the number of stored entries
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM translations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count history: %w", err)
	}
	return n, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}
