// ABOUTME: SQLite slot store for notebook.
// ABOUTME: Handles database initialization and the slots schema.

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/harper/notebook/internal/store"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS slots (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at DATETIME NOT NULL
);
`

// SlotStore is a store.Backend over a single SQLite table.
type SlotStore struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and runs migrations.
func Open(path string) (*SlotStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SlotStore{db: db}, nil
}

// DefaultPath returns the database path under dataDir.
func DefaultPath(dataDir string) string {
	return filepath.Join(dataDir, "notebook.db")
}

// Get returns the value stored under key.
func (s *SlotStore) Get(key string) ([]byte, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrSlotNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

// Set upserts the value stored under key.
func (s *SlotStore) Set(key string, value []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(value), time.Now().UTC(),
	)
	return err
}

// UpdatedAt returns when key was last written.
func (s *SlotStore) UpdatedAt(key string) (time.Time, error) {
	var ts time.Time
	err := s.db.QueryRow(`SELECT updated_at FROM slots WHERE key = ?`, key).Scan(&ts)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, store.ErrSlotNotFound
	}
	return ts, err
}

// Close closes the database.
func (s *SlotStore) Close() error {
	return s.db.Close()
}
