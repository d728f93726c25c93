// Package storage persists the domain in SQLite. One Store owns the
// connection; the per-entity repositories share it.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

func NewStore(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) Users() *UserRepo               { return &UserRepo{db: s.db} }
func (s *Store) Transactions() *TransactionRepo { return &TransactionRepo{db: s.db} }
func (s *Store) Budgets() *BudgetRepo           { return &BudgetRepo{db: s.db} }
func (s *Store) Groups() *GroupRepo             { return &GroupRepo{db: s.db} }
func (s *Store) Alerts() *AlertRepo             { return &AlertRepo{db: s.db} }

// Timestamps are stored as RFC 3339 text so rows stay readable in the
// sqlite shell.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}
