// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history persists query history in a local SQLite database.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	ErrNotFound      = errors.New("history entry not found")
	ErrDatabaseError = errors.New("database error")
)

// =============================================================================
// ENTRY
// =============================================================================

// Entry is one recorded query with its outcome.
type Entry struct {
	ID           int64
	Query        string
	SQLQuery     string
	ResultCount  int
	Succeeded    bool
	ErrorMessage string
	CreatedAt    time.Time
}

// =============================================================================
// STORE
// =============================================================================

// Store records every submitted query so previous sessions can be recalled
// from the ask REPL and the TUI input history.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the database location under the user's home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".floatchat", "history.db"), nil
}

// Open opens (and if needed creates) the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open: %v", ErrDatabaseError, err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
		}
	}

	schema := `
	CREATE TABLE IF NOT EXISTS query_history (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		query         TEXT NOT NULL,
		sql_query     TEXT NOT NULL DEFAULT '',
		result_count  INTEGER NOT NULL DEFAULT 0,
		succeeded     INTEGER NOT NULL DEFAULT 1,
		error_message TEXT NOT NULL DEFAULT '',
		created_at    INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_history_created ON query_history(created_at DESC);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: schema: %v", ErrDatabaseError, err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends one entry and returns its assigned ID.
func (s *Store) Record(ctx context.Context, e Entry) (int64, error) {
	if strings.TrimSpace(e.Query) == "" {
		return 0, errors.New("query cannot be empty")
	}
	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO query_history (query, sql_query, result_count, succeeded, error_message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Query, e.SQLQuery, e.ResultCount, boolToInt(e.Succeeded), e.ErrorMessage, createdAt.Unix())
	if err != nil {
		return 0, fmt.Errorf("%w: insert: %v", ErrDatabaseError, err)
	}
	return res.LastInsertId()
}

// Recent returns the newest entries, most recent first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, query, sql_query, result_count, succeeded, error_message, created_at
		 FROM query_history ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: select: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Search returns entries whose query text contains the term, newest first.
func (s *Store) Search(ctx context.Context, term string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, query, sql_query, result_count, succeeded, error_message, created_at
		 FROM query_history WHERE query LIKE ? ORDER BY created_at DESC, id DESC LIMIT ?`,
		"%"+term+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("%w: search: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Prune deletes entries older than the cutoff and returns how many were removed.
func (s *Store) Prune(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM query_history WHERE created_at < ?`, before.Unix())
	if err != nil {
		return 0, fmt.Errorf("%w: prune: %v", ErrDatabaseError, err)
	}
	return res.RowsAffected()
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		var succeeded int
		var createdAt int64
		if err := rows.Scan(&e.ID, &e.Query, &e.SQLQuery, &e.ResultCount, &succeeded, &e.ErrorMessage, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: scan: %v", ErrDatabaseError, err)
		}
		e.Succeeded = succeeded != 0
		e.CreatedAt = time.Unix(createdAt, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
