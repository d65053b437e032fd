// Package history persists one row per generation run in a SQLite database.
// The build pipeline records runs when history is configured; the serve
// status endpoint reads them back.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Run is one recorded generation run. The JSON form appears in the serve
// status endpoint.
type Run struct {
	RunID    string    `json:"run_id"`
	Started  time.Time `json:"started"`
	Finished time.Time `json:"finished"`
	Outcome  string    `json:"outcome"` // success|warning|failed|canceled
	Sites    int       `json:"sites"`
	Pages    int       `json:"pages"`
	Error    string    `json:"error,omitempty"` // first fatal error text; empty for clean runs
}

// Store is a SQLite-backed run log.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open creates or opens a run history database. Use ":memory:" for an
// in-memory database, or a file path for persistent storage.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	store := &Store{db: db}
	if err := store.initialize(); err != nil {
		_ = db.Close() // Best effort cleanup on initialization error
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		started INTEGER NOT NULL,
		finished INTEGER NOT NULL,
		outcome TEXT NOT NULL,
		sites INTEGER NOT NULL,
		pages INTEGER NOT NULL,
		error TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_runs_run_id ON runs(run_id);
	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started);
	`
	_, err := s.db.Exec(schema)
	return err
}

// RecordRun appends a run to the log.
func (s *Store) RecordRun(ctx context.Context, run Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO runs (run_id, started, finished, outcome, sites, pages, error) VALUES (?, ?, ?, ?, ?, ?, ?)",
		run.RunID, run.Started.Unix(), run.Finished.Unix(), run.Outcome, run.Sites, run.Pages, run.Error,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	return nil
}

// RecentRuns returns up to limit runs, most recent first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT run_id, started, finished, outcome, sites, pages, error FROM runs ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	var runs []Run
	for rows.Next() {
		var r Run
		var started, finished int64
		var errText sql.NullString

		if err := rows.Scan(&r.RunID, &started, &finished, &r.Outcome, &r.Sites, &r.Pages, &errText); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}

		r.Started = time.Unix(started, 0)
		r.Finished = time.Unix(finished, 0)
		r.Error = errText.String

		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return runs, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}
