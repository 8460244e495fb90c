// Package history persists analyzer runs in a local sqlite database so watch
// mode and the CLI can show issue trends per file.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

// Run is one analyzer invocation with its issue tally.
type Run struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	File       string    `json:"file"`
	Analyzer   string    `json:"analyzer"`
	Infos      int       `json:"infos"`
	Warnings   int       `json:"warnings"`
	Errors     int       `json:"errors"`
	DurationMs int       `json:"duration_ms"`
}

type Store struct {
	path string
	db   *sql.DB
	mu   sync.Mutex
}

func Open(path string) (*Store, error) {
	cleanPath := strings.TrimSpace(path)
	if cleanPath == "" {
		return nil, fmt.Errorf("history path must not be empty")
	}
	if info, err := os.Stat(cleanPath); err == nil && info.IsDir() {
		return nil, fmt.Errorf("history path %q is a directory, expected file", cleanPath)
	}

	dir := filepath.Dir(cleanPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history directory %q: %w", dir, err)
		}
	}

	// busy_timeout + WAL reduce lock conflicts during watch-mode churn.
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(2000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)", cleanPath)
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite history %q: %w", cleanPath, err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite history %q: %w", cleanPath, err)
	}
	if err := EnsureSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize sqlite schema %q: %w", cleanPath, err)
	}

	return &Store{path: cleanPath, db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) RecordRun(ctx context.Context, run Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.Timestamp.IsZero() {
		run.Timestamp = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
INSERT INTO runs (id, ts_utc, file, analyzer, info_count, warning_count, error_count, duration_ms)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.Timestamp.UTC().Format(time.RFC3339Nano),
		run.File,
		run.Analyzer,
		run.Infos,
		run.Warnings,
		run.Errors,
		run.DurationMs,
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// RecentRuns returns the newest runs, optionally filtered by file.
func (s *Store) RecentRuns(ctx context.Context, file string, limit int) ([]Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		limit = 50
	}

	query := `
SELECT id, ts_utc, file, analyzer, info_count, warning_count, error_count, duration_ms
FROM runs`
	args := make([]any, 0, 2)
	if strings.TrimSpace(file) != "" {
		query += " WHERE file = ?"
		args = append(args, file)
	}
	query += " ORDER BY ts_utc DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("load runs: %w", err)
	}
	defer rows.Close()

	runs := make([]Run, 0, limit)
	for rows.Next() {
		var (
			run   Run
			tsRaw string
		)
		if err := rows.Scan(&run.ID, &tsRaw, &run.File, &run.Analyzer, &run.Infos, &run.Warnings, &run.Errors, &run.DurationMs); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if parsed, perr := time.Parse(time.RFC3339Nano, tsRaw); perr == nil {
			run.Timestamp = parsed
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
