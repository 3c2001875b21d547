// SPDX-License-Identifier: MIT

// Package store keeps a history of runs in an embedded SQLite database so a
// pin sequence can be recalled without recomputing it.
//
// The database holds one table, runs, keyed by a random UUID. The sequence
// is stored as a JSON array. Access goes through a single connection.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

const driverName = "sqlite"

// ErrNotFound is returned when no run has the requested ID.
var ErrNotFound = errors.New("store: run not found")

const schema = `
CREATE TABLE IF NOT EXISTS runs (
  id          TEXT PRIMARY KEY,
  created_at  BIGINT NOT NULL,
  input       TEXT NOT NULL,
  pins        INTEGER NOT NULL,
  start_pin   INTEGER NOT NULL,
  safety_gap  INTEGER NOT NULL,
  steps       INTEGER NOT NULL,
  line_weight INTEGER NOT NULL,
  board_mm    REAL NOT NULL,
  thread_mm   REAL NOT NULL,
  elapsed_ms  BIGINT NOT NULL,
  sequence    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_created
  ON runs (created_at);
`

const columns = `id, created_at, input, pins, start_pin, safety_gap, steps, line_weight, board_mm, thread_mm, elapsed_ms, sequence`

// Run is one stored result.
type Run struct {
	ID         string
	CreatedAt  time.Time // millisecond precision, UTC
	Input      string
	Pins       int
	StartPin   int
	SafetyGap  int
	Steps      int
	LineWeight int
	BoardMM    float64
	ThreadMM   float64
	Elapsed    time.Duration // millisecond precision
	Sequence   []int
}

// Store is a handle on the run history.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the
// schema. ":memory:" gives a private in-memory database.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	// One physical connection; SQLite serializes writers anyway and an
	// in-memory database only exists on its own connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := tune(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: %s: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: schema: %w", err)
	}
	return &Store{db: db}, nil
}

func tune(ctx context.Context, db *sql.DB) error {
	var mode string
	if err := db.QueryRowContext(ctx, "PRAGMA journal_mode=WAL;").Scan(&mode); err != nil {
		return fmt.Errorf("journal_mode: %w", err)
	}
	for _, q := range []string{
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	} {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("%s: %w", q, err)
		}
	}
	return nil
}

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

// Save inserts r and returns its ID. An empty ID gets a fresh UUID and a
// zero CreatedAt becomes now.
func (s *Store) Save(ctx context.Context, r Run) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	seq, err := json.Marshal(r.Sequence)
	if err != nil {
		return "", fmt.Errorf("store: encode sequence: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (`+columns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.CreatedAt.UnixMilli(), r.Input, r.Pins, r.StartPin, r.SafetyGap,
		r.Steps, r.LineWeight, r.BoardMM, r.ThreadMM, r.Elapsed.Milliseconds(), string(seq),
	)
	if err != nil {
		return "", fmt.Errorf("store: insert %s: %w", r.ID, err)
	}
	return r.ID, nil
}

// Get returns the run with the given ID or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+columns+` FROM runs WHERE id = ?`, id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("store: %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Run{}, fmt.Errorf("store: get %s: %w", id, err)
	}
	return r, nil
}

// List returns up to limit runs, newest first. limit ≤ 0 returns all.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+columns+` FROM runs ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("store: list: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	return out, nil
}

// Delete removes the run with the given ID or returns ErrNotFound.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("store: delete %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("store: %s: %w", id, ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		r         Run
		created   int64
		elapsedMS int64
		seq       string
	)
	err := sc.Scan(&r.ID, &created, &r.Input, &r.Pins, &r.StartPin, &r.SafetyGap,
		&r.Steps, &r.LineWeight, &r.BoardMM, &r.ThreadMM, &elapsedMS, &seq)
	if err != nil {
		return Run{}, err
	}
	if err := json.Unmarshal([]byte(seq), &r.Sequence); err != nil {
		return Run{}, fmt.Errorf("decode sequence of %s: %w", r.ID, err)
	}
	r.CreatedAt = time.UnixMilli(created).UTC()
	r.Elapsed = time.Duration(elapsedMS) * time.Millisecond
	return r, nil
}
