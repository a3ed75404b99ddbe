// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package registry persists a local history of successful samplesheet
// validations in a SQLite database, so pipeline operators can audit which
// sheets were normalized, when, and into what.
package registry

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/samplecheck/pkg/types"
)

const dbFile = "samplecheck.db"

// Store manages the validation run database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the run database at dir/samplecheck.db, creating dir
// and the schema if they do not exist.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating registry directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening registry database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating registry schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		checked_at TEXT NOT NULL,
		input TEXT NOT NULL,
		output TEXT NOT NULL,
		format TEXT NOT NULL,
		samples INTEGER NOT NULL,
		sheet_rows INTEGER NOT NULL
	)`)
	return err
}

// Record inserts a completed validation run. A zero CheckedAt is stamped
// with the current time.
func (s *Store) Record(ctx context.Context, rec types.RunRecord) error {
	checkedAt := rec.CheckedAt
	if checkedAt.IsZero() {
		checkedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (checked_at, input, output, format, samples, sheet_rows)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		checkedAt.UTC().Format(time.RFC3339Nano),
		rec.Input, rec.Output, string(rec.Format), rec.Samples, rec.Rows,
	)
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first. A limit of 0 or less
// returns all runs.
func (s *Store) List(ctx context.Context, limit int) ([]types.RunRecord, error) {
	query := `SELECT id, checked_at, input, output, format, samples, sheet_rows
		FROM runs ORDER BY id DESC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var records []types.RunRecord
	for rows.Next() {
		var rec types.RunRecord
		var checkedAt, format string
		if err := rows.Scan(&rec.ID, &checkedAt, &rec.Input, &rec.Output,
			&format, &rec.Samples, &rec.Rows); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		rec.Format = types.Format(format)
		if t, err := time.Parse(time.RFC3339Nano, checkedAt); err == nil {
			rec.CheckedAt = t
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
