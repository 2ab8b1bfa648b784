// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ledger keeps a SQLite history of conversion runs so a roster
// refresh can be traced back to the input file and id range it produced.
package ledger

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/roster/pkg/types"
)

const defaultLimit = 20

// Ledger manages the run history database.
type Ledger struct {
	db *sql.DB
}

// Open opens or creates the ledger database at path, creating its parent
// directory and schema as needed.
func Open(path string) (*Ledger, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating ledger directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}

	l := &Ledger{db: db}
	if err := l.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return l, nil
}

// Close releases the database connection.
func (l *Ledger) Close() error {
	return l.db.Close()
}

func (l *Ledger) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			started_at TEXT NOT NULL,
			input TEXT NOT NULL,
			output TEXT NOT NULL,
			format TEXT NOT NULL,
			accepted INTEGER NOT NULL,
			skipped INTEGER NOT NULL,
			header INTEGER NOT NULL,
			first_id TEXT,
			last_id TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at)`,
	}
	for _, stmt := range statements {
		if _, err := l.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores run. A missing ID is filled with a new UUID and a zero
// StartedAt with the current time; the stored run is returned.
func (l *Ledger) Record(ctx context.Context, run types.Run) (types.Run, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}

	_, err := l.db.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, input, output, format, accepted, skipped, header, first_id, last_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.StartedAt.UTC().Format(time.RFC3339Nano), run.Input, run.Output, string(run.Format),
		run.Accepted, run.Skipped, run.Header, run.FirstID, run.LastID,
	)
	if err != nil {
		return run, fmt.Errorf("recording run: %w", err)
	}
	return run, nil
}

// Runs returns up to limit runs, newest first. A limit of zero or less
// uses the default of 20.
func (l *Ledger) Runs(ctx context.Context, limit int) ([]types.Run, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := l.db.QueryContext(ctx,
		`SELECT id, started_at, input, output, format, accepted, skipped, header, first_id, last_id
		 FROM runs ORDER BY seq DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []types.Run
	for rows.Next() {
		var (
			r       types.Run
			started string
			format  string
			firstID sql.NullString
			lastID  sql.NullString
		)
		if err := rows.Scan(&r.ID, &started, &r.Input, &r.Output, &format,
			&r.Accepted, &r.Skipped, &r.Header, &firstID, &lastID); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		t, err := time.Parse(time.RFC3339Nano, started)
		if err != nil {
			return nil, fmt.Errorf("parsing run time %q: %w", started, err)
		}
		r.StartedAt = t
		r.Format = types.OutputFormat(format)
		r.FirstID = firstID.String
		r.LastID = lastID.String
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Export writes runs to path as JSON or YAML depending on format.
func Export(path string, format types.OutputFormat, runs []types.Run) error {
	if runs == nil {
		runs = []types.Run{}
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case types.FormatJSON, "":
		data, err = json.MarshalIndent(runs, "", "  ")
	case types.FormatYAML:
		data, err = yaml.Marshal(runs)
	default:
		return fmt.Errorf("unsupported format %q: use json or yaml", format)
	}
	if err != nil {
		return fmt.Errorf("marshaling runs: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
