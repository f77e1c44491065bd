// Package history persists a journal of validation runs to SQLite so
// earlier repairs stay auditable after the repaired documents move on.
package history

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/jare20895/MSProjectXMLValidator/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// Entry kinds stored in the journal.
const (
	KindError  = "error"
	KindRepair = "repair"
)

// Run is one recorded validation run.
type Run struct {
	RunID       string
	InputPath   string
	OutputPath  string
	RepairMode  bool
	Success     bool
	ErrorCount  int
	RepairCount int
	StartedAt   time.Time
}

// Entry is one categorized message from a recorded run.
type Entry struct {
	RunID    string
	Kind     string
	Category string
	Message  string
	Seq      int
}

// Store records validation runs in a SQLite database under a data
// directory.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open opens the history database in dataDir, creating the directory and
// schema as needed.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", filepath.Join(dataDir, "history.db"))
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// Record inserts a run and its ledger entries and returns the generated
// run id.
func (s *Store) Record(run Run, res types.Result) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runID := uuid.NewString()
	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin record: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (run_id, input_path, output_path, repair_mode, success, error_count, repair_count, started_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, run.InputPath, run.OutputPath, boolInt(run.RepairMode), boolInt(res.Success),
		res.ErrorCount(), res.RepairCount(), run.StartedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	seq := 0
	insert := func(kind string, categories []string, byCategory map[string][]string) error {
		for _, cat := range categories {
			for _, msg := range byCategory[cat] {
				if _, err := tx.Exec(
					`INSERT INTO entries (run_id, kind, category, message, seq) VALUES (?, ?, ?, ?, ?)`,
					runID, kind, cat, msg, seq,
				); err != nil {
					return fmt.Errorf("insert entry: %w", err)
				}
				seq++
			}
		}
		return nil
	}
	if err := insert(KindError, res.ErrorCategories, res.Errors); err != nil {
		return "", err
	}
	if err := insert(KindRepair, res.RepairCategories, res.Repairs); err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit record: %w", err)
	}
	return runID, nil
}

// Recent returns the most recent runs, newest first.
func (s *Store) Recent(limit int) ([]Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(
		`SELECT run_id, input_path, output_path, repair_mode, success, error_count, repair_count, started_at
		 FROM runs ORDER BY started_at DESC, run_id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var repairMode, success int
		var startedAt string
		if err := rows.Scan(&r.RunID, &r.InputPath, &r.OutputPath, &repairMode, &success,
			&r.ErrorCount, &r.RepairCount, &startedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.RepairMode = repairMode != 0
		r.Success = success != 0
		if t, err := time.Parse(time.RFC3339, startedAt); err == nil {
			r.StartedAt = t
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Entries returns the categorized messages recorded for a run, in order.
func (s *Store) Entries(runID string) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(
		`SELECT run_id, kind, category, message, seq FROM entries WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.RunID, &e.Kind, &e.Category, &e.Message, &e.Seq); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
