// Package sqlite persists computed plan runs so earlier weeks can be
// inspected after the fact.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/lseveri/shiftplan/pkg/application/dto"
)

const schema = `
CREATE TABLE IF NOT EXISTS plan_runs (
	id           TEXT PRIMARY KEY,
	week         TEXT NOT NULL,
	week_number  INTEGER NOT NULL,
	computed_at  TIMESTAMP NOT NULL,
	ready_pairs  INTEGER NOT NULL,
	total_pairs  INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS plan_progress (
	run_id        TEXT NOT NULL REFERENCES plan_runs(id),
	project       TEXT NOT NULL,
	machine       TEXT NOT NULL,
	final_percent TEXT NOT NULL,
	ready         INTEGER NOT NULL
);
`

// Archive wraps the SQLite database holding archived plan runs.
type Archive struct {
	db *sql.DB
}

// Open initializes the archive database at the specified path, creating the
// schema when missing.
func Open(path string) (*Archive, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create archive schema: %w", err)
	}
	return &Archive{db: db}, nil
}

// Close closes the underlying database.
func (a *Archive) Close() error {
	return a.db.Close()
}

// SaveRun stores one computed week and its final progress rows.
func (a *Archive) SaveRun(ctx context.Context, result *dto.PlanResult) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin archive transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO plan_runs (id, week, week_number, computed_at, ready_pairs, total_pairs)
		VALUES (?, ?, ?, ?, ?, ?)
	`, result.RunID, string(result.Week), result.WeekNumber, result.ComputedAt.UTC(),
		result.ReadyPairs(), len(result.Progress))
	if err != nil {
		return fmt.Errorf("failed to insert plan run: %w", err)
	}

	for _, p := range result.Progress {
		finalPercent := "0"
		if len(p.Daily) > 0 {
			finalPercent = p.Daily[len(p.Daily)-1].StringFixed(2)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO plan_progress (run_id, project, machine, final_percent, ready)
			VALUES (?, ?, ?, ?, ?)
		`, result.RunID, string(p.Project), p.Machine, finalPercent, p.Ready)
		if err != nil {
			return fmt.Errorf("failed to insert progress row: %w", err)
		}
	}

	return tx.Commit()
}

// RunSummary is one archived plan run.
type RunSummary struct {
	ID         string
	Week       string
	WeekNumber int
	ComputedAt time.Time
	ReadyPairs int
	TotalPairs int
}

// ListRuns returns archived runs, newest first.
func (a *Archive) ListRuns(ctx context.Context) ([]RunSummary, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT id, week, week_number, computed_at, ready_pairs, total_pairs
		FROM plan_runs
		ORDER BY computed_at DESC, week_number DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list plan runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.ID, &r.Week, &r.WeekNumber, &r.ComputedAt, &r.ReadyPairs, &r.TotalPairs); err != nil {
			return nil, fmt.Errorf("failed to scan plan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// ProgressRow is one archived (project, machine) outcome.
type ProgressRow struct {
	Project      string
	Machine      string
	FinalPercent string
	Ready        bool
}

// RunProgress returns the archived progress rows for one run.
func (a *Archive) RunProgress(ctx context.Context, runID string) ([]ProgressRow, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT project, machine, final_percent, ready
		FROM plan_progress
		WHERE run_id = ?
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to read run progress: %w", err)
	}
	defer rows.Close()

	var progress []ProgressRow
	for rows.Next() {
		var p ProgressRow
		if err := rows.Scan(&p.Project, &p.Machine, &p.FinalPercent, &p.Ready); err != nil {
			return nil, fmt.Errorf("failed to scan progress row: %w", err)
		}
		progress = append(progress, p)
	}
	return progress, rows.Err()
}
