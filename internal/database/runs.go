package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"playlist-builder/internal/logging"
	"playlist-builder/internal/metrics"
)

// Run statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// DefaultRunLimit is the number of runs ListRuns returns when no limit is given.
const DefaultRunLimit = 20

// Run is one recorded playlist build.
type Run struct {
	ID         string    `json:"id"`
	Root       string    `json:"root"`
	Order      string    `json:"order"`
	StartedAt  time.Time `json:"startedAt"`
	DurationMs int64     `json:"durationMs"`
	Playlists  int       `json:"playlists"`
	Files      int       `json:"files"`
	Combined   int       `json:"combined"`
	Purged     int       `json:"purged"`
	Status     string    `json:"status"`
	Error      string    `json:"error,omitempty"`
}

// NewRun creates a run record with a fresh ID.
func NewRun(root, order string, startedAt time.Time) *Run {
	return &Run{
		ID:        uuid.NewString(),
		Root:      root,
		Order:     order,
		StartedAt: startedAt,
	}
}

// Finish sets the duration and outcome of the run.
func (r *Run) Finish(duration time.Duration, err error) {
	r.DurationMs = duration.Milliseconds()
	if err != nil {
		r.Status = StatusError
		r.Error = err.Error()
		return
	}
	r.Status = StatusSuccess
	r.Error = ""
}

// Duration returns the run duration.
func (r *Run) Duration() time.Duration {
	return time.Duration(r.DurationMs) * time.Millisecond
}

// RecordRun stores run and marks it as the latest run.
func (d *Database) RecordRun(ctx context.Context, run *Run) error {
	start := time.Now()
	var err error
	defer func() { recordQuery("record_run", start, err) }()

	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.Status == "" {
		run.Status = StatusSuccess
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, root, order_mode, started_at, duration_ms, playlists, files, combined, purged, status, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		run.ID,
		run.Root,
		run.Order,
		run.StartedAt.UnixMilli(),
		run.DurationMs,
		run.Playlists,
		run.Files,
		run.Combined,
		run.Purged,
		run.Status,
		nullString(run.Error),
	)
	if err == nil {
		err = d.setMetadata(ctx, tx, lastRunKey, run.ID)
	}
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logging.Error("failed to roll back run %s: %v", run.ID, rbErr)
		}
		return fmt.Errorf("failed to record run %s: %w", run.ID, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit run %s: %w", run.ID, err)
	}
	return nil
}

const runColumns = `id, root, order_mode, started_at, duration_ms, playlists, files, combined, purged, status, error`

// GetRun returns the run with the given ID. It returns sql.ErrNoRows when
// no such run exists.
func (d *Database) GetRun(ctx context.Context, id string) (*Run, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	row := d.db.QueryRowContext(ctx, "SELECT "+runColumns+" FROM runs WHERE id = ?", id)
	return scanRun(row)
}

// ListRuns returns up to limit runs, newest first. A limit of zero or less
// selects DefaultRunLimit.
func (d *Database) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	start := time.Now()
	var err error
	defer func() { recordQuery("list_runs", start, err) }()

	if limit <= 0 {
		limit = DefaultRunLimit
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := d.db.QueryContext(ctx,
		"SELECT "+runColumns+" FROM runs ORDER BY started_at DESC, rowid DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		var run *Run
		run, err = scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	err = rows.Err()
	return runs, err
}

// RunStats summarizes the history for the metrics collector.
func (d *Database) RunStats(ctx context.Context) (metrics.Stats, error) {
	start := time.Now()
	var err error
	defer func() { recordQuery("run_stats", start, err) }()

	var stats metrics.Stats

	d.mu.RLock()
	qctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	err = d.db.QueryRowContext(qctx, "SELECT COUNT(*) FROM runs").Scan(&stats.TotalRuns)
	cancel()
	d.mu.RUnlock()
	if err != nil {
		return stats, err
	}

	last, err := d.GetLastRun(ctx)
	if err != nil || last == nil {
		return stats, err
	}

	stats.LastRunAt = last.StartedAt
	stats.LastPlaylists = last.Playlists
	stats.LastFiles = last.Files
	stats.LastCombined = last.Combined
	return stats, nil
}

// GetStats implements metrics.StatsProvider.
func (d *Database) GetStats() metrics.Stats {
	stats, err := d.RunStats(context.Background())
	if err != nil {
		logging.Warn("Failed to read run statistics: %v", err)
	}
	return stats
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var run Run
	var startedAt int64
	var runErr sql.NullString

	err := row.Scan(
		&run.ID, &run.Root, &run.Order, &startedAt, &run.DurationMs,
		&run.Playlists, &run.Files, &run.Combined, &run.Purged,
		&run.Status, &runErr,
	)
	if err != nil {
		return nil, err
	}

	run.StartedAt = time.UnixMilli(startedAt)
	run.Error = runErr.String
	return &run, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
