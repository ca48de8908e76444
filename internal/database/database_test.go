package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func setupTestDB(t *testing.T) *Database {
	t.Helper()

	db, err := New(context.Background(), filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return db
}

func TestNewCreatesSchema(t *testing.T) {
	db := setupTestDB(t)

	runs, err := db.ListRuns(context.Background(), 0)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("ListRuns() = %d runs, want 0", len(runs))
	}
}

func TestNewMissingDirectory(t *testing.T) {
	_, err := New(context.Background(), filepath.Join(t.TempDir(), "missing", "history.db"))
	if err == nil {
		t.Error("New() in a missing directory should fail")
	}
}

func TestRecordAndGetRun(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	started := time.UnixMilli(1700000000123)
	run := NewRun("/media", "directory", started)
	run.Playlists = 2
	run.Files = 3
	run.Combined = 1
	run.Finish(1500*time.Millisecond, nil)

	if err := db.RecordRun(ctx, run); err != nil {
		t.Fatalf("RecordRun() error = %v", err)
	}

	got, err := db.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetRun() error = %v", err)
	}
	if got.Root != "/media" || got.Order != "directory" {
		t.Errorf("GetRun() root/order = %q/%q", got.Root, got.Order)
	}
	if !got.StartedAt.Equal(started) {
		t.Errorf("StartedAt = %v, want %v", got.StartedAt, started)
	}
	if got.Duration() != 1500*time.Millisecond {
		t.Errorf("Duration() = %v, want 1.5s", got.Duration())
	}
	if got.Playlists != 2 || got.Files != 3 || got.Combined != 1 {
		t.Errorf("counts = %d/%d/%d, want 2/3/1", got.Playlists, got.Files, got.Combined)
	}
	if got.Status != StatusSuccess || got.Error != "" {
		t.Errorf("status = %q, error = %q", got.Status, got.Error)
	}
}

func TestRecordFailedRun(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	run := NewRun("/media", "natural", time.Now())
	run.Finish(time.Second, errors.New("permission denied"))

	if err := db.RecordRun(ctx, run); err != nil {
		t.Fatalf("RecordRun() error = %v", err)
	}

	got, err := db.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetRun() error = %v", err)
	}
	if got.Status != StatusError || got.Error != "permission denied" {
		t.Errorf("status = %q, error = %q", got.Status, got.Error)
	}
}

func TestGetRunMissing(t *testing.T) {
	db := setupTestDB(t)

	if _, err := db.GetRun(context.Background(), "nope"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("GetRun() error = %v, want sql.ErrNoRows", err)
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	var ids []string
	for i := 0; i < 5; i++ {
		run := NewRun("/media", "directory", base.Add(time.Duration(i)*time.Minute))
		run.Finish(time.Millisecond, nil)
		if err := db.RecordRun(ctx, run); err != nil {
			t.Fatalf("RecordRun() error = %v", err)
		}
		ids = append(ids, run.ID)
	}

	runs, err := db.ListRuns(ctx, 3)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("ListRuns() = %d runs, want 3", len(runs))
	}
	for i, want := range []string{ids[4], ids[3], ids[2]} {
		if runs[i].ID != want {
			t.Errorf("runs[%d].ID = %s, want %s", i, runs[i].ID, want)
		}
	}
}

func TestGetLastRunAndStats(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	last, err := db.GetLastRun(ctx)
	if err != nil || last != nil {
		t.Fatalf("GetLastRun() on empty history = %v, %v; want nil, nil", last, err)
	}

	first := NewRun("/media", "directory", time.Now().Add(-time.Minute))
	first.Finish(time.Second, nil)
	second := NewRun("/media", "directory", time.Now())
	second.Playlists, second.Files, second.Combined = 4, 9, 2
	second.Finish(time.Second, nil)

	for _, r := range []*Run{first, second} {
		if err := db.RecordRun(ctx, r); err != nil {
			t.Fatalf("RecordRun() error = %v", err)
		}
	}

	last, err = db.GetLastRun(ctx)
	if err != nil {
		t.Fatalf("GetLastRun() error = %v", err)
	}
	if last == nil || last.ID != second.ID {
		t.Fatalf("GetLastRun() = %+v, want run %s", last, second.ID)
	}

	stats := db.GetStats()
	if stats.TotalRuns != 2 {
		t.Errorf("TotalRuns = %d, want 2", stats.TotalRuns)
	}
	if stats.LastPlaylists != 4 || stats.LastFiles != 9 || stats.LastCombined != 2 {
		t.Errorf("last counts = %d/%d/%d, want 4/9/2", stats.LastPlaylists, stats.LastFiles, stats.LastCombined)
	}
}

func TestMetadata(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if _, err := db.GetMetadata(ctx, "missing"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("GetMetadata() error = %v, want sql.ErrNoRows", err)
	}

	if err := db.SetMetadata(ctx, "key", "one"); err != nil {
		t.Fatalf("SetMetadata() error = %v", err)
	}
	if err := db.SetMetadata(ctx, "key", "two"); err != nil {
		t.Fatalf("SetMetadata() error = %v", err)
	}

	got, err := db.GetMetadata(ctx, "key")
	if err != nil {
		t.Fatalf("GetMetadata() error = %v", err)
	}
	if got != "two" {
		t.Errorf("GetMetadata() = %q, want %q", got, "two")
	}
}

func TestRecordQuery(t *testing.T) {
	recordQuery("test_operation", time.Now(), nil)
	recordQuery("test_operation", time.Now(), errors.New("test error"))
}
