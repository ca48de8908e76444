package runner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"playlist-builder/internal/aggregator"
	"playlist-builder/internal/database"
)

type memoryHistory struct {
	mu   sync.Mutex
	runs []database.Run
	err  error
}

func (m *memoryHistory) RecordRun(_ context.Context, run *database.Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.runs = append(m.runs, *run)
	return nil
}

func mediaTree(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "media")
	for _, name := range []string{"A/1.mp4", "A/2.mp4", "B/1.mp4"} {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("MkdirAll() error = %v", err)
		}
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
	}
	return root
}

func TestBuildRecordsRun(t *testing.T) {
	history := &memoryHistory{}
	r := New(history, mediaTree(t), aggregator.OrderDirectory)

	var completed Result
	r.SetOnComplete(func(res Result) { completed = res })

	res, err := r.Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if res.Summary.Playlists != 2 || res.Summary.Files != 3 || res.Summary.Combined != 1 {
		t.Errorf("Summary = %+v", res.Summary)
	}
	if len(res.Report) != 2 {
		t.Errorf("Report = %v, want two lines", res.Report)
	}
	if completed.Run == nil || completed.Run.ID != res.Run.ID {
		t.Error("completion callback not invoked with the run")
	}

	if len(history.runs) != 1 {
		t.Fatalf("recorded %d runs, want 1", len(history.runs))
	}
	got := history.runs[0]
	if got.Status != database.StatusSuccess || got.Order != "directory" || got.Files != 3 {
		t.Errorf("recorded run = %+v", got)
	}

	if last := r.LastRun(); last == nil || last.ID != got.ID {
		t.Errorf("LastRun() = %+v, want %s", last, got.ID)
	}
	if r.IsRunning() {
		t.Error("IsRunning() = true after Build returned")
	}
}

func TestBuildRecordsFailure(t *testing.T) {
	history := &memoryHistory{}
	r := New(history, "", aggregator.OrderDirectory)

	_, err := r.Build(context.Background())
	if !errors.Is(err, aggregator.ErrNoRoot) {
		t.Fatalf("Build() error = %v, want ErrNoRoot", err)
	}
	if len(history.runs) != 1 || history.runs[0].Status != database.StatusError {
		t.Errorf("recorded runs = %+v, want one failed run", history.runs)
	}
}

func TestBuildWithoutHistory(t *testing.T) {
	r := New(nil, mediaTree(t), aggregator.OrderNatural)
	if _, err := r.Build(context.Background()); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
}

func TestBuildHistoryErrorIsNotFatal(t *testing.T) {
	r := New(&memoryHistory{err: errors.New("disk full")}, mediaTree(t), aggregator.OrderDirectory)
	if _, err := r.Build(context.Background()); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
}

func TestBuildBusy(t *testing.T) {
	r := New(nil, mediaTree(t), aggregator.OrderDirectory)

	if !r.tryStart(database.NewRun(r.MediaDir(), "directory", r.startTime)) {
		t.Fatal("tryStart() = false on idle runner")
	}
	if !r.GetHealthStatus().Building {
		t.Error("GetHealthStatus().Building = false during a build")
	}

	if _, err := r.Build(context.Background()); !errors.Is(err, ErrBusy) {
		t.Errorf("Build() error = %v, want ErrBusy", err)
	}
}

func TestGetHealthStatus(t *testing.T) {
	root := mediaTree(t)
	r := New(nil, root, aggregator.OrderFilename)

	status := r.GetHealthStatus()
	if status.Building || status.MediaDir != root || status.Order != "filename" {
		t.Errorf("GetHealthStatus() = %+v", status)
	}
	if status.LastRun != nil {
		t.Error("LastRun set before any build")
	}
}
