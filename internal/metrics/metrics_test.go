package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestBuildMetricsExist(t *testing.T) {
	tests := []struct {
		name   string
		metric interface{}
	}{
		{"BuildRunsTotal", BuildRunsTotal},
		{"BuildRunDuration", BuildRunDuration},
		{"BuildIsRunning", BuildIsRunning},
		{"BuildDirectoriesVisited", BuildDirectoriesVisited},
		{"PlaylistsWritten", PlaylistsWritten},
		{"TracksWritten", TracksWritten},
		{"PurgedDocuments", PurgedDocuments},
		{"StorylineUnmatched", StorylineUnmatched},
		{"CombineSkippedDocuments", CombineSkippedDocuments},
		{"CombineDuplicatesRemoved", CombineDuplicatesRemoved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.metric == nil {
				t.Errorf("%s metric is nil", tt.name)
			}
		})
	}
}

func TestInitializeMetrics(t *testing.T) {
	InitializeMetrics()

	if got := testutil.CollectAndCount(PlaylistsWritten); got != 3 {
		t.Errorf("PlaylistsWritten series = %d, want 3", got)
	}
	if got := testutil.CollectAndCount(BuildRunsTotal); got != 2 {
		t.Errorf("BuildRunsTotal series = %d, want 2", got)
	}
	if got := testutil.CollectAndCount(FilesystemOperationErrors); got != 15 {
		t.Errorf("FilesystemOperationErrors series = %d, want 15", got)
	}
}

func TestFilesystemObserver(t *testing.T) {
	o := NewFilesystemObserver()

	before := testutil.ToFloat64(FilesystemOperationErrors.WithLabelValues("media", "write"))
	o.ObserveOperation("media", "write", 0.01, errors.New("disk full"))
	o.ObserveOperation("media", "write", 0.01, nil)
	after := testutil.ToFloat64(FilesystemOperationErrors.WithLabelValues("media", "write"))
	if after-before != 1 {
		t.Errorf("FilesystemOperationErrors increased by %v, want 1", after-before)
	}

	before = testutil.ToFloat64(FilesystemStaleErrors.WithLabelValues("readdir", "media"))
	o.ObserveStaleError("readdir", "media")
	after = testutil.ToFloat64(FilesystemStaleErrors.WithLabelValues("readdir", "media"))
	if after-before != 1 {
		t.Errorf("FilesystemStaleErrors increased by %v, want 1", after-before)
	}
}

type staticStats struct {
	mu    sync.Mutex
	stats Stats
	calls int
}

func (s *staticStats) GetStats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.stats
}

func TestCollectorCollect(t *testing.T) {
	last := time.Unix(1700000000, 0)
	provider := &staticStats{stats: Stats{
		TotalRuns:     4,
		LastRunAt:     last,
		LastPlaylists: 2,
		LastFiles:     3,
		LastCombined:  1,
	}}

	c := NewCollector(provider, time.Hour)
	c.collect()

	if got := testutil.ToFloat64(HistoryRunsRecorded); got != 4 {
		t.Errorf("HistoryRunsRecorded = %v, want 4", got)
	}
	if got := testutil.ToFloat64(LastRunTimestamp); got != float64(last.Unix()) {
		t.Errorf("LastRunTimestamp = %v, want %v", got, last.Unix())
	}
	if got := testutil.ToFloat64(LastRunOutput.WithLabelValues("files")); got != 3 {
		t.Errorf("LastRunOutput{files} = %v, want 3", got)
	}
}

func TestCollectorStartStop(t *testing.T) {
	provider := &staticStats{}
	c := NewCollector(provider, 10*time.Millisecond)
	c.Start()
	time.Sleep(30 * time.Millisecond)
	c.Stop()

	provider.mu.Lock()
	defer provider.mu.Unlock()
	if provider.calls == 0 {
		t.Error("collector never queried the stats provider")
	}
}

func TestCollectorNilProvider(t *testing.T) {
	c := NewCollector(nil, time.Hour)
	c.collect()
}
