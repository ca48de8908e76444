package runner

import (
	"context"
	"errors"
	"sync"
	"time"

	"playlist-builder/internal/aggregator"
	"playlist-builder/internal/database"
	"playlist-builder/internal/logging"
)

// ErrBusy is returned when a build is requested while another one is running.
var ErrBusy = errors.New("a build is already in progress")

// History stores finished runs.
type History interface {
	RecordRun(ctx context.Context, run *database.Run) error
}

// Result is the outcome of one build.
type Result struct {
	Run     *database.Run      `json:"run"`
	Summary aggregator.Summary `json:"summary"`
	Report  []string           `json:"report"`
}

// Runner runs builds of one media directory, one at a time.
type Runner struct {
	history  History
	mediaDir string
	order    aggregator.Order

	mu        sync.Mutex
	isRunning bool
	current   *database.Run
	lastRun   *database.Run
	startTime time.Time

	onComplete func(Result)
}

// New creates a Runner for mediaDir. history may be nil.
func New(history History, mediaDir string, order aggregator.Order) *Runner {
	return &Runner{
		history:   history,
		mediaDir:  mediaDir,
		order:     order,
		startTime: time.Now(),
	}
}

// SetOnComplete sets a callback invoked after every finished build.
func (r *Runner) SetOnComplete(callback func(Result)) {
	r.onComplete = callback
}

// MediaDir returns the directory the runner builds.
func (r *Runner) MediaDir() string {
	return r.mediaDir
}

// Order returns the default combine order.
func (r *Runner) Order() aggregator.Order {
	return r.order
}

// Build runs a full build of the media directory with the default order.
func (r *Runner) Build(ctx context.Context) (Result, error) {
	return r.BuildWith(ctx, r.mediaDir, r.order)
}

// BuildWith runs a full build of root with the given order. It returns
// ErrBusy without doing anything if a build is already running.
func (r *Runner) BuildWith(ctx context.Context, root string, order aggregator.Order) (Result, error) {
	startedAt := time.Now()
	run := database.NewRun(root, order.String(), startedAt)

	if !r.tryStart(run) {
		logging.Info("Build already in progress, skipping...")
		return Result{}, ErrBusy
	}
	defer r.finish(run)

	summary, err := aggregator.New(order).Run(ctx, root)

	run.Playlists = summary.Playlists
	run.Files = summary.Files
	run.Combined = summary.Combined
	run.Purged = summary.Purged
	run.Finish(time.Since(startedAt), err)

	if err != nil {
		logging.Error("Build of %s failed: %v", root, err)
	}

	if r.history != nil {
		// The build outcome is recorded even if the caller's context ended.
		if recErr := r.history.RecordRun(context.WithoutCancel(ctx), run); recErr != nil {
			logging.Error("Failed to record run %s: %v", run.ID, recErr)
		}
	}

	result := Result{Run: run, Summary: summary, Report: summary.Report()}
	if err == nil && r.onComplete != nil {
		r.onComplete(result)
	}
	return result, err
}

// tryStart marks run as current; returns false if a build is already in progress.
func (r *Runner) tryStart(run *database.Run) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.isRunning {
		return false
	}
	r.isRunning = true
	snapshot := *run
	r.current = &snapshot
	return true
}

// finish marks the build as complete.
func (r *Runner) finish(run *database.Run) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.isRunning = false
	r.current = nil
	snapshot := *run
	r.lastRun = &snapshot
}

// IsRunning returns whether a build is currently in progress.
func (r *Runner) IsRunning() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.isRunning
}

// LastRun returns the last finished run of this process, or nil.
func (r *Runner) LastRun() *database.Run {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastRun
}

// HealthStatus contains health check information.
type HealthStatus struct {
	Building  bool          `json:"building"`
	StartTime time.Time     `json:"startTime"`
	Uptime    string        `json:"uptime"`
	MediaDir  string        `json:"mediaDir"`
	Order     string        `json:"order"`
	Current   *database.Run `json:"current,omitempty"`
	LastRun   *database.Run `json:"lastRun,omitempty"`
}

// GetHealthStatus returns detailed health information.
func (r *Runner) GetHealthStatus() HealthStatus {
	r.mu.Lock()
	defer r.mu.Unlock()

	return HealthStatus{
		Building:  r.isRunning,
		StartTime: r.startTime,
		Uptime:    time.Since(r.startTime).String(),
		MediaDir:  r.mediaDir,
		Order:     r.order.String(),
		Current:   r.current,
		LastRun:   r.lastRun,
	}
}
