package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Playlist kinds used as the "kind" label.
const (
	KindDirectory = "directory"
	KindStoryline = "storyline"
	KindCombined  = "combined"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playlist_builder_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "playlist_builder_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "playlist_builder_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Build metrics
var (
	BuildRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playlist_builder_runs_total",
			Help: "Total number of playlist build runs by outcome",
		},
		[]string{"status"}, // "success", "error"
	)

	BuildRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "playlist_builder_run_duration_seconds",
			Help:    "Playlist build run duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60, 300},
		},
	)

	BuildIsRunning = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "playlist_builder_running",
			Help: "Whether a build is currently running (1 = running, 0 = idle)",
		},
	)

	BuildDirectoriesVisited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "playlist_builder_directories_visited_total",
			Help: "Total number of directories visited by the generation pass",
		},
	)

	PlaylistsWritten = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playlist_builder_playlists_written_total",
			Help: "Total number of playlist documents written by kind",
		},
		[]string{"kind"},
	)

	TracksWritten = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playlist_builder_tracks_written_total",
			Help: "Total number of track entries written by playlist kind",
		},
		[]string{"kind"},
	)

	PurgedDocuments = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "playlist_builder_purged_documents_total",
			Help: "Total number of stale playlist documents deleted before a build",
		},
	)

	StorylineUnmatched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "playlist_builder_storyline_unmatched_total",
			Help: "Total number of storyline entries that resolved to no file",
		},
	)

	CombineSkippedDocuments = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "playlist_builder_combine_skipped_documents_total",
			Help: "Total number of unreadable or malformed documents skipped while combining",
		},
	)

	CombineDuplicatesRemoved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "playlist_builder_combine_duplicates_removed_total",
			Help: "Total number of duplicate track entries dropped while combining",
		},
	)
)

// Run history metrics, refreshed by the Collector
var (
	HistoryRunsRecorded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "playlist_builder_history_runs",
			Help: "Number of runs recorded in the history database",
		},
	)

	LastRunTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "playlist_builder_last_run_timestamp",
			Help: "Unix timestamp of the last recorded run",
		},
	)

	LastRunOutput = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "playlist_builder_last_run_output",
			Help: "Output counts of the last recorded run",
		},
		[]string{"count"}, // "playlists", "files", "combined"
	)
)

// Database metrics
var (
	DBQueryTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playlist_builder_db_queries_total",
			Help: "Total number of database queries",
		},
		[]string{"operation", "status"},
	)

	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "playlist_builder_db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"operation"},
	)
)

// Filesystem metrics
var (
	FilesystemOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "playlist_builder_filesystem_operation_duration_seconds",
			Help:    "Filesystem operation duration in seconds by volume and operation",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"volume", "operation"},
	)

	FilesystemOperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playlist_builder_filesystem_operation_errors_total",
			Help: "Total number of failed filesystem operations by volume and operation",
		},
		[]string{"volume", "operation"},
	)

	FilesystemRetryAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playlist_builder_filesystem_retry_attempts_total",
			Help: "Total number of filesystem operation retries after ESTALE",
		},
		[]string{"operation", "volume"},
	)

	FilesystemRetrySuccess = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playlist_builder_filesystem_retry_success_total",
			Help: "Total number of filesystem operations that succeeded after retrying",
		},
		[]string{"operation", "volume"},
	)

	FilesystemRetryFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playlist_builder_filesystem_retry_failures_total",
			Help: "Total number of filesystem operations that failed after all retries",
		},
		[]string{"operation", "volume"},
	)

	FilesystemStaleErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playlist_builder_filesystem_stale_errors_total",
			Help: "Total number of NFS stale file handle errors",
		},
		[]string{"operation", "volume"},
	)

	FilesystemRetryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "playlist_builder_filesystem_retry_duration_seconds",
			Help:    "Total time spent in a filesystem operation including retries",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2},
		},
		[]string{"operation", "volume"},
	)
)

// Application info metric
var (
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "playlist_builder_app_info",
			Help: "Application information",
		},
		[]string{"version", "commit", "go_version"},
	)
)

// SetAppInfo sets the application info metric
func SetAppInfo(version, commit, goVersion string) {
	AppInfo.WithLabelValues(version, commit, goVersion).Set(1)
}
