package metrics

// InitializeMetrics pre-populates all expected label combinations so that
// every metric is exported from the first Prometheus scrape.
// Call this once at startup after metric registration.
func InitializeMetrics() {
	for _, status := range []string{"success", "error"} {
		BuildRunsTotal.WithLabelValues(status)
	}

	for _, kind := range []string{KindDirectory, KindStoryline, KindCombined} {
		PlaylistsWritten.WithLabelValues(kind)
		TracksWritten.WithLabelValues(kind)
	}

	for _, count := range []string{"playlists", "files", "combined"} {
		LastRunOutput.WithLabelValues(count)
	}

	volumes := []string{"media", "database", "unknown"}
	fsOps := []string{"stat", "readdir", "read", "write", "remove"}

	for _, vol := range volumes {
		for _, op := range fsOps {
			FilesystemOperationDuration.WithLabelValues(vol, op)
			FilesystemOperationErrors.WithLabelValues(vol, op)
			FilesystemRetryAttempts.WithLabelValues(op, vol)
			FilesystemRetrySuccess.WithLabelValues(op, vol)
			FilesystemRetryFailures.WithLabelValues(op, vol)
			FilesystemStaleErrors.WithLabelValues(op, vol)
			FilesystemRetryDuration.WithLabelValues(op, vol)
		}
	}

	for _, op := range []string{"initialize_schema", "record_run", "list_runs", "run_stats"} {
		DBQueryTotal.WithLabelValues(op, "success")
		DBQueryTotal.WithLabelValues(op, "error")
		DBQueryDuration.WithLabelValues(op)
	}
}
