// Package metrics provides Prometheus instrumentation for the playlist builder.
//
// All metrics are prefixed with "playlist_builder_" and registered with the
// default registry through promauto, so the HTTP service only has to mount
// promhttp.Handler().
//
// # Build Metrics
//
//   - BuildRunsTotal: runs by status (success/error)
//   - BuildRunDuration: histogram of run duration
//   - BuildIsRunning: 1 while a run is in progress
//   - BuildDirectoriesVisited: directories visited by the generation pass
//   - PlaylistsWritten / TracksWritten: documents and tracks by kind
//     (directory, storyline, combined)
//   - PurgedDocuments: stale documents deleted before a run
//   - StorylineUnmatched: manifest entries that matched no file
//   - CombineSkippedDocuments: malformed documents skipped while combining
//   - CombineDuplicatesRemoved: duplicate locations dropped while combining
//
// # History Metrics
//
// The Collector periodically reads run history statistics from a
// StatsProvider (the database) and exports them as gauges.
//
// # Filesystem Metrics
//
// NewFilesystemObserver returns the filesystem.Observer implementation that
// records operation durations, errors and NFS retry behavior per volume.
//
// # HTTP and Database Metrics
//
// Request counts, durations and in-flight requests are recorded by the
// middleware package; query counts and durations by the database package.
package metrics
