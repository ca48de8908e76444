// Package startup handles application initialization, configuration loading,
// and startup/shutdown logging.
//
// # Configuration
//
// All configuration is loaded from environment variables via [LoadConfig]:
//
//   - MEDIA_DIR: Root of the media tree that builds run on (default: /media)
//   - DATABASE_DIR: Directory of the run history database (default: /database)
//   - PORT: HTTP server port (default: 8080)
//   - METRICS_PORT: Prometheus metrics server port (default: 9090)
//   - METRICS_ENABLED: Enable or disable metrics server (default: true)
//   - COMBINE_ORDER: Combined playlist order - directory, natural or filename (default: directory)
//   - LOG_LEVEL: Logging level - debug, info, warn, error (default: info)
//   - LOG_HEALTH_CHECKS: Log health check requests (default: true)
//
// # Build Information
//
// Build-time variables are injected via ldflags and exposed via [GetBuildInfo].
//
// # Lifecycle Logging
//
// [LogDatabaseInit], [LogRunnerInit], [LogHTTPRoutes], [LogServerStarted],
// [LogShutdownInitiated] and [LogShutdownComplete] print the sections of the
// startup and shutdown log.
package startup
