// Package main provides the HTTP service of Playlist Builder.
//
// Playlist Builder keeps XSPF playlists in sync with a media directory tree.
// Each build purges the playlists it generated before, writes one playlist
// per directory of media files plus a Storyline.xspf for every directory
// holding a Storyline.txt, and finally combines the playlists of each
// directory into a playlist stored next to it.
//
// # Application Lifecycle
//
//  1. Configuration Loading: Reads environment variables and validates directories
//  2. Metrics Wiring: Registers the filesystem observer and volume labels
//  3. Database Initialization: Opens the SQLite run history
//  4. Runner Initialization: One build at a time, recorded in the history
//  5. HTTP Server Setup: Routes, logging and metrics middleware
//  6. Graceful Shutdown: Handles SIGINT/SIGTERM, stops all components cleanly
//
// # HTTP Server
//
// The application runs two HTTP servers:
//
//  1. Main Server (default port 8080):
//     - POST /api/build runs a build, answering 409 while one is running
//     - GET /api/runs lists recorded runs
//     - GET /api/playlists and /api/playlist/{path} browse generated playlists
//     - Health, readiness and version endpoints
//
//  2. Metrics Server (default port 9090, optional):
//     - Prometheus metrics endpoint (/metrics)
//
// # Environment Variables
//
//   - MEDIA_DIR: Root directory the playlists are built for (default: /media)
//   - DATABASE_DIR: Directory for the run history database (default: /database)
//   - PORT: Main HTTP server port (default: 8080)
//   - METRICS_PORT: Metrics server port (default: 9090)
//   - METRICS_ENABLED: Enable metrics server (default: true)
//   - COMBINE_ORDER: Order of combined playlists: directory, natural or filename
//   - LOG_LEVEL: Logging level (debug/info/warn/error)
//
// # Graceful Shutdown
//
//  1. Shutdown main HTTP server (30s timeout, a running build completes)
//  2. Shutdown metrics server (if running)
//  3. Stop stats collector
//  4. Close database connections
//
// The same builds are available offline through cmd/playlist-builder.
//
// # Related Packages
//
//   - [playlist-builder/internal/aggregator]: Purge, build and combine passes
//   - [playlist-builder/internal/builder]: Directory and storyline playlists
//   - [playlist-builder/internal/playlist]: XSPF documents
//   - [playlist-builder/internal/runner]: Serialized builds with history
//   - [playlist-builder/internal/handlers]: HTTP request handlers
//   - [playlist-builder/internal/startup]: Configuration and initialization
package main
