/*
Package filesystem provides resilient filesystem operations with automatic retry logic
for NFS stale file handle errors.

# Purpose

Media libraries frequently live on NFS mounts. A playlist build lists, reads,
writes and deletes many files in one pass, and a single ESTALE (stale file
handle) error would otherwise abort the whole run. Every operation the
builders perform goes through this package.

# Operations

	filesystem.StatWithRetry(path, cfg)
	filesystem.ReadDirWithRetry(dir, cfg)
	filesystem.ReadFileWithRetry(path, cfg)
	filesystem.WriteFileWithRetry(path, data, 0o644, cfg)
	filesystem.RemoveWithRetry(path, cfg)

# Retry Behavior

The retry logic implements exponential backoff with the following defaults:
  - MaxRetries: 3 attempts
  - InitialBackoff: 50ms
  - MaxBackoff: 500ms

Only NFS stale file handle errors (ESTALE) trigger retries. All other errors
fail immediately and are returned unchanged, so callers can still use
errors.Is(err, fs.ErrNotExist) and friends.

# Metrics

Durations, errors and retries are reported through the Observer set with
SetObserver. The metrics package provides the Prometheus implementation;
with no observer set, nothing is recorded.
*/
package filesystem
