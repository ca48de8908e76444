// Package filesystem provides utilities for filesystem operations with retry logic for NFS
package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"playlist-builder/internal/logging"
)

// VolumeResolver maps file paths to known volume names for metric labeling.
// It uses longest-prefix matching on absolute paths.
type VolumeResolver struct {
	// mounts is sorted by path length descending for longest-prefix matching
	mounts []volumeMount
}

type volumeMount struct {
	path string // absolute path with trailing slash (e.g., "/media/")
	name string // volume label (e.g., "media")
}

// NewVolumeResolver creates a resolver from a map of volume name → absolute path.
// Example:
//
//	NewVolumeResolver(map[string]string{
//	    "media":    "/media",
//	    "database": "/database",
//	})
func NewVolumeResolver(volumes map[string]string) *VolumeResolver {
	mounts := make([]volumeMount, 0, len(volumes))
	for name, path := range volumes {
		absPath, err := filepath.Abs(path)
		if err != nil {
			absPath = path
		}
		if !strings.HasSuffix(absPath, "/") {
			absPath += "/"
		}
		mounts = append(mounts, volumeMount{path: absPath, name: name})
	}

	sort.Slice(mounts, func(i, j int) bool {
		return len(mounts[i].path) > len(mounts[j].path)
	})

	return &VolumeResolver{mounts: mounts}
}

// Resolve returns the volume name for a given file path.
// Returns "unknown" if the path doesn't match any configured volume.
func (vr *VolumeResolver) Resolve(path string) string {
	if vr == nil {
		return "unknown"
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "unknown"
	}

	for _, mount := range vr.mounts {
		if strings.HasPrefix(absPath+"/", mount.path) {
			return mount.name
		}
	}

	return "unknown"
}

// defaultResolver is the package-level resolver set at startup
var defaultResolver *VolumeResolver

// SetDefaultVolumeResolver sets the package-level volume resolver.
// Call this once at startup after loading configuration.
func SetDefaultVolumeResolver(vr *VolumeResolver) {
	defaultResolver = vr
}

// RetryConfig configures retry behavior for filesystem operations
type RetryConfig struct {
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	// VolumeResolver overrides the package-level resolver for this operation.
	// If nil, the package-level default is used.
	VolumeResolver *VolumeResolver
}

// DefaultRetryConfig returns sensible defaults for NFS retry behavior
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:     3,
		InitialBackoff: 50 * time.Millisecond,
		MaxBackoff:     500 * time.Millisecond,
	}
}

func (c *RetryConfig) resolveVolume(path string) string {
	if c.VolumeResolver != nil {
		return c.VolumeResolver.Resolve(path)
	}
	return defaultResolver.Resolve(path)
}

// isNFSStaleError checks if an error is an NFS stale file handle error
func isNFSStaleError(err error) bool {
	if err == nil {
		return false
	}

	// ESTALE is errno 116 on Linux
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno == syscall.ESTALE
	}

	return false
}

// retry runs fn until it succeeds, fails with an error other than ESTALE, or
// runs out of attempts. op labels both the log lines and the metrics.
func retry[T any](op, path string, config RetryConfig, fn func() (T, error)) (T, error) {
	start := time.Now()
	volume := config.resolveVolume(path)
	o := observe()
	var lastErr error
	var zero T
	backoff := config.InitialBackoff

	finish := func(err error) {
		if o != nil {
			elapsed := time.Since(start).Seconds()
			o.ObserveOperation(volume, op, elapsed, err)
			o.ObserveRetryDuration(op, volume, elapsed)
		}
	}

	for attempt := 0; attempt <= config.MaxRetries; attempt++ {
		result, err := fn()
		if err == nil {
			if attempt > 0 {
				logging.Info("NFS %s succeeded on retry %d for %s", op, attempt, path)
				if o != nil {
					o.ObserveRetrySuccess(op, volume)
				}
			}
			finish(nil)
			return result, nil
		}

		lastErr = err

		if !isNFSStaleError(err) {
			finish(err)
			return zero, err
		}

		if o != nil {
			o.ObserveStaleError(op, volume)
		}

		// Don't sleep after the last attempt
		if attempt < config.MaxRetries {
			if o != nil {
				o.ObserveRetryAttempt(op, volume)
			}
			logging.Debug("NFS %s stale file handle for %s, retrying in %v (attempt %d/%d)",
				op, path, backoff, attempt+1, config.MaxRetries)
			time.Sleep(backoff)

			backoff *= 2
			if backoff > config.MaxBackoff {
				backoff = config.MaxBackoff
			}
		}
	}

	logging.Warn("NFS %s failed after %d retries for %s: %v", op, config.MaxRetries, path, lastErr)
	if o != nil {
		o.ObserveRetryFailure(op, volume)
	}
	finish(lastErr)
	return zero, lastErr
}

// StatWithRetry performs os.Stat with retry logic for NFS stale file handle errors
func StatWithRetry(path string, config RetryConfig) (os.FileInfo, error) {
	return retry("stat", path, config, func() (os.FileInfo, error) {
		return os.Stat(path)
	})
}

// ReadDirWithRetry performs os.ReadDir with retry logic for NFS stale file handle errors.
// Entries are returned sorted by filename, as os.ReadDir does.
func ReadDirWithRetry(path string, config RetryConfig) ([]os.DirEntry, error) {
	return retry("readdir", path, config, func() ([]os.DirEntry, error) {
		return os.ReadDir(path)
	})
}

// ReadFileWithRetry performs os.ReadFile with retry logic for NFS stale file handle errors
func ReadFileWithRetry(path string, config RetryConfig) ([]byte, error) {
	return retry("read", path, config, func() ([]byte, error) {
		return os.ReadFile(path)
	})
}

// WriteFileWithRetry performs os.WriteFile with retry logic for NFS stale file handle errors
func WriteFileWithRetry(path string, data []byte, perm os.FileMode, config RetryConfig) error {
	_, err := retry("write", path, config, func() (struct{}, error) {
		return struct{}{}, os.WriteFile(path, data, perm)
	})
	return err
}

// RemoveWithRetry performs os.Remove with retry logic for NFS stale file handle errors
func RemoveWithRetry(path string, config RetryConfig) error {
	_, err := retry("remove", path, config, func() (struct{}, error) {
		return struct{}{}, os.Remove(path)
	})
	return err
}
