package builder

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"playlist-builder/internal/filesystem"
	"playlist-builder/internal/logging"
	"playlist-builder/internal/matcher"
	"playlist-builder/internal/mediatypes"
	"playlist-builder/internal/metrics"
	"playlist-builder/internal/natsort"
	"playlist-builder/internal/playlist"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// BuildDirectory writes the playlist of the media files directly inside dir
// and returns the number of tracks written. A directory without media files
// produces no document.
func BuildDirectory(dir string) (int, error) {
	files, err := directMediaFiles(dir)
	if err != nil {
		return 0, err
	}
	if len(files) == 0 {
		return 0, nil
	}

	natsort.Sort(files)

	out := playlist.SiblingPath(dir)
	if err := playlist.WriteFile(out, playlist.FromPaths(playlist.DefaultTitle, files)); err != nil {
		return 0, fmt.Errorf("failed to write playlist %s: %w", out, err)
	}

	metrics.PlaylistsWritten.WithLabelValues(metrics.KindDirectory).Inc()
	metrics.TracksWritten.WithLabelValues(metrics.KindDirectory).Add(float64(len(files)))
	logging.Debug("Wrote %s with %d tracks", out, len(files))

	return len(files), nil
}

// BuildStoryline writes dir/Storyline.xspf from the dir/Storyline.txt
// manifest and returns the number of tracks written. A missing or empty
// manifest, or one that resolves to no files, produces no document.
func BuildStoryline(dir string) (int, error) {
	entries, err := ReadManifest(dir)
	if err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		return 0, nil
	}

	candidates, err := MediaFilesUnder(dir)
	if err != nil {
		return 0, err
	}

	res := matcher.Match(entries, candidates)
	for _, entry := range res.Unmatched {
		logging.Warn("Storyline entry %q in %s matched no file", entry, dir)
	}
	metrics.StorylineUnmatched.Add(float64(len(res.Unmatched)))

	if len(res.Matched) == 0 {
		return 0, nil
	}

	out := filepath.Join(dir, mediatypes.StorylinePlaylist)
	if err := playlist.WriteFile(out, playlist.FromPaths(playlist.StorylineTitle, res.Matched)); err != nil {
		return 0, fmt.Errorf("failed to write storyline %s: %w", out, err)
	}

	metrics.PlaylistsWritten.WithLabelValues(metrics.KindStoryline).Inc()
	metrics.TracksWritten.WithLabelValues(metrics.KindStoryline).Add(float64(len(res.Matched)))
	logging.Debug("Wrote %s with %d of %d entries resolved", out, len(res.Matched), len(entries))

	return len(res.Matched), nil
}

// ReadManifest returns the non-blank, trimmed lines of dir/Storyline.txt in
// file order. A missing manifest yields no entries and no error.
func ReadManifest(dir string) ([]string, error) {
	path := filepath.Join(dir, mediatypes.StorylineManifest)

	data, err := filesystem.ReadFileWithRetry(path, filesystem.DefaultRetryConfig())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	return ParseManifest(data), nil
}

// ParseManifest splits manifest contents into entries. Blank lines are
// dropped; a leading byte order mark and CRLF line endings are accepted.
func ParseManifest(data []byte) []string {
	data = bytes.TrimPrefix(data, utf8BOM)

	var entries []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			entries = append(entries, line)
		}
	}
	return entries
}

// MediaFilesUnder returns every media file in the subtree rooted at dir.
// Symbolic links are not followed.
func MediaFilesUnder(dir string) ([]string, error) {
	var files []string

	var walk func(string) error
	walk = func(d string) error {
		entries, err := filesystem.ReadDirWithRetry(d, filesystem.DefaultRetryConfig())
		if err != nil {
			return fmt.Errorf("failed to read directory %s: %w", d, err)
		}
		for _, e := range entries {
			path := filepath.Join(d, e.Name())
			switch {
			case e.IsDir():
				if err := walk(path); err != nil {
					return err
				}
			case e.Type().IsRegular() && mediatypes.IsMediaFile(e.Name()):
				files = append(files, path)
			}
		}
		return nil
	}

	if err := walk(dir); err != nil {
		return nil, err
	}
	return files, nil
}

func directMediaFiles(dir string) ([]string, error) {
	entries, err := filesystem.ReadDirWithRetry(dir, filesystem.DefaultRetryConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.Type().IsRegular() && mediatypes.IsMediaFile(e.Name()) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}
