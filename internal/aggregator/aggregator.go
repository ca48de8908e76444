package aggregator

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"playlist-builder/internal/builder"
	"playlist-builder/internal/filesystem"
	"playlist-builder/internal/logging"
	"playlist-builder/internal/mediatypes"
	"playlist-builder/internal/metrics"
	"playlist-builder/internal/natsort"
	"playlist-builder/internal/playlist"
)

var (
	// ErrNoRoot is returned when a run is started without a root directory.
	ErrNoRoot = errors.New("no root directory selected")
	// ErrNotDirectory is returned when the root is not a directory.
	ErrNotDirectory = errors.New("not a directory")
)

// Summary holds the counters reported at the end of a run.
type Summary struct {
	// Playlists is the number of direct and storyline documents written.
	Playlists int `json:"playlists"`
	// Files is the total number of tracks in those documents.
	Files int `json:"files"`
	// Combined is the number of combined documents written.
	Combined int `json:"combined"`
	// Directories is the number of directories visited.
	Directories int `json:"directories"`
	// Purged is the number of stale documents deleted before generating.
	Purged int `json:"purged"`
	// Skipped is the number of documents left out of a combination.
	Skipped int `json:"skipped"`

	Duration time.Duration `json:"-"`
}

// Report returns the two human-readable result lines of a run.
func (s Summary) Report() []string {
	return []string{
		fmt.Sprintf("%d playlists created with a total of %d files.", s.Playlists, s.Files),
		fmt.Sprintf("%d combined playlists created.", s.Combined),
	}
}

// Aggregator builds every playlist of a directory tree.
type Aggregator struct {
	Order Order
}

// New creates an Aggregator that sorts combined playlists by order.
func New(order Order) *Aggregator {
	return &Aggregator{Order: order}
}

// tree is the directory layout captured while purging.
type tree struct {
	preOrder  []string
	postOrder []string
}

// Run purges, regenerates and combines all playlists below root. The
// context is checked between directories.
func (a *Aggregator) Run(ctx context.Context, root string) (Summary, error) {
	start := time.Now()

	summary, err := a.run(ctx, root)
	summary.Duration = time.Since(start)

	metrics.BuildRunDuration.Observe(summary.Duration.Seconds())
	if err != nil {
		metrics.BuildRunsTotal.WithLabelValues("error").Inc()
		return summary, err
	}
	metrics.BuildRunsTotal.WithLabelValues("success").Inc()

	logging.Info("Build of %s complete in %v: %d playlists, %d files, %d combined",
		root, summary.Duration, summary.Playlists, summary.Files, summary.Combined)
	return summary, nil
}

func (a *Aggregator) run(ctx context.Context, root string) (Summary, error) {
	var summary Summary

	if root == "" {
		return summary, ErrNoRoot
	}

	root, err := filepath.Abs(root)
	if err != nil {
		return summary, fmt.Errorf("failed to resolve root %s: %w", root, err)
	}

	info, err := filesystem.StatWithRetry(root, filesystem.DefaultRetryConfig())
	if err != nil {
		return summary, fmt.Errorf("failed to stat root %s: %w", root, err)
	}
	if !info.IsDir() {
		return summary, fmt.Errorf("%s: %w", root, ErrNotDirectory)
	}

	metrics.BuildIsRunning.Set(1)
	defer metrics.BuildIsRunning.Set(0)

	logging.Info("Building playlists for %s (order: %s)", root, a.Order)

	t, purged, err := purge(ctx, root)
	summary.Purged = purged
	if err != nil {
		return summary, err
	}
	summary.Directories = len(t.preOrder)

	written, err := a.generate(ctx, t, &summary)
	if err != nil {
		return summary, err
	}

	if err := a.combine(ctx, t, written, &summary); err != nil {
		return summary, err
	}

	return summary, nil
}

// purge deletes every stale document below root and records the directory
// layout for the later passes. Children are visited in natural order.
func purge(ctx context.Context, root string) (tree, int, error) {
	var t tree
	purged := 0

	var walk func(dir string) error
	walk = func(dir string) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		entries, err := filesystem.ReadDirWithRetry(dir, filesystem.DefaultRetryConfig())
		if err != nil {
			return fmt.Errorf("failed to read directory %s: %w", dir, err)
		}

		t.preOrder = append(t.preOrder, dir)

		var children []string
		for _, e := range entries {
			path := filepath.Join(dir, e.Name())
			switch {
			case e.IsDir():
				children = append(children, path)
			case e.Type().IsRegular() && mediatypes.IsPurgeable(e.Name()):
				if err := filesystem.RemoveWithRetry(path, filesystem.DefaultRetryConfig()); err != nil {
					return fmt.Errorf("failed to remove %s: %w", path, err)
				}
				purged++
				metrics.PurgedDocuments.Inc()
				logging.Debug("Removed stale playlist %s", path)
			}
		}

		natsort.Sort(children)
		for _, child := range children {
			if err := walk(child); err != nil {
				return err
			}
		}

		t.postOrder = append(t.postOrder, dir)
		return nil
	}

	if err := walk(root); err != nil {
		return t, purged, err
	}

	if purged > 0 {
		logging.Info("Removed %d stale playlists under %s", purged, root)
	}
	return t, purged, nil
}

// generate writes the direct and storyline playlist of every directory and
// returns the directories whose direct playlist was written.
func (a *Aggregator) generate(ctx context.Context, t tree, summary *Summary) (map[string]bool, error) {
	written := make(map[string]bool)

	for _, dir := range t.preOrder {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		metrics.BuildDirectoriesVisited.Inc()

		n, err := builder.BuildDirectory(dir)
		if err != nil {
			return written, err
		}
		if n > 0 {
			summary.Playlists++
			summary.Files += n
			written[dir] = true
		}

		n, err = builder.BuildStoryline(dir)
		if err != nil {
			return written, err
		}
		if n > 0 {
			summary.Playlists++
			summary.Files += n
		}
	}

	return written, nil
}

// combine merges the documents of every directory, children first, into the
// playlist stored next to that directory.
func (a *Aggregator) combine(ctx context.Context, t tree, written map[string]bool, summary *Summary) error {
	for _, dir := range t.postOrder {
		if err := ctx.Err(); err != nil {
			return err
		}

		docs, err := documentsIn(dir)
		if err != nil {
			return err
		}
		if len(docs) == 0 {
			continue
		}

		// The direct playlist of dir is about to be replaced; fold it in.
		if written[dir] {
			docs = append(docs, playlist.SiblingPath(dir))
		}

		var locations []string
		for _, path := range docs {
			doc, err := playlist.ReadFile(path)
			if err != nil {
				logging.Warn("Skipping playlist %s while combining %s: %v", path, dir, err)
				metrics.CombineSkippedDocuments.Inc()
				summary.Skipped++
				continue
			}
			locations = append(locations, doc.Locations()...)
		}

		unique := Dedup(locations)
		if removed := len(locations) - len(unique); removed > 0 {
			metrics.CombineDuplicatesRemoved.Add(float64(removed))
		}
		a.Order.Sort(unique)

		out := playlist.SiblingPath(dir)
		if err := playlist.WriteFile(out, playlist.New(playlist.DefaultTitle, unique)); err != nil {
			return fmt.Errorf("failed to write combined playlist %s: %w", out, err)
		}

		summary.Combined++
		metrics.PlaylistsWritten.WithLabelValues(metrics.KindCombined).Inc()
		metrics.TracksWritten.WithLabelValues(metrics.KindCombined).Add(float64(len(unique)))
		logging.Debug("Combined %d playlists into %s with %d tracks", len(docs), out, len(unique))
	}

	return nil
}

// documentsIn lists the playlist documents directly inside dir in natural order.
func documentsIn(dir string) ([]string, error) {
	entries, err := filesystem.ReadDirWithRetry(dir, filesystem.DefaultRetryConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var docs []string
	for _, e := range entries {
		if e.Type().IsRegular() && mediatypes.IsPlaylistFile(e.Name()) {
			docs = append(docs, filepath.Join(dir, e.Name()))
		}
	}
	natsort.Sort(docs)
	return docs, nil
}
