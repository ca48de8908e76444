package handlers

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"playlist-builder/internal/filesystem"
	"playlist-builder/internal/logging"
	"playlist-builder/internal/mediatypes"
	"playlist-builder/internal/natsort"
	"playlist-builder/internal/playlist"
)

// PlaylistInfo describes one generated playlist document.
type PlaylistInfo struct {
	// Path is relative to the media directory, with forward slashes.
	Path    string    `json:"path"`
	Name    string    `json:"name"`
	Title   string    `json:"title,omitempty"`
	Tracks  int       `json:"tracks"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"modTime"`
	Error   string    `json:"error,omitempty"`
}

// PlaylistListing is the response of ListPlaylists.
type PlaylistListing struct {
	// Root is the combined playlist of the whole media directory, stored
	// next to it.
	Root      *PlaylistInfo  `json:"root,omitempty"`
	Playlists []PlaylistInfo `json:"playlists"`
}

// ListPlaylists returns every playlist document below the media directory.
func (h *Handlers) ListPlaylists(w http.ResponseWriter, _ *http.Request) {
	playlists, err := h.collectPlaylists()
	if err != nil {
		logging.Error("Failed to list playlists: %v", err)
		writeJSONError(w, "Failed to list playlists", http.StatusInternalServerError)
		return
	}

	listing := PlaylistListing{Playlists: playlists}
	rootDoc := playlist.SiblingPath(h.mediaDir)
	if playlist.Exists(rootDoc) {
		info := describePlaylist(rootDoc, filepath.Base(rootDoc))
		listing.Root = &info
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, listing)
}

// GetPlaylist returns the tracks of one playlist below the media directory.
func (h *Handlers) GetPlaylist(w http.ResponseWriter, r *http.Request) {
	rel := mux.Vars(r)["path"]

	docPath, ok := h.resolvePlaylistPath(rel)
	if !ok {
		writeJSONError(w, "Invalid playlist path", http.StatusBadRequest)
		return
	}

	doc, err := playlist.ReadFile(docPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		writeJSONError(w, "Playlist not found", http.StatusNotFound)
		return
	case errors.Is(err, playlist.ErrMalformed):
		writeJSONError(w, "Playlist is malformed", http.StatusUnprocessableEntity)
		return
	case err != nil:
		logging.Error("Failed to read playlist %s: %v", docPath, err)
		writeJSONError(w, "Failed to read playlist", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, playlist.Resolve(rel, doc))
}

// resolvePlaylistPath maps a request path to a playlist file inside the
// media directory. Paths escaping the media directory are rejected.
func (h *Handlers) resolvePlaylistPath(rel string) (string, bool) {
	if rel == "" || strings.Contains(rel, "\\") {
		return "", false
	}
	clean := path.Clean("/" + rel)
	if clean == "/" || !mediatypes.IsPlaylistFile(clean) {
		return "", false
	}
	return filepath.Join(h.mediaDir, filepath.FromSlash(strings.TrimPrefix(clean, "/"))), true
}

func (h *Handlers) collectPlaylists() ([]PlaylistInfo, error) {
	playlists := []PlaylistInfo{}

	var walk func(dir string) error
	walk = func(dir string) error {
		entries, err := filesystem.ReadDirWithRetry(dir, filesystem.DefaultRetryConfig())
		if err != nil {
			return err
		}
		for _, e := range entries {
			full := filepath.Join(dir, e.Name())
			switch {
			case e.IsDir():
				if err := walk(full); err != nil {
					return err
				}
			case e.Type().IsRegular() && mediatypes.IsPlaylistFile(e.Name()):
				rel, err := filepath.Rel(h.mediaDir, full)
				if err != nil {
					return err
				}
				playlists = append(playlists, describePlaylist(full, filepath.ToSlash(rel)))
			}
		}
		return nil
	}

	if err := walk(h.mediaDir); err != nil {
		return nil, err
	}

	sort.Slice(playlists, func(i, j int) bool {
		return natsort.Less(playlists[i].Path, playlists[j].Path)
	})
	return playlists, nil
}

func describePlaylist(full, rel string) PlaylistInfo {
	info := PlaylistInfo{
		Path: rel,
		Name: filepath.Base(full),
	}

	if st, err := filesystem.StatWithRetry(full, filesystem.DefaultRetryConfig()); err == nil {
		info.Size = st.Size()
		info.ModTime = st.ModTime()
	}

	doc, err := playlist.ReadFile(full)
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.Title = doc.Title
	info.Tracks = doc.Len()
	return info
}
