package playlist

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"playlist-builder/internal/filesystem"
)

const (
	// Namespace is the XSPF namespace declared on every document.
	Namespace = "http://xspf.org/ns/0/"
	// Version is the XSPF version attribute.
	Version = "1"

	// DefaultTitle titles directory and combined playlists.
	DefaultTitle = "Playlist"
	// StorylineTitle titles storyline playlists.
	StorylineTitle = "Storyline Playlist"

	header = `<?xml version="1.0" ?>` + "\n"
	indent = "  "
)

// ErrMalformed is returned when a document parses as XML but is not a usable playlist.
var ErrMalformed = errors.New("malformed playlist document")

// Document is an XSPF playlist: a title and an ordered list of tracks.
type Document struct {
	XMLName   xml.Name  `xml:"playlist" json:"-"`
	Version   string    `xml:"version,attr" json:"-"`
	XMLNS     string    `xml:"xmlns,attr" json:"-"`
	Title     string    `xml:"title" json:"title"`
	TrackList TrackList `xml:"trackList" json:"trackList"`
}

// TrackList wraps the tracks so the element is written even when empty.
type TrackList struct {
	Tracks []Track `xml:"track" json:"tracks"`
}

// Track references exactly one media file by its file:// URI.
type Track struct {
	Location string `xml:"location" json:"location"`
}

// New creates a document with the given title and one track per location.
func New(title string, locations []string) *Document {
	doc := &Document{Title: title}
	doc.TrackList.Tracks = make([]Track, len(locations))
	for i, loc := range locations {
		doc.TrackList.Tracks[i] = Track{Location: loc}
	}
	return doc
}

// FromPaths creates a document from absolute file paths, encoding each with FileURI.
func FromPaths(title string, paths []string) *Document {
	locations := make([]string, len(paths))
	for i, p := range paths {
		locations[i] = FileURI(p)
	}
	return New(title, locations)
}

// Len returns the number of tracks.
func (d *Document) Len() int {
	return len(d.TrackList.Tracks)
}

// Locations returns the track locations in document order.
func (d *Document) Locations() []string {
	locations := make([]string, len(d.TrackList.Tracks))
	for i, t := range d.TrackList.Tracks {
		locations[i] = t.Location
	}
	return locations
}

// Marshal serializes the document with an XML declaration and two-space indentation.
func (d *Document) Marshal() ([]byte, error) {
	out := Document{
		Version:   Version,
		XMLNS:     Namespace,
		Title:     d.Title,
		TrackList: d.TrackList,
	}

	body, err := xml.MarshalIndent(out, "", indent)
	if err != nil {
		return nil, fmt.Errorf("failed to encode playlist: %w", err)
	}

	var buf bytes.Buffer
	buf.Grow(len(header) + len(body) + 1)
	buf.WriteString(header)
	buf.Write(body)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Parse decodes an XSPF document. Tracks without a location make the whole
// document malformed.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	for i, t := range doc.TrackList.Tracks {
		loc := strings.TrimSpace(t.Location)
		if loc == "" {
			return nil, fmt.Errorf("%w: track %d has no location", ErrMalformed, i+1)
		}
		doc.TrackList.Tracks[i].Location = loc
	}

	return &doc, nil
}

// ReadFile reads and parses the document at path.
func ReadFile(path string) (*Document, error) {
	data, err := filesystem.ReadFileWithRetry(path, filesystem.DefaultRetryConfig())
	if err != nil {
		return nil, err
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// WriteFile serializes doc to path, replacing any existing file.
func WriteFile(path string, doc *Document) error {
	data, err := doc.Marshal()
	if err != nil {
		return err
	}
	return filesystem.WriteFileWithRetry(path, data, 0o644, filesystem.DefaultRetryConfig())
}

// SiblingPath returns where the playlist named after dir is stored: next to
// dir in its parent, so "X/Y" maps to "X/Y.xspf".
func SiblingPath(dir string) string {
	dir = filepath.Clean(dir)
	return filepath.Join(filepath.Dir(dir), filepath.Base(dir)+".xspf")
}

// Exists reports whether a regular file exists at path.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
