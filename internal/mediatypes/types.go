package mediatypes

import (
	"path/filepath"
	"strings"
)

// FileType represents the role a file plays in a playlist build.
type FileType string

const (
	// FileTypeFolder represents a directory.
	FileTypeFolder FileType = "folder"
	// FileTypeVideo represents a video file.
	FileTypeVideo FileType = "video"
	// FileTypeAudio represents an audio file.
	FileTypeAudio FileType = "audio"
	// FileTypePlaylist represents a generated XSPF playlist.
	FileTypePlaylist FileType = "playlist"
	// FileTypeLegacyPlaylist represents a plain-text playlist left by older tools.
	FileTypeLegacyPlaylist FileType = "legacy-playlist"
	// FileTypeOther represents an unknown or unsupported file type.
	FileTypeOther FileType = "other"
)

const (
	// PlaylistExt is the extension of every document the builder writes.
	PlaylistExt = ".xspf"

	// StorylineManifest is the marker file holding a directory's storyline.
	StorylineManifest = "Storyline.txt"

	// StorylinePlaylist is the name of the storyline document written next to the manifest.
	StorylinePlaylist = "Storyline" + PlaylistExt
)

// VideoExtensions maps file extensions to whether they are recognized video containers.
var VideoExtensions = map[string]bool{
	".mp4": true,
	".mkv": true,
	".avi": true,
}

// AudioExtensions maps file extensions to whether they are recognized audio files.
var AudioExtensions = map[string]bool{
	".mp3": true,
}

// PlaylistExtensions maps file extensions to whether they are generated playlist documents.
// These are purged before a build and read back when combining.
var PlaylistExtensions = map[string]bool{
	PlaylistExt: true,
}

// LegacyPlaylistExtensions are only ever deleted, never generated or combined.
var LegacyPlaylistExtensions = map[string]bool{
	".m3u": true,
}

// MimeTypes maps file extensions to their MIME types.
var MimeTypes = map[string]string{
	".mp4": "video/mp4",
	".mkv": "video/x-matroska",
	".avi": "video/x-msvideo",
	".mp3": "audio/mpeg",

	".xspf": "application/xspf+xml",
	".m3u":  "audio/x-mpegurl",
	".txt":  "text/plain; charset=utf-8",
}

// Ext returns the lowercased extension of name, including the leading dot.
func Ext(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

// GetFileType returns the FileType for a given file extension.
// The extension should be lowercase and include the leading dot (e.g., ".mp4").
// Returns FileTypeOther if the extension is not recognized.
func GetFileType(ext string) FileType {
	if VideoExtensions[ext] {
		return FileTypeVideo
	}
	if AudioExtensions[ext] {
		return FileTypeAudio
	}
	if PlaylistExtensions[ext] {
		return FileTypePlaylist
	}
	if LegacyPlaylistExtensions[ext] {
		return FileTypeLegacyPlaylist
	}
	return FileTypeOther
}

// GetMimeType returns the MIME type for a given file extension.
// Returns "application/octet-stream" if the extension is not recognized.
func GetMimeType(ext string) string {
	if mime, ok := MimeTypes[ext]; ok {
		return mime
	}
	return "application/octet-stream"
}

// IsMediaFile reports whether name has a recognized video or audio extension.
func IsMediaFile(name string) bool {
	switch GetFileType(Ext(name)) {
	case FileTypeVideo, FileTypeAudio:
		return true
	}
	return false
}

// IsPlaylistFile reports whether name is a generated playlist document.
func IsPlaylistFile(name string) bool {
	return GetFileType(Ext(name)) == FileTypePlaylist
}

// IsPurgeable reports whether name is removed by the stale-playlist purge.
func IsPurgeable(name string) bool {
	switch GetFileType(Ext(name)) {
	case FileTypePlaylist, FileTypeLegacyPlaylist:
		return true
	}
	return false
}

// BaseName returns the file name of path without its extension.
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
