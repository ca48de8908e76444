package mediatypes

import (
	"testing"
)

func TestGetFileType(t *testing.T) {
	tests := []struct {
		name string
		ext  string
		want FileType
	}{
		{
			name: "MP4 video",
			ext:  ".mp4",
			want: FileTypeVideo,
		},
		{
			name: "MKV video",
			ext:  ".mkv",
			want: FileTypeVideo,
		},
		{
			name: "AVI video",
			ext:  ".avi",
			want: FileTypeVideo,
		},
		{
			name: "MP3 audio",
			ext:  ".mp3",
			want: FileTypeAudio,
		},
		{
			name: "XSPF playlist",
			ext:  ".xspf",
			want: FileTypePlaylist,
		},
		{
			name: "M3U legacy playlist",
			ext:  ".m3u",
			want: FileTypeLegacyPlaylist,
		},
		{
			name: "Unknown extension",
			ext:  ".xyz",
			want: FileTypeOther,
		},
		{
			name: "Empty extension",
			ext:  "",
			want: FileTypeOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetFileType(tt.ext)
			if got != tt.want {
				t.Errorf("GetFileType(%q) = %v, want %v", tt.ext, got, tt.want)
			}
		})
	}
}

func TestGetMimeType(t *testing.T) {
	tests := []struct {
		ext  string
		want string
	}{
		{".mp4", "video/mp4"},
		{".mp3", "audio/mpeg"},
		{".xspf", "application/xspf+xml"},
		{".bin", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			if got := GetMimeType(tt.ext); got != tt.want {
				t.Errorf("GetMimeType(%q) = %q, want %q", tt.ext, got, tt.want)
			}
		})
	}
}

func TestIsMediaFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"episode.mp4", true},
		{"EPISODE.MP4", true},
		{"song.mp3", true},
		{"movie.mkv", true},
		{"clip.avi", true},
		{"cover.jpg", false},
		{"Storyline.txt", false},
		{"Season.xspf", false},
		{"noext", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMediaFile(tt.name); got != tt.want {
				t.Errorf("IsMediaFile(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestIsPlaylistAndPurgeable(t *testing.T) {
	tests := []struct {
		name      string
		playlist  bool
		purgeable bool
	}{
		{"Season 1.xspf", true, true},
		{"Storyline.XSPF", true, true},
		{"old.m3u", false, true},
		{"episode.mp4", false, false},
		{"Storyline.txt", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPlaylistFile(tt.name); got != tt.playlist {
				t.Errorf("IsPlaylistFile(%q) = %v, want %v", tt.name, got, tt.playlist)
			}
			if got := IsPurgeable(tt.name); got != tt.purgeable {
				t.Errorf("IsPurgeable(%q) = %v, want %v", tt.name, got, tt.purgeable)
			}
		})
	}
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/media/Show/01 Episode One.mp4", "01 Episode One"},
		{"Episode.Two.mkv", "Episode.Two"},
		{"noext", "noext"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := BaseName(tt.path); got != tt.want {
				t.Errorf("BaseName(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
