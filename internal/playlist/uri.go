package playlist

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

const (
	fileScheme = "file://"
	upperhex   = "0123456789ABCDEF"
)

// FileURI turns an absolute path into a file:// location. Separators become
// forward slashes and every byte outside [A-Za-z0-9_.~-] is percent-encoded,
// except ':' and '/' which are kept as-is.
//
//	/media/Show/Ep 1.mp4  ->  file:///media/Show/Ep%201.mp4
//	C:\Media\a.mp4        ->  file:///C:/Media/a.mp4
func FileURI(path string) string {
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return fileScheme + escapePath(p)
}

// PathFromURI reverses FileURI.
func PathFromURI(location string) (string, error) {
	if !strings.HasPrefix(location, fileScheme) {
		return "", fmt.Errorf("%w: location %q is not a file:// URI", ErrMalformed, location)
	}

	p, err := url.PathUnescape(strings.TrimPrefix(location, fileScheme))
	if err != nil {
		return "", fmt.Errorf("%w: location %q: %v", ErrMalformed, location, err)
	}

	// Drive-letter paths were written as /C:/...
	if len(p) >= 3 && p[0] == '/' && p[2] == ':' {
		p = p[1:]
	}
	return filepath.FromSlash(p), nil
}

// SplitLocation splits a location at its last slash into the directory
// portion and the file portion.
func SplitLocation(location string) (dir, file string) {
	i := strings.LastIndex(location, "/")
	if i < 0 {
		return "", location
	}
	return location[:i], location[i+1:]
}

func escapePath(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldKeep(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func shouldKeep(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '_', '.', '-', '~', ':', '/':
		return true
	}
	return false
}
