package playlist

import (
	"path/filepath"

	"playlist-builder/internal/mediatypes"
)

// Item is a track resolved against the local filesystem, for display.
type Item struct {
	Name     string              `json:"name"`
	Path     string              `json:"path"`
	Location string              `json:"location"`
	Type     mediatypes.FileType `json:"type"`
	MimeType string              `json:"mimeType"`
	Exists   bool                `json:"exists"`
}

// Summary is a parsed document prepared for the HTTP API.
type Summary struct {
	Title string `json:"title"`
	Path  string `json:"path"`
	Items []Item `json:"items"`
	Count int    `json:"count"`
}

// Resolve decodes every location of doc back to a path and checks that the
// file still exists. Locations that cannot be decoded are kept with Exists
// set to false.
func Resolve(docPath string, doc *Document) Summary {
	s := Summary{
		Title: doc.Title,
		Path:  docPath,
		Items: make([]Item, 0, doc.Len()),
	}

	for _, loc := range doc.Locations() {
		item := Item{Location: loc}
		if p, err := PathFromURI(loc); err == nil {
			item.Path = p
			item.Name = filepath.Base(p)
			item.Exists = Exists(p)
		} else {
			_, item.Name = SplitLocation(loc)
		}
		ext := mediatypes.Ext(item.Name)
		item.Type = mediatypes.GetFileType(ext)
		item.MimeType = mediatypes.GetMimeType(ext)
		s.Items = append(s.Items, item)
	}

	s.Count = len(s.Items)
	return s
}
