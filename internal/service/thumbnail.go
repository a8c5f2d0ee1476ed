package service

import (
	"path"
	"strings"
)

// Thumbnails derives public compressed-image URLs from stored original
// paths. Pure string work, no I/O.
type Thumbnails struct {
	baseURL string
}

// NewThumbnails creates a resolver rooted at the given public prefix.
func NewThumbnails(baseURL string) *Thumbnails {
	return &Thumbnails{baseURL: strings.TrimRight(baseURL, "/")}
}

// Resolve maps an original image path to its compressed variant URL.
// An empty input stays empty: not every entity carries an image.
func (t *Thumbnails) Resolve(original string) string {
	if original == "" {
		return ""
	}
	return t.baseURL + "/" + path.Base(original)
}
