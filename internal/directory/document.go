package directory

import (
	"directory-helper/internal/feed"
	"directory-helper/internal/sanitize"
)

// Document is a downloadable file published by the site. The slug is
// the lookup key page templates use to embed a link.
type Document struct {
	ID       int64
	Name     string
	Slug     string
	URL      string
	Created  string
	Modified string

	// href is resolved once at construction: directory origin + URL.
	href string
}

func newDocument(rec feed.DocumentRecord, opts Options) *Document {
	return &Document{
		ID:       rec.ID,
		Name:     sanitize.Strip(rec.Name),
		Slug:     rec.Slug,
		URL:      rec.URL,
		Created:  rec.Created,
		Modified: rec.Modified,
		href:     opts.DirectoryURI + rec.URL,
	}
}

// PrintDocument renders an anchor to the document.
func (d *Document) PrintDocument() string {
	if d == nil || d.ID == 0 {
		return ""
	}
	return `<a href="` + d.href + `">` + d.Name + `</a>`
}
