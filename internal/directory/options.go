package directory

import "strings"

// Relative path prefixes the feed uses for its own file and article
// resources. Only URLs under these prefixes are rewritten to absolute
// form; anything else is assumed to already be absolute or to point at
// a different origin.
const (
	fileResourcePrefix    = "/files/"
	articleResourcePrefix = "/news/"
)

// Options carries the configured origins and placeholder assets every
// entity needs at construction time. It is threaded explicitly through
// the parsing step; entities never reach for configuration themselves.
type Options struct {
	// DirectoryURI is the base origin for documents, images and
	// rewritten article links.
	DirectoryURI string
	// ArchiveURI is the base for the news archive footer link; the
	// site slug is appended.
	ArchiveURI string
	// CollapseScriptURI is the asset emitted ahead of the staff block
	// when the collapse toggle is set.
	CollapseScriptURI string
	// PlaceholderImage substitutes for missing thumbnails and staff
	// photos.
	PlaceholderImage string
	// PlaceholderAuthor substitutes for a missing article author.
	PlaceholderAuthor string
}

// resolveAsset applies the image fallback chain once: a missing path
// becomes the placeholder, a present one is prefixed with the origin.
func resolveAsset(raw, placeholder, origin string) string {
	if raw == "" {
		return placeholder
	}
	return origin + raw
}

// rewriteURL makes a feed-relative resource URL absolute. URLs outside
// the two known resource prefixes are left alone.
func rewriteURL(raw, origin string) string {
	if strings.HasPrefix(raw, fileResourcePrefix) || strings.HasPrefix(raw, articleResourcePrefix) {
		return origin + raw
	}
	return raw
}
