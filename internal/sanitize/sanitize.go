// Package sanitize defines the markup policy for feed-sourced text.
// Feed content is authored in an external CMS and cannot be trusted;
// everything rendered into a fragment passes through one of these
// policies first.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Tags permitted in rich text fields (article bodies, staff details).
var richTags = []string{"a", "p", "br", "ol", "ul", "li", "b", "i"}

var (
	strict = bluemonday.StrictPolicy()
	rich   = newRichPolicy()
)

func newRichPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(richTags...)
	p.AllowAttrs("href").OnElements("a")
	return p
}

// Strip removes all markup, leaving plain text.
func Strip(s string) string {
	return strict.Sanitize(s)
}

// Rich removes all markup except the fixed allow-list of formatting tags.
func Rich(s string) string {
	return rich.Sanitize(s)
}

// Nl2br converts newlines to visible line breaks. Windows and bare
// carriage-return line endings are normalized first.
func Nl2br(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.ReplaceAll(s, "\n", "<br />")
}
