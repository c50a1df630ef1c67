package directory

import (
	"strings"

	"directory-helper/internal/feed"
	"directory-helper/internal/sanitize"
)

// Alert is a site-wide or page-level notice banner.
type Alert struct {
	ID         int64
	Title      string
	Message    string
	URL        string
	Start      string
	End        string
	IsPlanned  bool
	IsSiteWide bool
	Created    string
	Modified   string
}

func newAlert(rec feed.AlertRecord) *Alert {
	return &Alert{
		ID:         rec.ID,
		Title:      sanitize.Strip(rec.Title),
		Message:    sanitize.Strip(rec.Message),
		URL:        rec.URL,
		Start:      rec.Start,
		End:        rec.End,
		IsPlanned:  rec.IsPlanned,
		IsSiteWide: rec.IsSiteWide,
		Created:    rec.Created,
		Modified:   rec.Modified,
	}
}

// PrintAlert renders the banner fragment. Planned alerts get the
// "cautionbar" treatment, unplanned ones "alertbar". The message is a
// link only when a URL accompanies the alert.
func (a *Alert) PrintAlert() string {
	if a == nil || a.ID == 0 {
		return ""
	}

	style := "alertbar"
	if a.IsPlanned {
		style = "cautionbar"
	}

	var b strings.Builder
	b.WriteString(`<div class="` + style + `">`)
	b.WriteString(`<p><strong>` + a.Title + `:</strong>`)

	if a.URL != "" {
		b.WriteString(`<a href="` + a.URL + `" class="external">` + a.Message + `</a>`)
	} else {
		b.WriteString(a.Message)
	}

	b.WriteString(`</p></div>`)
	b.WriteString(`<div class="hr-blank"></div>`)

	return b.String()
}
