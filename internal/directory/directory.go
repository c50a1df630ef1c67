// Package directory adapts a single remote site record into an entity
// model and renders it as HTML fragments for embedding in a page: the
// alert banner, document links, the news list, the billboard carousel
// and the staff listing grouped by role.
package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"directory-helper/internal/feed"
	"directory-helper/internal/sanitize"
)

// ErrFeedMalformed is returned when the feed response lacks a
// non-empty site list.
var ErrFeedMalformed = errors.New("json feed not found or malformed")

const (
	noNewsPlaceholder     = `<p>There is currently no news to display.</p>`
	noStaffPlaceholder    = `<p>There are no staff members to display.</p>`
	noRolePlaceholder     = `<p>No role by this name.</p>`
	emptyRolesPlaceholder = `<p>There are no staff members in this role.</p>`
)

// SiteDirectory is the aggregate root. It owns every entity collection
// parsed from the feed; all fragment accessors live here. Apart from
// SetStaffCollapsed and SetBlankUser the directory is immutable after
// construction, and rendering is a pure function of current state.
type SiteDirectory struct {
	slug           string
	opts           Options
	staffCollapsed bool

	alerts []*Alert
	docs   []*Document
	news   []*Article
	roles  []*Role
}

// New fetches the feed for slug, parses it, and builds the entity
// collections in feed order. Exactly one site record is required; a
// missing or empty "sites" list fails with ErrFeedMalformed.
func New(ctx context.Context, slug string, client feed.Client, opts Options) (*SiteDirectory, error) {
	raw, err := client.Fetch(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("load site %q: %w", slug, err)
	}

	var resp feed.Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedMalformed, err)
	}
	if len(resp.Sites) == 0 {
		return nil, ErrFeedMalformed
	}

	site := resp.Sites[0]
	d := &SiteDirectory{
		slug: slug,
		opts: opts,
	}

	for _, rec := range site.Alerts {
		d.alerts = append(d.alerts, newAlert(rec))
	}
	for _, rec := range site.Documents {
		d.docs = append(d.docs, newDocument(rec, opts))
	}
	for _, rec := range site.News {
		d.news = append(d.news, newArticle(rec, opts))
	}
	for _, rec := range site.Roles {
		d.roles = append(d.roles, newRole(rec, opts))
	}

	return d, nil
}

// Slug returns the site slug the directory was loaded for.
func (d *SiteDirectory) Slug() string {
	return d.slug
}

// Alerts exposes the alert collection for external inspection.
func (d *SiteDirectory) Alerts() []*Alert {
	out := make([]*Alert, len(d.alerts))
	copy(out, d.alerts)
	return out
}

// PrintAlert renders the first alert, the default banner slot.
func (d *SiteDirectory) PrintAlert() string {
	if len(d.alerts) == 0 {
		return ""
	}
	return d.alerts[0].PrintAlert()
}

// PrintSiteAlert renders the alert flagged site-wide. When several
// qualify the last one in feed order wins.
func (d *SiteDirectory) PrintSiteAlert() string {
	var match *Alert
	for _, a := range d.alerts {
		if a.IsSiteWide {
			match = a
		}
	}
	return match.PrintAlert()
}

// PrintAlerts renders every alert in feed order.
func (d *SiteDirectory) PrintAlerts() string {
	var b strings.Builder
	for _, a := range d.alerts {
		b.WriteString(a.PrintAlert())
	}
	return b.String()
}

// PrintDocument renders the document with the given slug, or nothing
// when no document matches. The lookup is case-sensitive; the first
// match wins.
func (d *SiteDirectory) PrintDocument(slug string) string {
	for _, doc := range d.docs {
		if doc.Slug == slug {
			return doc.PrintDocument()
		}
	}
	return ""
}

// PrintNews renders the news list. Articles carrying a billboard image
// are excluded unless includeBillboards is set; an empty collection is
// replaced with a placeholder line. The archive footer is always
// appended.
func (d *SiteDirectory) PrintNews(includeBillboards bool) string {
	var b strings.Builder

	if len(d.news) == 0 {
		b.WriteString(noNewsPlaceholder)
	} else {
		for _, a := range d.news {
			if a.HasBillboard() && !includeBillboards {
				continue
			}
			b.WriteString(a.PrintNews())
		}
	}

	b.WriteString(`<a href="` + d.opts.ArchiveURI + d.slug + `" class="more">News archive &raquo;</a>`)

	return b.String()
}

// PrintBillboard renders the rotating carousel: one image per article
// with a billboard, followed by the matching caption blocks, in feed
// order. Nothing is produced when no article carries a billboard.
func (d *SiteDirectory) PrintBillboard() string {
	var imgs, captions strings.Builder
	for _, a := range d.news {
		if !a.HasBillboard() {
			continue
		}
		imgs.WriteString(a.PrintBillboard())
		captions.WriteString(a.PrintBillboardCaptions())
	}

	if imgs.Len() == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<div class="slider-wrapper theme-default"><div class="nivoSlider">`)
	b.WriteString(imgs.String())
	b.WriteString(`</div>`)
	b.WriteString(captions.String())
	b.WriteString(`</div>`)

	return b.String()
}

// PrintStaff renders every role's staff block in feed order. Role name
// headers appear only when showHeaders is set. When the collapse
// toggle is on, the collapse-behavior script is emitted first.
func (d *SiteDirectory) PrintStaff(showHeaders bool) string {
	var b strings.Builder

	if d.staffCollapsed {
		b.WriteString(`<script type="text/javascript" src="` + d.opts.CollapseScriptURI + `"></script>`)
	}

	if len(d.roles) == 0 {
		b.WriteString(noStaffPlaceholder)
		return b.String()
	}

	for _, r := range d.roles {
		b.WriteString(r.PrintRole(showHeaders))
	}

	return b.String()
}

// PrintRole renders a single role's staff, without a header. The name
// lookup ignores case; the last matching role in feed order wins.
func (d *SiteDirectory) PrintRole(name string) string {
	if len(d.roles) == 0 {
		return emptyRolesPlaceholder
	}

	var match *Role
	for _, r := range d.roles {
		if r.matches(name) {
			match = r
		}
	}
	if match == nil {
		return noRolePlaceholder
	}

	return match.PrintRole(false)
}

// SetBlankUser backfills the author of every article whose original
// feed record had none. The value is sanitized as plain text. Articles
// with a real author are never touched; repeated calls overwrite the
// backfilled value again.
func (d *SiteDirectory) SetBlankUser(user string) {
	name := sanitize.Strip(user)
	for _, a := range d.news {
		a.setBlankAuthor(name)
	}
}

// SetStaffCollapsed sets the staff collapse toggle.
func (d *SiteDirectory) SetStaffCollapsed(collapsed bool) {
	d.staffCollapsed = collapsed
}

// StaffCollapsed reports the current collapse toggle.
func (d *SiteDirectory) StaffCollapsed() bool {
	return d.staffCollapsed
}
