package directory

import (
	"strings"

	"directory-helper/internal/feed"
	"directory-helper/internal/sanitize"
)

// Staff is a single directory member. The display name and image are
// derived once at construction.
type Staff struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Title     string
	IsPrimary bool
	Image     string

	// details holds the allow-list-sanitized rich text; plainDetails
	// holds the fully stripped version. When the two differ in length
	// the source genuinely used markup and is rendered as HTML.
	details      string
	plainDetails string
}

func newStaff(rec feed.StaffRecord, opts Options) *Staff {
	return &Staff{
		ID:           rec.ID,
		Name:         displayName(rec),
		Email:        rec.Email,
		Phone:        sanitize.Strip(rec.Phone),
		Title:        sanitize.Strip(rec.Title),
		IsPrimary:    rec.IsPrimary,
		Image:        resolveAsset(rec.Image, opts.PlaceholderImage, opts.DirectoryURI),
		details:      sanitize.Rich(rec.Details),
		plainDetails: sanitize.Strip(rec.Details),
	}
}

// displayName composes "[prefix ]first last[, suffix]".
func displayName(rec feed.StaffRecord) string {
	var b strings.Builder
	if rec.Prefix != "" {
		b.WriteString(rec.Prefix + " ")
	}
	b.WriteString(rec.First + " " + rec.Last)
	if rec.Suffix != "" {
		b.WriteString(", " + rec.Suffix)
	}
	return sanitize.Strip(b.String())
}

// PrintStaff renders the member's block: photo, name, optional title,
// email and phone, and the details text.
func (s *Staff) PrintStaff() string {
	if s == nil || s.ID == 0 {
		return ""
	}

	class := "staff"
	if s.IsPrimary {
		class = "staff primary"
	}

	var b strings.Builder
	b.WriteString(`<div class="` + class + `">`)
	b.WriteString(`<img class="staff-img" src="` + s.Image + `" alt="` + s.Name + `" />`)
	b.WriteString(`<div class="staff-content">`)
	b.WriteString(`<h3>` + s.Name + `</h3>`)

	if s.Title != "" {
		b.WriteString(`<p class="staff-title">` + s.Title + `</p>`)
	}
	if s.Email != "" {
		b.WriteString(`<p><a href="mailto:` + s.Email + `">` + s.Email + `</a></p>`)
	}
	if s.Phone != "" {
		b.WriteString(`<p>` + s.Phone + `</p>`)
	}

	if s.details != "" {
		if len(s.details) != len(s.plainDetails) {
			// Retained allow-listed markup: render as-is.
			b.WriteString(`<div class="staff-details">` + s.details + `</div>`)
		} else {
			b.WriteString(`<div class="staff-details"><p>` + sanitize.Nl2br(s.plainDetails) + `</p></div>`)
		}
	}

	b.WriteString(`</div></div>`)

	return b.String()
}
