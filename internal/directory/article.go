package directory

import (
	"fmt"
	"strings"
	"time"

	"directory-helper/internal/feed"
	"directory-helper/internal/sanitize"
)

// feedTimeLayout is how the feed formats the "posted" timestamp.
const feedTimeLayout = "2006-01-02 15:04:05"

// postedFormat is how the posted date appears in the byline.
const postedFormat = "January 2, 2006"

// Article is a single news item. All fallback chains — thumbnail,
// author, URL rewriting — are resolved once here, never per render.
type Article struct {
	ID        int64
	Author    string
	Title     string
	Strapline string
	Summary   string
	Extended  string
	Thumbnail string
	Billboard string
	URL       string
	Posted    time.Time
	PostedRaw string
	Modified  string

	// authorBlank records that the feed omitted the author, so the
	// placeholder can later be backfilled by SetBlankUser.
	authorBlank bool
}

func newArticle(rec feed.ArticleRecord, opts Options) *Article {
	a := &Article{
		ID:          rec.ID,
		Author:      sanitize.Strip(rec.Author),
		Title:       sanitize.Strip(rec.Title),
		Strapline:   sanitize.Strip(rec.Strapline),
		Summary:     sanitize.Rich(rec.Summary),
		Extended:    sanitize.Rich(rec.Extended),
		Thumbnail:   resolveAsset(rec.Thumbnail, opts.PlaceholderImage, opts.DirectoryURI),
		URL:         rewriteURL(rec.URL, opts.DirectoryURI),
		PostedRaw:   rec.Posted,
		Modified:    rec.Modified,
		authorBlank: rec.Author == "",
	}

	if a.authorBlank {
		a.Author = opts.PlaceholderAuthor
	}

	if rec.Billboard != "" {
		a.Billboard = opts.DirectoryURI + rec.Billboard
	}

	if t, err := time.Parse(feedTimeLayout, rec.Posted); err == nil {
		a.Posted = t
	}

	return a
}

// HasBillboard reports whether the article carries a carousel image.
func (a *Article) HasBillboard() bool {
	return a != nil && a.Billboard != ""
}

// setBlankAuthor overwrites the author only when the original feed
// record had none. Articles with a real author are never touched.
func (a *Article) setBlankAuthor(name string) {
	if a.authorBlank {
		a.Author = name
	}
}

// postedLine formats the byline date, falling back to the raw feed
// value when the timestamp did not parse.
func (a *Article) postedLine() string {
	if !a.Posted.IsZero() {
		return a.Posted.Format(postedFormat)
	}
	return a.PostedRaw
}

// PrintNews renders the article as a news-list entry: thumbnail,
// linked title, strapline, byline, summary and an optional read-more
// link when extended body content exists.
func (a *Article) PrintNews() string {
	if a == nil || a.ID == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<div class="news">`)
	b.WriteString(`<img class="news-thumb" src="` + a.Thumbnail + `" alt="` + a.Title + `" />`)
	b.WriteString(`<div class="news-content">`)

	if a.URL != "" {
		b.WriteString(`<h3 class="news-title"><a href="` + a.URL + `">` + a.Title + `</a></h3>`)
	} else {
		b.WriteString(`<h3 class="news-title">` + a.Title + `</h3>`)
	}

	if a.Strapline != "" {
		b.WriteString(`<p class="news-strapline">` + a.Strapline + `</p>`)
	}

	b.WriteString(`<p class="news-meta">` + a.postedLine() + ` by ` + a.Author + `</p>`)
	b.WriteString(`<p>` + sanitize.Nl2br(a.Summary) + `</p>`)

	if a.Extended != "" {
		b.WriteString(`<a href="` + a.URL + `" class="more">Read more &raquo;</a>`)
	}

	b.WriteString(`</div></div>`)

	return b.String()
}

// PrintBillboard renders the carousel image, anchor-wrapped when the
// article has a URL. The title attribute correlates the image with its
// caption block.
func (a *Article) PrintBillboard() string {
	if a == nil || a.ID == 0 || a.Billboard == "" {
		return ""
	}

	img := fmt.Sprintf(`<img src="%s" title="#caption-%d" alt="%s" />`, a.Billboard, a.ID, a.Title)
	if a.URL != "" {
		return `<a href="` + a.URL + `">` + img + `</a>`
	}
	return img
}

// PrintBillboardCaptions renders the caption block matching the
// billboard image, keyed by the article id.
func (a *Article) PrintBillboardCaptions() string {
	if a == nil || a.ID == 0 || a.Billboard == "" {
		return ""
	}

	return fmt.Sprintf(`<div id="caption-%d" class="nivo-html-caption"><p><strong>%s</strong> %s</p></div>`,
		a.ID, a.Title, a.Strapline)
}
