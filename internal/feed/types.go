// Package feed fetches and decodes the remote site feed.
package feed

// Response is the top-level feed payload. The feed returns a list of
// sites even when queried by slug; element 0 is the authoritative record.
type Response struct {
	Sites []Site `json:"sites"`
}

// Site is a single site record and its content collections.
type Site struct {
	ID        int64            `json:"id"`
	Slug      string           `json:"slug"`
	Name      string           `json:"name"`
	Alerts    []AlertRecord    `json:"alerts"`
	Documents []DocumentRecord `json:"documents"`
	News      []ArticleRecord  `json:"news"`
	Roles     []RoleRecord     `json:"roles"`
}

// AlertRecord is a raw alert as delivered by the feed.
type AlertRecord struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	URL        string `json:"url"`
	Start      string `json:"start"`
	End        string `json:"end"`
	IsPlanned  bool   `json:"isPlanned"`
	IsSiteWide bool   `json:"isSiteWide"`
	Created    string `json:"created"`
	Modified   string `json:"modified"`
}

// DocumentRecord is a raw document as delivered by the feed.
type DocumentRecord struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	URL      string `json:"url"`
	Created  string `json:"created"`
	Modified string `json:"modified"`
}

// ArticleRecord is a raw news article as delivered by the feed.
// The creation timestamp arrives as "posted".
type ArticleRecord struct {
	ID        int64  `json:"id"`
	Author    string `json:"author"`
	Title     string `json:"title"`
	Strapline string `json:"strapline"`
	Summary   string `json:"summary"`
	Extended  string `json:"extended"`
	Thumbnail string `json:"thumbnail"`
	Billboard string `json:"billboard"`
	URL       string `json:"url"`
	Posted    string `json:"posted"`
	Modified  string `json:"modified"`
}

// RoleRecord is a raw role and its nested staff list.
type RoleRecord struct {
	ID    int64         `json:"id"`
	Name  string        `json:"name"`
	Staff []StaffRecord `json:"staff"`
}

// StaffRecord is a raw staff member as delivered by the feed.
type StaffRecord struct {
	ID        int64  `json:"id"`
	Prefix    string `json:"prefix"`
	First     string `json:"first"`
	Last      string `json:"last"`
	Suffix    string `json:"suffix"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Title     string `json:"title"`
	Details   string `json:"details"`
	IsPrimary bool   `json:"isPrimary"`
	Image     string `json:"image"`
}
