package directory

import (
	"strings"

	"directory-helper/internal/feed"
	"directory-helper/internal/sanitize"
)

// Role groups staff members under a named heading. Staff order is feed
// order.
type Role struct {
	ID    int64
	Name  string
	Staff []*Staff
}

func newRole(rec feed.RoleRecord, opts Options) *Role {
	r := &Role{
		ID:    rec.ID,
		Name:  sanitize.Strip(rec.Name),
		Staff: make([]*Staff, 0, len(rec.Staff)),
	}
	for _, sr := range rec.Staff {
		r.Staff = append(r.Staff, newStaff(sr, opts))
	}
	return r
}

// matches reports whether name refers to this role, ignoring case.
func (r *Role) matches(name string) bool {
	return r != nil && strings.EqualFold(r.Name, name)
}

// PrintRole renders every member's block in feed order, preceded by a
// role-name header when requested.
func (r *Role) PrintRole(showHeader bool) string {
	if r == nil || r.ID == 0 {
		return ""
	}

	var b strings.Builder
	if showHeader {
		b.WriteString(`<h3 class="staff-role">` + r.Name + `</h3>`)
	}
	for _, s := range r.Staff {
		b.WriteString(s.PrintStaff())
	}

	return b.String()
}
