package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"

	"directory-helper/internal/directory"
	"directory-helper/internal/logger"
	"directory-helper/internal/metrics"
	"directory-helper/internal/middleware"
	"directory-helper/internal/service"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// FragmentHandler serves rendered HTML fragments for a site. Fragments
// are returned as text/html bodies; an entity that does not exist
// renders as an empty 200, never an error.
type FragmentHandler struct {
	directoryService service.DirectoryLoader
}

// NewFragmentHandler creates a new FragmentHandler.
func NewFragmentHandler(directoryService service.DirectoryLoader) *FragmentHandler {
	return &FragmentHandler{
		directoryService: directoryService,
	}
}

// load validates the slug, loads the directory, and writes the error
// response itself when anything fails. A nil return means the response
// has already been written.
func (h *FragmentHandler) load(c *gin.Context) *directory.SiteDirectory {
	slug := c.Param("slug")
	if !slugRegex.MatchString(slug) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slug must be lowercase letters, digits, and hyphens"})
		return nil
	}

	d, err := h.directoryService.Load(c.Request.Context(), slug)
	if err != nil {
		requestID := middleware.GetRequestID(c)
		if errors.Is(err, directory.ErrFeedMalformed) {
			c.JSON(http.StatusNotFound, gin.H{"error": "site not found"})
			return nil
		}
		logger.WithRequestID(requestID).Error("failed to load site feed",
			slog.String("slug", slug),
			slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load site feed"})
		return nil
	}

	return d
}

// boolQuery parses an optional boolean query parameter. The second
// return value is false when the parameter is present but not a
// genuine boolean; the caller must stop, a 400 has been written.
func boolQuery(c *gin.Context, name string) (bool, bool) {
	raw := c.Query(name)
	if raw == "" {
		return false, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a boolean"})
		return false, false
	}
	return v, true
}

func (h *FragmentHandler) html(c *gin.Context, kind, body string) {
	metrics.ObserveFragment(kind)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(body))
}

// Alert handles GET /api/v1/sites/:slug/fragments/alert
func (h *FragmentHandler) Alert(c *gin.Context) {
	d := h.load(c)
	if d == nil {
		return
	}
	h.html(c, "alert", d.PrintAlert())
}

// SiteAlert handles GET /api/v1/sites/:slug/fragments/site-alert
func (h *FragmentHandler) SiteAlert(c *gin.Context) {
	d := h.load(c)
	if d == nil {
		return
	}
	h.html(c, "site-alert", d.PrintSiteAlert())
}

// Alerts handles GET /api/v1/sites/:slug/fragments/alerts
func (h *FragmentHandler) Alerts(c *gin.Context) {
	d := h.load(c)
	if d == nil {
		return
	}
	h.html(c, "alerts", d.PrintAlerts())
}

// Document handles GET /api/v1/sites/:slug/fragments/documents/:doc
func (h *FragmentHandler) Document(c *gin.Context) {
	d := h.load(c)
	if d == nil {
		return
	}
	h.html(c, "document", d.PrintDocument(c.Param("doc")))
}

// News handles GET /api/v1/sites/:slug/fragments/news
// Query parameters: billboards (include billboard articles), author
// (backfill for articles the feed delivered without one).
func (h *FragmentHandler) News(c *gin.Context) {
	includeBillboards, ok := boolQuery(c, "billboards")
	if !ok {
		return
	}

	d := h.load(c)
	if d == nil {
		return
	}

	if author := c.Query("author"); author != "" {
		d.SetBlankUser(author)
	}

	h.html(c, "news", d.PrintNews(includeBillboards))
}

// Billboard handles GET /api/v1/sites/:slug/fragments/billboard
func (h *FragmentHandler) Billboard(c *gin.Context) {
	d := h.load(c)
	if d == nil {
		return
	}
	h.html(c, "billboard", d.PrintBillboard())
}

// Staff handles GET /api/v1/sites/:slug/fragments/staff
// Query parameters: headers (role name headings), collapsed (emit the
// collapse-behavior script ahead of the listing).
func (h *FragmentHandler) Staff(c *gin.Context) {
	showHeaders, ok := boolQuery(c, "headers")
	if !ok {
		return
	}
	collapsed, ok := boolQuery(c, "collapsed")
	if !ok {
		return
	}

	d := h.load(c)
	if d == nil {
		return
	}

	d.SetStaffCollapsed(collapsed)
	h.html(c, "staff", d.PrintStaff(showHeaders))
}

// Role handles GET /api/v1/sites/:slug/fragments/roles/:name
func (h *FragmentHandler) Role(c *gin.Context) {
	d := h.load(c)
	if d == nil {
		return
	}
	h.html(c, "role", d.PrintRole(c.Param("name")))
}
