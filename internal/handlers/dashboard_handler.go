package handlers

import (
	"crypto/md5"
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the dashboard shell page
type DashboardHandler struct {
	indexHTML []byte
	indexETag string
}

// NewDashboardHandler loads the dashboard page from disk. A missing file is
// tolerated so the JSON API can run headless; the page 404s instead.
func NewDashboardHandler(htmlPath string) *DashboardHandler {
	indexHTML, err := os.ReadFile(htmlPath)
	if err != nil {
		indexHTML = []byte{}
	}

	return &DashboardHandler{
		indexHTML: indexHTML,
		indexETag: generateETag(indexHTML),
	}
}

// ServeDashboard serves the dashboard HTML shell. The page uploads via the
// JSON API and renders the report tables client-side.
//
// Method: GET /dashboard
//
// Success Response: 200 OK with the HTML page, or 304 Not Modified when the
// client's ETag still matches
func (h *DashboardHandler) ServeDashboard(c echo.Context) error {
	if len(h.indexHTML) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "dashboard page not available")
	}

	c.Response().Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Response().Header().Set("Pragma", "no-cache")
	c.Response().Header().Set("Expires", "0")

	if h.indexETag != "" {
		c.Response().Header().Set("ETag", h.indexETag)
		if match := c.Request().Header.Get("If-None-Match"); match != "" && match == h.indexETag {
			return c.NoContent(http.StatusNotModified)
		}
	}

	return c.HTMLBlob(http.StatusOK, h.indexHTML)
}

// RedirectToDashboard sends the root path to the dashboard.
//
// Method: GET /
func (h *DashboardHandler) RedirectToDashboard(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/dashboard")
}

// generateETag creates an ETag hash for cache control
func generateETag(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	hash := md5.Sum(data)
	return fmt.Sprintf("\"%x\"", hash)
}
