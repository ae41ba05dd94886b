package handlers

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// DashboardHandlerSuite is the test suite for the dashboard shell endpoints
type DashboardHandlerSuite struct {
	suite.Suite
	handler *DashboardHandler
	e       *echo.Echo
}

func (s *DashboardHandlerSuite) SetupTest() {
	testHTML := []byte(`<!DOCTYPE html>
<html>
<head><title>Claims Denial Analysis</title></head>
<body>
<form id="upload"></form>
<script>fetch("/api/v1/datasets")</script>
</body>
</html>`)

	s.handler = &DashboardHandler{
		indexHTML: testHTML,
		indexETag: generateETag(testHTML),
	}
	s.e = echo.New()
}

func TestDashboardHandlerSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerSuite))
}

func (s *DashboardHandlerSuite) TestServeDashboard() {
	s.Run("serves the dashboard HTML page", func() {
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		rec := httptest.NewRecorder()
		c := s.e.NewContext(req, rec)

		err := s.handler.ServeDashboard(c)

		s.NoError(err)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Header().Get("Content-Type"), "text/html")
		s.Contains(rec.Body.String(), "Claims Denial Analysis")
		s.Contains(rec.Body.String(), "/api/v1/datasets")
	})

	s.Run("sets no-cache headers and an ETag", func() {
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		rec := httptest.NewRecorder()
		c := s.e.NewContext(req, rec)

		err := s.handler.ServeDashboard(c)

		s.NoError(err)
		s.Equal("no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))
		s.NotEmpty(rec.Header().Get("ETag"))
	})

	s.Run("returns 304 when the client ETag still matches", func() {
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.Header.Set("If-None-Match", s.handler.indexETag)
		rec := httptest.NewRecorder()
		c := s.e.NewContext(req, rec)

		err := s.handler.ServeDashboard(c)

		s.NoError(err)
		s.Equal(http.StatusNotModified, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("returns 404 when the page was not found on disk", func() {
		handler := &DashboardHandler{indexHTML: []byte{}}
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		rec := httptest.NewRecorder()
		c := s.e.NewContext(req, rec)

		err := handler.ServeDashboard(c)

		s.Error(err)
		httpErr, ok := err.(*echo.HTTPError)
		s.True(ok, "Error should be an echo.HTTPError")
		if ok {
			s.Equal(http.StatusNotFound, httpErr.Code)
		}
	})
}

func (s *DashboardHandlerSuite) TestRedirectToDashboard() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := s.handler.RedirectToDashboard(c)

	s.NoError(err)
	s.Equal(http.StatusFound, rec.Code)
	s.Equal("/dashboard", rec.Header().Get("Location"))
}

func (s *DashboardHandlerSuite) TestNewDashboardHandler_MissingFile() {
	handler := NewDashboardHandler(filepath.Join(s.T().TempDir(), "missing.html"))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := handler.ServeDashboard(c)

	s.Error(err)
	httpErr, ok := err.(*echo.HTTPError)
	s.True(ok)
	if ok {
		s.Equal(http.StatusNotFound, httpErr.Code)
	}
}
