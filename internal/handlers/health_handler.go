package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthCheckHandler handles the health check endpoints
type HealthCheckHandler struct {
	startedAt time.Time
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler() *HealthCheckHandler {
	return &HealthCheckHandler{startedAt: time.Now().UTC()}
}

// HealthCheck reports liveness.
//
// Method: GET /health
//
// Success Response: 200 OK
//   - status: "healthy"
//   - time: ISO 8601 timestamp
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// ReadinessCheck reports readiness. Everything this service needs lives in
// process memory, so it is ready as soon as it is serving requests.
//
// Method: GET /health/ready
//
// Success Response: 200 OK
//   - status: "ready"
//   - uptime: human-readable uptime
//   - time: ISO 8601 timestamp
func (h *HealthCheckHandler) ReadinessCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ready",
		"uptime": time.Since(h.startedAt).Round(time.Second).String(),
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
