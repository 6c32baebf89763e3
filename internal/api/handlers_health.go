// handlers_health.go - Health check endpoint
package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthHandlers implements HealthHandler
type HealthHandlers struct {
	startTime time.Time
}

// NewHealthHandlers creates health handlers
func NewHealthHandlers() *HealthHandlers {
	return &HealthHandlers{
		startTime: time.Now(),
	}
}

// HandleHealth returns service health status
// GET /api/health
func (h *HealthHandlers) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":        "ok",
		"uptimeSeconds": int64(time.Since(h.startTime).Seconds()),
		"timestamp":     time.Now().Format(time.RFC3339),
	})
}
