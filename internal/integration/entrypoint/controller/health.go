// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// CheckFunc reports whether a dependency is currently reachable.
type CheckFunc func() bool

// HealthController reports liveness for the API and its database.
type HealthController struct {
	dbCheck   CheckFunc
	startedAt time.Time
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status        string `json:"status"`
	Database      string `json:"database"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Timestamp     string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dbCheck CheckFunc) *HealthController {
	return &HealthController{
		dbCheck:   dbCheck,
		startedAt: time.Now().UTC(),
	}
}

// Check handles GET /health requests. The endpoint stays reachable while the
// database is down so an unhealthy API can be told apart from a dead one; a
// degraded report carries 503 for load balancer checks.
func (h *HealthController) Check(c *gin.Context) {
	status := "ok"
	database := "connected"
	code := http.StatusOK

	if h.dbCheck == nil || !h.dbCheck() {
		status = "degraded"
		database = "disconnected"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, HealthResponse{
		Status:        status,
		Database:      database,
		UptimeSeconds: int64(time.Since(h.startedAt).Seconds()),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	})
}
