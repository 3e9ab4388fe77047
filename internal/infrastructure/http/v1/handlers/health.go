// Package handlers provides HTTP request handlers.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"geotjs/internal/domain/tjs10"
	"geotjs/internal/metadata"
)

// HealthHandler provides health check endpoints.
type HealthHandler struct {
	version  string
	started  time.Time
	registry *metadata.Registry
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(version string, registry *metadata.Registry) *HealthHandler {
	return &HealthHandler{version: version, started: time.Now(), registry: registry}
}

// Live handles liveness probe (is the process alive?).
// GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Info returns application information.
// GET /health/info
func (h *HealthHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"app":            "geotjs",
		"version":        h.version,
		"uptime_seconds": int64(time.Since(h.started).Seconds()),
		"model": map[string]any{
			"namespace": tjs10.Namespace,
			"classes":   h.registry.Len(),
			"datatypes": len(tjs10.DataTypes()),
			"elements":  len(tjs10.ElementNames()),
		},
	})
}
