// Package handlers provides HTTP request handlers.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"policywizard/internal/infrastructure/storage/memory"
)

// Version is reported by /health/info.
const Version = "0.1.0"

// StatsProvider reports storage table sizes.
type StatsProvider interface {
	Stats(ctx context.Context) memory.Stats
}

// HealthHandler provides health check endpoints.
type HealthHandler struct {
	store StatsProvider
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(store StatsProvider) *HealthHandler {
	return &HealthHandler{store: store}
}

// Live handles liveness probe (is the process alive?).
// GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Ready handles readiness probe. The store is in-process, so readiness
// only requires a seeded section catalog.
// GET /health/ready
func (h *HealthHandler) Ready(c *gin.Context) {
	stats := h.store.Stats(c.Request.Context())
	if stats.PolicySections == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"checks": map[string]string{
				"catalog": "unhealthy: no policy sections seeded",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"checks": map[string]string{
			"catalog": "healthy",
		},
	})
}

// Info returns application information.
// GET /health/info
func (h *HealthHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"app":     "policywizard",
		"version": Version,
		"storage": h.store.Stats(c.Request.Context()),
	})
}
