// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
)

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker func() bool
	cache           adapter.SummaryCache
	clock           adapter.Clock
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Cache     string `json:"cache"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance. cache may be nil.
func NewHealthController(dbHealthChecker func() bool, cache adapter.SummaryCache, clock adapter.Clock) *HealthController {
	return &HealthController{
		dbHealthChecker: dbHealthChecker,
		cache:           cache,
		clock:           clock,
	}
}

// Check handles GET /health requests.
// The API is degraded without its database; a cache outage is only reported.
func (h *HealthController) Check(c *gin.Context) {
	response := HealthResponse{
		Status:    "ok",
		Database:  "disconnected",
		Cache:     "disabled",
		Timestamp: h.clock.Now().UTC().Format(time.RFC3339),
	}

	if h.dbHealthChecker != nil && h.dbHealthChecker() {
		response.Database = "connected"
	} else {
		response.Status = "degraded"
	}

	if h.cache != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.cache.Ping(ctx); err != nil {
			response.Cache = "disconnected"
		} else {
			response.Cache = "connected"
		}
	}

	status := http.StatusOK
	if response.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, response)
}
