package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tasfirul8269/frooxi-backend/internal/database"
	"github.com/tasfirul8269/frooxi-backend/internal/redis"
	"github.com/tasfirul8269/frooxi-backend/internal/response"
)

// HealthHandler exposes liveness and readiness probes
type HealthHandler struct {
	db      *database.PostgresDB
	cache   *redis.Client
	version string
}

// NewHealthHandler creates a new HealthHandler. cache may be nil when
// Redis is disabled.
func NewHealthHandler(db *database.PostgresDB, cache *redis.Client, version string) *HealthHandler {
	return &HealthHandler{db: db, cache: cache, version: version}
}

// Live handles GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	response.Success(c, gin.H{"status": "ok", "version": h.version})
}

// Ready handles GET /health/ready. It reports each dependency and fails
// with 503 when any of them is unreachable.
func (h *HealthHandler) Ready(c *gin.Context) {
	checks := gin.H{}
	healthy := true

	if err := h.db.HealthCheck(c.Request.Context()); err != nil {
		checks["database"] = err.Error()
		healthy = false
	} else {
		checks["database"] = "ok"
	}

	if h.cache != nil {
		if err := h.cache.HealthCheck(c.Request.Context()); err != nil {
			checks["redis"] = err.Error()
			healthy = false
		} else {
			checks["redis"] = "ok"
		}
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, response.Response{
			Success: false,
			Data:    gin.H{"status": "degraded", "checks": checks},
		})
		return
	}
	response.Success(c, gin.H{"status": "ok", "checks": checks, "version": h.version})
}
