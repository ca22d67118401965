package handler

import (
	"net/http"

	coreport "github.com/zakinadhif/cashierku/internal/domain/port/core"
	"github.com/zakinadhif/cashierku/internal/infrastructure/adapter/database"
	"github.com/gin-gonic/gin"
)

// HealthHandler reports process and store health
type HealthHandler struct {
	dbManager *database.Manager
	logger    coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(dbManager *database.Manager, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		dbManager: dbManager,
		logger:    logger,
	}
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.dbManager.Ping(c.Request.Context()); err != nil {
		h.logger.Error("Health check failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	pool := h.dbManager.PoolMetrics()
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"database": gin.H{
			"open_connections": pool.Open,
			"in_use":           pool.InUse,
			"idle":             pool.Idle,
		},
	})
}
