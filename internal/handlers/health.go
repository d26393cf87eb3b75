package handlers

import (
	"net/http"

	"github.com/ffauzan/nc-api/internal/cache"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler reports service and dependency health.
type HealthHandler struct {
	db    *gorm.DB
	cache *cache.Cache
}

// NewHealthHandler creates a new HealthHandler instance.
func NewHealthHandler(db *gorm.DB, c *cache.Cache) *HealthHandler {
	return &HealthHandler{db: db, cache: c}
}

// Check godoc
// @Summary Health check
// @Description Check service, database and cache health
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	status := http.StatusOK
	dbStatus := "healthy"
	cacheStatus := "disabled"

	if sqlDB, err := h.db.DB(); err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		dbStatus = "unhealthy"
	}

	if h.cache.Enabled() {
		cacheStatus = "healthy"
		if err := h.cache.Ping(c.Request.Context()); err != nil {
			cacheStatus = "unhealthy"
		}
	}

	if dbStatus != "healthy" || cacheStatus == "unhealthy" {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"status":   statusWord(status),
		"database": dbStatus,
		"cache":    cacheStatus,
	})
}

func statusWord(status int) string {
	if status == http.StatusOK {
		return "healthy"
	}
	return "unhealthy"
}
