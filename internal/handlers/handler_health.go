package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/currex/currex_backend/internal/core/ports"
	"github.com/currex/currex_backend/internal/middleware"
	"github.com/currex/currex_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// healthHandler reports process and storage status.
type healthHandler struct {
	health      ports.HealthChecker
	environment string
}

// registerHealthRoutes registers the health check route.
func registerHealthRoutes(rg *gin.RouterGroup, cfg *config.Config, health ports.HealthChecker) {
	environment := "development"
	if cfg.IsProduction {
		environment = "production"
	}
	h := &healthHandler{health: health, environment: environment}
	rg.GET("/health", h.getHealth)
}

// getHealth godoc
// @Summary Health check
// @Description Reports server status and storage connectivity
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *healthHandler) getHealth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	dbStatus := "connected"
	connected := true
	if err := h.health.Ping(c.Request.Context()); err != nil {
		logger.Warn("Health check storage ping failed", slog.String("error", err.Error()))
		dbStatus = "disconnected"
		connected = false
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "OK",
		"database": gin.H{
			"name":      h.health.Name(),
			"status":    dbStatus,
			"connected": connected,
		},
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": h.environment,
	})
}
