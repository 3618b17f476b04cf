package handlers

import (
	"github.com/currex/currex_backend/cmd/docs"
	"github.com/currex/currex_backend/internal/core/ports"
	portssvc "github.com/currex/currex_backend/internal/core/ports/services"
	"github.com/currex/currex_backend/internal/middleware"
	"github.com/currex/currex_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	health ports.HealthChecker,
) {
	// API routes with the per-IP rate limit applied to the whole group
	setupAPIV1Routes(r, cfg, services, health)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	health ports.HealthChecker,
) {
	rateLimiter := middleware.NewIPRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
	v1 := r.Group("/api/v1", middleware.RateLimit(rateLimiter))

	registerHealthRoutes(v1, cfg, health)
	registerAuthRoutes(v1, services.User)
	registerUserRoutes(v1, services.User)
	registerCurrencyRoutes(v1, services.Currency)
	registerExchangeRateRoutes(v1, services.ExchangeRate)
	registerWalletRoutes(v1, services.Wallet)
	RegisterTransactionRoutes(v1, services.Transaction)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
