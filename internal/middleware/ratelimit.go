package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/currex/currex_backend/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// NewIPRateLimiter builds an in-memory, per-IP limiter for the given request
// ceiling, e.g. 100 requests per 15 minutes.
func NewIPRateLimiter(requests int64, window time.Duration) *limiter.Limiter {
	rate := limiter.Rate{Period: window, Limit: requests}
	return limiter.New(memory.NewStore(), rate)
}

// RateLimit creates a Gin middleware for rate limiting requests.
// It uses the provided limiter instance keyed by client IP.
func RateLimit(limiterInstance *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		lctx, err := limiterInstance.Get(c.Request.Context(), ip)
		if err != nil {
			GetLoggerFromCtx(c.Request.Context()).Error("Failed to get rate limit context", slog.String("ip", ip), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Fail("Internal error", "Internal server error during rate limit check"))
			return
		}

		if lctx.Reached {
			GetLoggerFromCtx(c.Request.Context()).Warn("Rate limit exceeded", slog.String("ip", ip), slog.Int64("limit", lctx.Limit), slog.Int64("remaining_requests", lctx.Remaining))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.Fail("Too many requests", "Too many requests from this IP, please try again later."))
			return
		}

		c.Next()
	}
}
