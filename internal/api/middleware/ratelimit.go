package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/realty-crm/internal/api/shared/dto"
	apierrors "github.com/feral-file/realty-crm/internal/api/shared/errors"
	"github.com/feral-file/realty-crm/internal/logger"
	"github.com/feral-file/realty-crm/internal/ratelimit"
)

const rateLimitedWebhookMessage = "Received, but rate limit exceeded."

// RateLimit limits requests per client IP within a scope
// Limiter failures let the request through
func RateLimit(limiter ratelimit.Limiter, scope string) gin.HandlerFunc {
	return rateLimit(limiter, scope, func(c *gin.Context, decision ratelimit.Decision) {
		setRetryAfter(c, decision)
		Abort(c, apierrors.NewRateLimitedError("Too many requests, please try again later"))
	})
}

// WebhookRateLimit limits inbound automation calls per client IP
// Limited calls are acknowledged with 200 like every other ignored webhook call
func WebhookRateLimit(limiter ratelimit.Limiter, scope string) gin.HandlerFunc {
	return rateLimit(limiter, scope, func(c *gin.Context, decision ratelimit.Decision) {
		setRetryAfter(c, decision)
		c.AbortWithStatusJSON(http.StatusOK, dto.WebhookAck{
			Success: true,
			Message: rateLimitedWebhookMessage,
		})
	})
}

func rateLimit(limiter ratelimit.Limiter, scope string, reject func(*gin.Context, ratelimit.Decision)) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := scope + ":" + c.ClientIP()

		decision, err := limiter.Allow(ctx, key)
		if err != nil {
			logger.WarnCtx(ctx, "Rate limiter unavailable", zap.Error(err), zap.String("key", key))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		if !decision.Allowed {
			logger.InfoCtx(ctx, "Request rate limited",
				zap.String("key", key),
				zap.Duration("retry_after", decision.RetryAfter),
			)
			reject(c, decision)
			return
		}

		c.Next()
	}
}

func setRetryAfter(c *gin.Context, decision ratelimit.Decision) {
	if decision.RetryAfter <= 0 {
		return
	}
	c.Header("Retry-After", strconv.Itoa(int(math.Ceil(decision.RetryAfter.Seconds()))))
}
