package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nexus-desk/nexus/internal/infrastructure/ratelimit"
	"github.com/nexus-desk/nexus/internal/shared/errors"
	"github.com/nexus-desk/nexus/internal/shared/logger"
	"github.com/nexus-desk/nexus/internal/shared/utils"
	"github.com/nexus-desk/nexus/internal/shared/utils/logutil"
)

// RateLimiter meters AI-backed endpoints per session subject.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	logger  logger.Interface
}

// NewRateLimiter returns nil when limiter is nil; a nil RateLimiter lets
// every request through.
func NewRateLimiter(limiter ratelimit.RateLimiter, logger logger.Interface) *RateLimiter {
	if limiter == nil {
		return nil
	}
	return &RateLimiter{
		limiter: limiter,
		logger:  logger,
	}
}

// Limit allows perMinute requests per session in the named scope. A
// non-positive quota disables the check.
func (rl *RateLimiter) Limit(scope string, perMinute int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || perMinute <= 0 {
			c.Next()
			return
		}

		s, err := utils.GetSession(c)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		key := "ai:" + scope + ":" + s.Subject()
		allowed, remaining, err := rl.limiter.Allow(c.Request.Context(), key, ratelimit.PerMinute(perMinute))
		if err != nil {
			// fail open
			rl.logger.Warnw("rate limiter unavailable, allowing request", "scope", scope, "error", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(perMinute))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		if !allowed {
			rl.logger.Warnw("rate limit exceeded", "scope", scope, "role", s.Role().String(), "client", logutil.MaskToken(s.ClientID()))
			utils.ErrorResponseWithError(c, errors.NewRateLimitedError("rate limit exceeded, please try again later"))
			c.Abort()
			return
		}

		c.Next()
	}
}
