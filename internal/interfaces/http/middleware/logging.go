package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nexus-desk/nexus/internal/domain/session"
	"github.com/nexus-desk/nexus/internal/shared/constants"
	"github.com/nexus-desk/nexus/internal/shared/logger"
	"github.com/nexus-desk/nexus/internal/shared/utils/logutil"
)

// CustomLogger writes one access record per request. The query string holds
// the portal token and is never logged; client sessions are identified by a
// masked token instead.
func CustomLogger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		args := []any{
			"method", c.Request.Method,
			"route", route,
			"status", status,
			"latency", time.Since(start),
			"bytes", c.Writer.Size(),
			"request_id", c.GetString(constants.ContextKeyRequestID),
		}
		if v, ok := c.Get(constants.ContextKeySession); ok {
			if s, ok := v.(session.Session); ok {
				args = append(args, "role", s.Role().String())
				if s.IsClient() {
					args = append(args, "client", logutil.MaskToken(s.ClientID()))
				}
			}
		}
		if len(c.Errors) > 0 {
			args = append(args, "error", c.Errors.String())
		}

		switch {
		case status >= 500:
			log.Errorw("request failed", args...)
		case status >= 400:
			log.Warnw("request rejected", args...)
		default:
			log.Infow("request served", args...)
		}
	}
}
