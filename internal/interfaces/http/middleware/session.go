package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/nexus-desk/nexus/internal/domain/session"
	"github.com/nexus-desk/nexus/internal/shared/constants"
)

// Session resolves the portal token from the clientId query parameter once
// per request and stores the result under ContextKeySession.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := session.Resolve(c.Query(constants.QueryParamClientID))
		c.Set(constants.ContextKeySession, s)
		c.Next()
	}
}
