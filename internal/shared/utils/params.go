package utils

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nexus-desk/nexus/internal/domain/session"
	"github.com/nexus-desk/nexus/internal/shared/constants"
	"github.com/nexus-desk/nexus/internal/shared/errors"
)

// ParseIDParam reads an entity ID from a URL path parameter.
// paramName is the Gin route parameter name (e.g., "id").
// entityName is used in error messages (e.g., "ticket", "client").
// IDs are opaque: seeded records and generated records use different shapes,
// so only presence is checked.
func ParseIDParam(c *gin.Context, paramName, entityName string) (string, error) {
	value := strings.TrimSpace(c.Param(paramName))
	if value == "" {
		return "", errors.NewValidationError(entityName + " ID is required")
	}
	return value, nil
}

// GetSession returns the session resolved by the session middleware.
func GetSession(c *gin.Context) (session.Session, error) {
	value, exists := c.Get(constants.ContextKeySession)
	if !exists {
		return session.Session{}, errors.NewInternalError("session not resolved for request")
	}
	s, ok := value.(session.Session)
	if !ok {
		return session.Session{}, errors.NewInternalError("invalid session in request context")
	}
	return s, nil
}
