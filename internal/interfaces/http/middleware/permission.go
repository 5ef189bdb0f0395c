package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/nexus-desk/nexus/internal/application/access"
	"github.com/nexus-desk/nexus/internal/application/store"
	vo "github.com/nexus-desk/nexus/internal/domain/permission/value_objects"
	"github.com/nexus-desk/nexus/internal/shared/constants"
	"github.com/nexus-desk/nexus/internal/shared/logger"
	"github.com/nexus-desk/nexus/internal/shared/utils"
	"github.com/nexus-desk/nexus/internal/shared/utils/logutil"
)

// StateReader exposes the current store snapshot.
type StateReader interface {
	Snapshot() *store.State
}

type PermissionMiddleware struct {
	guard  *access.Guard
	state  StateReader
	logger logger.Interface
}

func NewPermissionMiddleware(guard *access.Guard, state StateReader, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		guard:  guard,
		state:  state,
		logger: logger,
	}
}

// RequirePortal rejects client sessions whose token matches no client. The
// active client is stored under ContextKeyClient.
func (m *PermissionMiddleware) RequirePortal() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := utils.GetSession(c)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		active, err := m.guard.Portal(s, m.state.Snapshot())
		if err != nil {
			m.logger.Warnw("portal access denied",
				"client", logutil.MaskToken(s.ClientID()),
				"path", c.Request.URL.Path,
			)
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}
		if active != nil {
			c.Set(constants.ContextKeyClient, active)
		}

		c.Next()
	}
}

// RequirePermission rejects the request before the handler runs when the
// session's role lacks resource:action.
func (m *PermissionMiddleware) RequirePermission(resource vo.Resource, action vo.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := utils.GetSession(c)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		if err := m.guard.Require(s, resource, action); err != nil {
			m.logger.Warnw("permission denied",
				"role", s.Role().String(),
				"resource", resource,
				"action", action,
				"path", c.Request.URL.Path,
			)
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Next()
	}
}
