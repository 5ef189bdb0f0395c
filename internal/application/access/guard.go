// Package access decides whether a session may use an operation before any
// use case touches the store.
package access

import (
	"github.com/nexus-desk/nexus/internal/application/store"
	"github.com/nexus-desk/nexus/internal/domain/client"
	"github.com/nexus-desk/nexus/internal/domain/permission"
	vo "github.com/nexus-desk/nexus/internal/domain/permission/value_objects"
	"github.com/nexus-desk/nexus/internal/domain/session"
	"github.com/nexus-desk/nexus/internal/shared/constants"
	"github.com/nexus-desk/nexus/internal/shared/errors"
	"github.com/nexus-desk/nexus/internal/shared/logger"
	"github.com/nexus-desk/nexus/internal/shared/utils/logutil"
)

type Guard struct {
	enforcer permission.PermissionEnforcer
	logger   logger.Interface
}

func NewGuard(enforcer permission.PermissionEnforcer, logger logger.Interface) *Guard {
	return &Guard{
		enforcer: enforcer,
		logger:   logger,
	}
}

// Portal returns the client a client session acts for. The administrator has
// no portal client and gets nil. A token that matches no client is terminal:
// the caller receives an access denied error pointing back to the admin entry.
func (g *Guard) Portal(s session.Session, state *store.State) (*client.Client, error) {
	if s.IsAdmin() {
		return nil, nil
	}
	c, ok := client.Find(state.Clients, s.ClientID())
	if !ok {
		g.logger.Warnw("portal access with unknown client token", "client", logutil.MaskToken(s.ClientID()))
		return nil, errors.NewAccessDeniedError(constants.ErrMsgAccessDenied, constants.AdminEntryPath)
	}
	return c, nil
}

// Require checks the role policy for one operation.
func (g *Guard) Require(s session.Session, resource vo.Resource, action vo.Action) error {
	allowed, err := g.enforcer.Enforce(s.Role().String(), resource, action)
	if err != nil {
		return errors.NewInternalError("failed to check permission", err.Error())
	}
	if !allowed {
		g.logger.Warnw("operation refused",
			"role", s.Role(),
			"resource", resource,
			"action", action,
		)
		return errors.NewForbiddenError(constants.ErrMsgAdminOnly)
	}
	return nil
}

// Authorize runs Portal and Require in the order every use case needs: an
// unknown portal token is reported before any permission decision.
func (g *Guard) Authorize(s session.Session, state *store.State, resource vo.Resource, action vo.Action) (*client.Client, error) {
	active, err := g.Portal(s, state)
	if err != nil {
		return nil, err
	}
	if err := g.Require(s, resource, action); err != nil {
		return nil, err
	}
	return active, nil
}

// Capabilities lists the operations the session may use.
func (g *Guard) Capabilities(s session.Session) []permission.Capability {
	allowed := make([]permission.Capability, 0)
	for _, c := range permission.Capabilities() {
		ok, err := g.enforcer.Enforce(s.Role().String(), c.Resource, c.Action)
		if err != nil || !ok {
			continue
		}
		allowed = append(allowed, c)
	}
	return allowed
}
