// Package permission answers role checks with an in-memory casbin model.
// The policy set is static and rebuilt on every start.
package permission

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"github.com/nexus-desk/nexus/internal/domain/permission"
	vo "github.com/nexus-desk/nexus/internal/domain/permission/value_objects"
	"github.com/nexus-desk/nexus/internal/shared/logger"
)

var _ permission.PermissionEnforcer = (*Enforcer)(nil)

// a "*" object or action in a policy matches anything
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`

type Enforcer struct {
	casbin *casbin.SyncedEnforcer
	logger logger.Interface
}

func NewEnforcer(log logger.Interface) (*Enforcer, error) {
	log = log.Named("permission")

	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("permission: model: %w", err)
	}
	ce, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("permission: enforcer: %w", err)
	}
	if err := initRolePolicies(ce, log); err != nil {
		return nil, err
	}
	return &Enforcer{casbin: ce, logger: log}, nil
}

// Enforce reports whether role may perform action on resource. Unknown roles
// are simply denied.
func (e *Enforcer) Enforce(role string, resource vo.Resource, action vo.Action) (bool, error) {
	ok, err := e.casbin.Enforce(role, resource.String(), action.String())
	if err != nil {
		e.logger.Errorw("policy evaluation failed", "role", role, "resource", resource, "action", action, "error", err)
		return false, fmt.Errorf("permission: enforce %s:%s: %w", resource, action, err)
	}
	return ok, nil
}
