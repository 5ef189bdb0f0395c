package permission

import (
	"fmt"

	"github.com/casbin/casbin/v2"

	vo "github.com/nexus-desk/nexus/internal/domain/permission/value_objects"
	"github.com/nexus-desk/nexus/internal/domain/session"
	"github.com/nexus-desk/nexus/internal/shared/logger"
)

// clientPolicies is everything a portal session may do. Tenant scoping of
// the data itself happens in the use cases.
var clientPolicies = []string{
	"tickets:read",
	"tickets:create",
	"assistant:chat",
	"dashboard:read",
	"portal:read",
}

func initRolePolicies(enforcer *casbin.SyncedEnforcer, log logger.Interface) error {
	rules := [][]string{{session.RoleAdmin.String(), "*", "*"}}
	for _, p := range clientPolicies {
		res, act, err := vo.ParsePermission(p)
		if err != nil {
			return fmt.Errorf("client policy: %w", err)
		}
		rules = append(rules, []string{session.RoleClient.String(), res.String(), act.String()})
	}

	if _, err := enforcer.AddPolicies(rules); err != nil {
		log.Errorw("failed to load role policies", "error", err)
		return fmt.Errorf("failed to load role policies: %w", err)
	}

	log.Debugw("role policies loaded", "count", len(rules))
	return nil
}
