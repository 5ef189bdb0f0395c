// Package value_objects names the resources and actions that role policies
// are written against.
package value_objects

import (
	"fmt"
	"slices"
	"strings"
)

type Resource string

const (
	ResourceTickets   Resource = "tickets"
	ResourceClients   Resource = "clients"
	ResourceTeam      Resource = "team"
	ResourceSettings  Resource = "settings"
	ResourceDashboard Resource = "dashboard"
	ResourceAssistant Resource = "assistant"
	ResourcePortal    Resource = "portal"
)

var resources = []Resource{
	ResourceTickets, ResourceClients, ResourceTeam, ResourceSettings,
	ResourceDashboard, ResourceAssistant, ResourcePortal,
}

type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionChat   Action = "chat"
	ActionInvite Action = "invite"
)

var actions = []Action{
	ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionChat, ActionInvite,
}

func (r Resource) IsValid() bool {
	return slices.Contains(resources, r)
}

func (r Resource) String() string {
	return string(r)
}

func (a Action) IsValid() bool {
	return slices.Contains(actions, a)
}

func (a Action) String() string {
	return string(a)
}

// ParsePermission reads "resource:action", the form used in logs and in the
// portal descriptor.
func ParsePermission(s string) (Resource, Action, error) {
	res, act, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), ":")
	if !ok {
		return "", "", fmt.Errorf("permission %q is not in resource:action form", s)
	}
	r, a := Resource(res), Action(act)
	if !r.IsValid() {
		return "", "", fmt.Errorf("unknown resource: %s", res)
	}
	if !a.IsValid() {
		return "", "", fmt.Errorf("unknown action: %s", act)
	}
	return r, a, nil
}
