package permission

import vo "github.com/nexus-desk/nexus/internal/domain/permission/value_objects"

// PermissionEnforcer answers whether a role may perform an action on a resource.
type PermissionEnforcer interface {
	Enforce(role string, resource vo.Resource, action vo.Action) (bool, error)
}

// Capability is one resource/action pair offered by the API.
type Capability struct {
	Resource vo.Resource
	Action   vo.Action
}

func (c Capability) String() string {
	return c.Resource.String() + ":" + c.Action.String()
}

// Capabilities lists every operation the HTTP API exposes, in display order.
func Capabilities() []Capability {
	return []Capability{
		{vo.ResourceTickets, vo.ActionRead},
		{vo.ResourceTickets, vo.ActionCreate},
		{vo.ResourceTickets, vo.ActionUpdate},
		{vo.ResourceClients, vo.ActionRead},
		{vo.ResourceClients, vo.ActionCreate},
		{vo.ResourceClients, vo.ActionDelete},
		{vo.ResourceClients, vo.ActionInvite},
		{vo.ResourceTeam, vo.ActionRead},
		{vo.ResourceTeam, vo.ActionCreate},
		{vo.ResourceTeam, vo.ActionDelete},
		{vo.ResourceSettings, vo.ActionRead},
		{vo.ResourceSettings, vo.ActionUpdate},
		{vo.ResourceDashboard, vo.ActionRead},
		{vo.ResourceAssistant, vo.ActionChat},
		{vo.ResourcePortal, vo.ActionRead},
	}
}
