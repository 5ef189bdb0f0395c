// Package session derives the per-request actor from the portal access token
// and decides which entities that actor may see.
package session

import "strings"

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleClient Role = "client"
)

func (r Role) String() string {
	return string(r)
}

// Session is computed once per request and never persisted.
type Session struct {
	role     Role
	clientID string
}

// Resolve maps a raw token to a session. Only an absent or empty token is
// the administrator; any other value, blank ones included, is taken as a
// client ID without checking that it exists.
func Resolve(rawToken string) Session {
	if rawToken == "" {
		return Admin()
	}
	if token := strings.TrimSpace(rawToken); token != "" {
		return ForClient(token)
	}
	return ForClient(rawToken)
}

func Admin() Session {
	return Session{role: RoleAdmin}
}

func ForClient(clientID string) Session {
	return Session{role: RoleClient, clientID: clientID}
}

func (s Session) Role() Role {
	return s.role
}

// ClientID is empty for the administrator.
func (s Session) ClientID() string {
	return s.clientID
}

func (s Session) IsAdmin() bool {
	return s.role == RoleAdmin
}

func (s Session) IsClient() bool {
	return s.role == RoleClient
}

// Subject identifies the actor for ownership checks and rate limiting.
func (s Session) Subject() string {
	if s.IsClient() {
		return "client:" + s.clientID
	}
	return string(RoleAdmin)
}
