package client

import "context"

// PortalInvite is the message sent to a client with their portal link.
type PortalInvite struct {
	To           string
	Name         string
	Company      string
	Organization string
	SupportEmail string
	PortalURL    string
}

type InviteSender interface {
	SendPortalInvite(ctx context.Context, invite PortalInvite) error
}
