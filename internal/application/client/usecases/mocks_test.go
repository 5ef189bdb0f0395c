package usecases

import (
	"context"

	"github.com/nexus-desk/nexus/internal/domain/client"
)

type mockInviteSender struct {
	SendFunc func(ctx context.Context, invite client.PortalInvite) error
	sent     []client.PortalInvite
}

func (m *mockInviteSender) SendPortalInvite(ctx context.Context, invite client.PortalInvite) error {
	m.sent = append(m.sent, invite)
	if m.SendFunc != nil {
		return m.SendFunc(ctx, invite)
	}
	return nil
}
