package usecases

import (
	"context"

	"github.com/nexus-desk/nexus/internal/application/client/dto"
	"github.com/nexus-desk/nexus/internal/application/store"
	"github.com/nexus-desk/nexus/internal/domain/client"
)

type ClientStore interface {
	Snapshot() *store.State
	AddClient(ctx context.Context, draft *client.Client) (*client.Client, error)
	RemoveClient(ctx context.Context, clientID string) (bool, error)
}

type CreateClientExecutor interface {
	Execute(ctx context.Context, cmd CreateClientCommand) (*dto.ClientDTO, error)
}

type ListClientsExecutor interface {
	Execute(ctx context.Context, query ListClientsQuery) ([]*dto.ClientDTO, error)
}

type RemoveClientExecutor interface {
	Execute(ctx context.Context, cmd RemoveClientCommand) (*RemoveClientResult, error)
}

type PortalLinkExecutor interface {
	Execute(ctx context.Context, query PortalLinkQuery) (*PortalLinkResult, error)
}

type InviteClientExecutor interface {
	Execute(ctx context.Context, cmd InviteClientCommand) (*PortalLinkResult, error)
}
