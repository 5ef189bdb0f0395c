package usecases

import (
	"context"

	"github.com/nexus-desk/nexus/internal/application/access"
	permvo "github.com/nexus-desk/nexus/internal/domain/permission/value_objects"
	"github.com/nexus-desk/nexus/internal/domain/session"
	"github.com/nexus-desk/nexus/internal/shared/errors"
	"github.com/nexus-desk/nexus/internal/shared/logger"
)

type RemoveClientCommand struct {
	Session  session.Session
	ClientID string
}

type RemoveClientResult struct {
	ClientID string `json:"client_id"`
	// OrphanedTickets counts tickets left behind; they are kept and shown
	// with an unknown client.
	OrphanedTickets int `json:"orphaned_tickets"`
}

type RemoveClientUseCase struct {
	store  ClientStore
	guard  *access.Guard
	logger logger.Interface
}

func NewRemoveClientUseCase(store ClientStore, guard *access.Guard, logger logger.Interface) *RemoveClientUseCase {
	return &RemoveClientUseCase{
		store:  store,
		guard:  guard,
		logger: logger,
	}
}

func (uc *RemoveClientUseCase) Execute(ctx context.Context, cmd RemoveClientCommand) (*RemoveClientResult, error) {
	uc.logger.Infow("executing remove client use case", "client_id", cmd.ClientID)

	if cmd.ClientID == "" {
		return nil, errors.NewValidationError("client ID is required")
	}

	state := uc.store.Snapshot()
	if _, err := uc.guard.Authorize(cmd.Session, state, permvo.ResourceClients, permvo.ActionDelete); err != nil {
		return nil, err
	}

	removed, err := uc.store.RemoveClient(ctx, cmd.ClientID)
	if err != nil {
		uc.logger.Errorw("failed to remove client", "client_id", cmd.ClientID, "error", err)
		return nil, err
	}
	if !removed {
		return nil, errors.NewNotFoundError("client not found", cmd.ClientID)
	}

	orphaned := 0
	for _, t := range uc.store.Snapshot().Tickets {
		if t.BelongsTo(cmd.ClientID) {
			orphaned++
		}
	}

	uc.logger.Infow("client removed", "client_id", cmd.ClientID, "orphaned_tickets", orphaned)
	return &RemoveClientResult{ClientID: cmd.ClientID, OrphanedTickets: orphaned}, nil
}
