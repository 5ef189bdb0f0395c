package usecases

import (
	"context"

	"github.com/nexus-desk/nexus/internal/application/access"
	"github.com/nexus-desk/nexus/internal/application/ticket/dto"
	permvo "github.com/nexus-desk/nexus/internal/domain/permission/value_objects"
	"github.com/nexus-desk/nexus/internal/domain/session"
	"github.com/nexus-desk/nexus/internal/shared/errors"
	"github.com/nexus-desk/nexus/internal/shared/logger"
)

type GetTicketQuery struct {
	Session  session.Session
	TicketID string
}

type GetTicketUseCase struct {
	store  TicketStore
	guard  *access.Guard
	logger logger.Interface
}

func NewGetTicketUseCase(store TicketStore, guard *access.Guard, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		store:  store,
		guard:  guard,
		logger: logger,
	}
}

// Execute reports tickets of other clients as not found.
func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	if query.TicketID == "" {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	state := uc.store.Snapshot()
	if _, err := uc.guard.Authorize(query.Session, state, permvo.ResourceTickets, permvo.ActionRead); err != nil {
		return nil, err
	}

	t, ok := state.FindTicket(query.TicketID)
	if !ok || !session.CanSeeTicket(query.Session, t) {
		return nil, errors.NewNotFoundError("ticket not found", query.TicketID)
	}
	return dto.ToTicketDTO(t, state.Clients), nil
}
