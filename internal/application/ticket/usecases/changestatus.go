package usecases

import (
	"context"

	"github.com/nexus-desk/nexus/internal/application/access"
	permvo "github.com/nexus-desk/nexus/internal/domain/permission/value_objects"
	"github.com/nexus-desk/nexus/internal/domain/session"
	vo "github.com/nexus-desk/nexus/internal/domain/ticket/valueobjects"
	"github.com/nexus-desk/nexus/internal/shared/errors"
	"github.com/nexus-desk/nexus/internal/shared/logger"
)

type ChangeStatusCommand struct {
	Session  session.Session
	TicketID string
	// Status is the target status. When empty the ticket moves one step
	// along OPEN -> IN_PROGRESS -> RESOLVED.
	Status string
}

type ChangeStatusResult struct {
	TicketID  string `json:"ticket_id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

type ChangeStatusUseCase struct {
	store  TicketStore
	guard  *access.Guard
	logger logger.Interface
}

func NewChangeStatusUseCase(store TicketStore, guard *access.Guard, logger logger.Interface) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		store:  store,
		guard:  guard,
		logger: logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change status use case", "ticket_id", cmd.TicketID, "status", cmd.Status)

	if cmd.TicketID == "" {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	state := uc.store.Snapshot()
	if _, err := uc.guard.Authorize(cmd.Session, state, permvo.ResourceTickets, permvo.ActionUpdate); err != nil {
		return nil, err
	}

	current, ok := state.FindTicket(cmd.TicketID)
	if !ok {
		return nil, errors.NewNotFoundError("ticket not found", cmd.TicketID)
	}

	var target vo.TicketStatus
	if cmd.Status == "" {
		next, ok := current.Status().Next()
		if !ok {
			return nil, errors.NewValidationError("ticket has no further status", current.Status().String())
		}
		target = next
	} else {
		s, err := vo.NewTicketStatus(cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid status", cmd.Status)
		}
		target = s
	}

	updated, found, err := uc.store.UpdateTicketStatus(ctx, cmd.TicketID, target)
	if err != nil {
		uc.logger.Errorw("failed to update ticket status", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}
	if !found {
		return nil, errors.NewNotFoundError("ticket not found", cmd.TicketID)
	}

	uc.logger.Infow("ticket status changed",
		"ticket_id", cmd.TicketID,
		"old_status", current.Status(),
		"new_status", updated.Status(),
	)

	return &ChangeStatusResult{
		TicketID:  updated.ID(),
		OldStatus: current.Status().String(),
		NewStatus: updated.Status().String(),
	}, nil
}
