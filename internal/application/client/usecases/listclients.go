package usecases

import (
	"context"

	"github.com/nexus-desk/nexus/internal/application/access"
	"github.com/nexus-desk/nexus/internal/application/client/dto"
	permvo "github.com/nexus-desk/nexus/internal/domain/permission/value_objects"
	"github.com/nexus-desk/nexus/internal/domain/session"
	"github.com/nexus-desk/nexus/internal/shared/logger"
)

type ListClientsQuery struct {
	Session session.Session
}

type ListClientsUseCase struct {
	store  ClientStore
	guard  *access.Guard
	logger logger.Interface
}

func NewListClientsUseCase(store ClientStore, guard *access.Guard, logger logger.Interface) *ListClientsUseCase {
	return &ListClientsUseCase{
		store:  store,
		guard:  guard,
		logger: logger,
	}
}

func (uc *ListClientsUseCase) Execute(ctx context.Context, query ListClientsQuery) ([]*dto.ClientDTO, error) {
	state := uc.store.Snapshot()
	if _, err := uc.guard.Authorize(query.Session, state, permvo.ResourceClients, permvo.ActionRead); err != nil {
		return nil, err
	}
	return dto.ToClientDTOList(session.VisibleClients(query.Session, state.Clients)), nil
}
