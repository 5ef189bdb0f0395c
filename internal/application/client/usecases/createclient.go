package usecases

import (
	"context"

	"github.com/nexus-desk/nexus/internal/application/access"
	"github.com/nexus-desk/nexus/internal/application/client/dto"
	"github.com/nexus-desk/nexus/internal/domain/client"
	permvo "github.com/nexus-desk/nexus/internal/domain/permission/value_objects"
	"github.com/nexus-desk/nexus/internal/domain/session"
	"github.com/nexus-desk/nexus/internal/shared/errors"
	"github.com/nexus-desk/nexus/internal/shared/logger"
)

type CreateClientCommand struct {
	Session session.Session
	Name    string
	Company string
	Email   string
}

type CreateClientUseCase struct {
	store  ClientStore
	guard  *access.Guard
	logger logger.Interface
}

func NewCreateClientUseCase(store ClientStore, guard *access.Guard, logger logger.Interface) *CreateClientUseCase {
	return &CreateClientUseCase{
		store:  store,
		guard:  guard,
		logger: logger,
	}
}

func (uc *CreateClientUseCase) Execute(ctx context.Context, cmd CreateClientCommand) (*dto.ClientDTO, error) {
	uc.logger.Infow("executing create client use case", "company", cmd.Company)

	if _, err := uc.guard.Authorize(cmd.Session, uc.store.Snapshot(), permvo.ResourceClients, permvo.ActionCreate); err != nil {
		return nil, err
	}

	draft, err := client.NewClient(cmd.Name, cmd.Company, cmd.Email)
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewValidationError(err.Error())
	}

	created, err := uc.store.AddClient(ctx, draft)
	if err != nil {
		uc.logger.Errorw("failed to add client", "error", err)
		return nil, err
	}

	uc.logger.Infow("client created", "client_id", created.ID(), "company", created.Company())
	return dto.ToClientDTO(created), nil
}
