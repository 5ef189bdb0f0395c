package usecases

import (
	"context"

	"github.com/nexus-desk/nexus/internal/application/access"
	"github.com/nexus-desk/nexus/internal/domain/client"
	permvo "github.com/nexus-desk/nexus/internal/domain/permission/value_objects"
	"github.com/nexus-desk/nexus/internal/domain/session"
	"github.com/nexus-desk/nexus/internal/shared/errors"
	"github.com/nexus-desk/nexus/internal/shared/logger"
	"github.com/nexus-desk/nexus/internal/shared/utils/logutil"
)

type InviteClientCommand struct {
	Session  session.Session
	ClientID string
}

// InviteClientUseCase mails a client their portal link.
type InviteClientUseCase struct {
	store   ClientStore
	guard   *access.Guard
	sender  client.InviteSender
	baseURL string
	logger  logger.Interface
}

func NewInviteClientUseCase(
	store ClientStore,
	guard *access.Guard,
	sender client.InviteSender,
	baseURL string,
	logger logger.Interface,
) *InviteClientUseCase {
	return &InviteClientUseCase{
		store:   store,
		guard:   guard,
		sender:  sender,
		baseURL: baseURL,
		logger:  logger,
	}
}

func (uc *InviteClientUseCase) Execute(ctx context.Context, cmd InviteClientCommand) (*PortalLinkResult, error) {
	uc.logger.Infow("executing invite client use case", "client_id", cmd.ClientID)

	state := uc.store.Snapshot()
	if _, err := uc.guard.Authorize(cmd.Session, state, permvo.ResourceClients, permvo.ActionInvite); err != nil {
		return nil, err
	}

	c, ok := client.Find(state.Clients, cmd.ClientID)
	if !ok {
		return nil, errors.NewNotFoundError("client not found", cmd.ClientID)
	}

	link := PortalURL(uc.baseURL, c.ID())
	err := uc.sender.SendPortalInvite(ctx, client.PortalInvite{
		To:           c.Email(),
		Name:         c.Name(),
		Company:      c.Company(),
		Organization: state.Settings.OrganizationName(),
		SupportEmail: state.Settings.SupportEmail(),
		PortalURL:    link,
	})
	if err != nil {
		uc.logger.Errorw("failed to send portal invite", "client_id", c.ID(), "error", err)
		return nil, errors.NewInternalError("failed to send portal invite", err.Error())
	}

	uc.logger.Infow("portal invite delivered", "client_id", c.ID(), "to", logutil.MaskEmail(c.Email()))
	return &PortalLinkResult{ClientID: c.ID(), Email: c.Email(), URL: link}, nil
}
