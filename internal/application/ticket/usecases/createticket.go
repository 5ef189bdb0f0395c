package usecases

import (
	"context"

	"github.com/nexus-desk/nexus/internal/application/access"
	"github.com/nexus-desk/nexus/internal/application/ticket/dto"
	permvo "github.com/nexus-desk/nexus/internal/domain/permission/value_objects"
	"github.com/nexus-desk/nexus/internal/domain/session"
	"github.com/nexus-desk/nexus/internal/domain/ticket"
	"github.com/nexus-desk/nexus/internal/shared/errors"
	"github.com/nexus-desk/nexus/internal/shared/logger"
	"github.com/nexus-desk/nexus/internal/shared/utils/logutil"
)

type CreateTicketCommand struct {
	Session     session.Session
	Title       string
	Description string
	// ClientID is honoured for administrators only.
	ClientID string
}

type CreateTicketResult struct {
	Ticket    *dto.TicketDTO
	Sentiment string
	// Classified is false when categorization was disabled or the model
	// answer was replaced by the fallback.
	Classified bool
}

type CreateTicketUseCase struct {
	store      TicketStore
	guard      *access.Guard
	classifier TicketClassifier
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	store TicketStore,
	guard *access.Guard,
	classifier TicketClassifier,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		store:      store,
		guard:      guard,
		classifier: classifier,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "subject", cmd.Session.Subject(), "title", cmd.Title)

	state := uc.store.Snapshot()
	if _, err := uc.guard.Authorize(cmd.Session, state, permvo.ResourceTickets, permvo.ActionCreate); err != nil {
		return nil, err
	}

	clientID, err := session.AuthorizeTicketCreation(cmd.Session, cmd.ClientID, state.ClientExists)
	if err != nil {
		uc.logger.Warnw("ticket target client rejected", "requested", cmd.ClientID, "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	settings := state.Settings
	// Validate before paying for a model call.
	if _, err := ticket.NewTicket(cmd.Title, cmd.Description, clientID, ticket.DefaultTriage(settings.DefaultPriority())); err != nil {
		return nil, toValidationError(err)
	}

	triage := ticket.DefaultTriage(settings.DefaultPriority())
	result := &CreateTicketResult{}
	if settings.AutoCategorization() {
		analysis := uc.classifier.Classify(ctx, settings.AIModel(), cmd.Title, cmd.Description)
		triage = analysis.Triage()
		result.Sentiment = analysis.Sentiment
		result.Classified = !analysis.IsFallback()
	}

	draft, err := ticket.NewTicket(cmd.Title, cmd.Description, clientID, triage)
	if err != nil {
		return nil, toValidationError(err)
	}

	created, err := uc.store.AddTicket(ctx, draft)
	if err != nil {
		uc.logger.Errorw("failed to add ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created",
		"ticket_id", created.ID(),
		"title", logutil.TruncateForLog(created.Title(), 80),
		"client_id", created.ClientID(),
		"priority", created.Priority(),
		"category", created.Category(),
	)

	result.Ticket = dto.ToTicketDTO(created, uc.store.Snapshot().Clients)
	return result, nil
}

func toValidationError(err error) error {
	if errors.IsAppError(err) {
		return err
	}
	return errors.NewValidationError(err.Error())
}
