package usecases

import (
	"context"

	"github.com/nexus-desk/nexus/internal/application/store"
	"github.com/nexus-desk/nexus/internal/application/ticket/dto"
	"github.com/nexus-desk/nexus/internal/domain/ticket"
	vo "github.com/nexus-desk/nexus/internal/domain/ticket/valueobjects"
)

// TicketStore is the part of the entity store the ticket use cases need.
type TicketStore interface {
	Snapshot() *store.State
	AddTicket(ctx context.Context, draft *ticket.Ticket) (*ticket.Ticket, error)
	UpdateTicketStatus(ctx context.Context, ticketID string, status vo.TicketStatus) (*ticket.Ticket, bool, error)
}

// TicketClassifier triages a new ticket. It must always return a usable
// analysis, falling back on its own when the model is unavailable.
type TicketClassifier interface {
	Classify(ctx context.Context, model, title, description string) ticket.Analysis
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error)
}
