package usecases

import (
	"context"
	"strings"

	"github.com/nexus-desk/nexus/internal/application/access"
	"github.com/nexus-desk/nexus/internal/application/ticket/dto"
	"github.com/nexus-desk/nexus/internal/domain/client"
	permvo "github.com/nexus-desk/nexus/internal/domain/permission/value_objects"
	"github.com/nexus-desk/nexus/internal/domain/session"
	"github.com/nexus-desk/nexus/internal/domain/ticket"
	vo "github.com/nexus-desk/nexus/internal/domain/ticket/valueobjects"
	"github.com/nexus-desk/nexus/internal/shared/errors"
	"github.com/nexus-desk/nexus/internal/shared/logger"
)

type ListTicketsQuery struct {
	Session  session.Session
	Search   string
	Status   string
	Priority string
}

type ListTicketsResult struct {
	Tickets []*dto.TicketDTO `json:"tickets"`
	Total   int              `json:"total"`
}

type ListTicketsUseCase struct {
	store  TicketStore
	guard  *access.Guard
	logger logger.Interface
}

func NewListTicketsUseCase(store TicketStore, guard *access.Guard, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		store:  store,
		guard:  guard,
		logger: logger,
	}
}

// Execute returns the visible tickets newest first. The search term matches
// title and description; administrators also match the client's company.
func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	state := uc.store.Snapshot()
	if _, err := uc.guard.Authorize(query.Session, state, permvo.ResourceTickets, permvo.ActionRead); err != nil {
		return nil, err
	}

	var status vo.TicketStatus
	if query.Status != "" {
		s, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid status filter", query.Status)
		}
		status = s
	}
	var priority vo.Priority
	if query.Priority != "" {
		p, err := vo.NewPriority(query.Priority)
		if err != nil {
			return nil, errors.NewValidationError("invalid priority filter", query.Priority)
		}
		priority = p
	}

	term := strings.ToLower(strings.TrimSpace(query.Search))
	visible := session.VisibleTickets(query.Session, state.Tickets)

	matched := make([]*ticket.Ticket, 0, len(visible))
	for _, t := range visible {
		if status != "" && t.Status() != status {
			continue
		}
		if priority != "" && t.Priority() != priority {
			continue
		}
		if !uc.matches(query.Session, t, term, state.Clients) {
			continue
		}
		matched = append(matched, t)
	}

	return &ListTicketsResult{
		Tickets: dto.ToTicketDTOList(matched, state.Clients),
		Total:   len(matched),
	}, nil
}

func (uc *ListTicketsUseCase) matches(s session.Session, t *ticket.Ticket, term string, clients []*client.Client) bool {
	if term == "" || t.Matches(term) {
		return true
	}
	if !s.IsAdmin() {
		return false
	}
	c, ok := client.Find(clients, t.ClientID())
	return ok && strings.Contains(strings.ToLower(c.Company()), term)
}
