package session

import (
	"errors"
	"strings"

	"github.com/nexus-desk/nexus/internal/domain/client"
	"github.com/nexus-desk/nexus/internal/domain/ticket"
)

var (
	ErrTargetClientRequired = errors.New("target client is required")
	ErrTargetClientUnknown  = errors.New("target client does not exist")
)

// VisibleTickets never returns a ticket owned by another client.
func VisibleTickets(s Session, all []*ticket.Ticket) []*ticket.Ticket {
	if s.IsAdmin() {
		return all
	}
	visible := make([]*ticket.Ticket, 0)
	for _, t := range all {
		if t.BelongsTo(s.clientID) {
			visible = append(visible, t)
		}
	}
	return visible
}

// VisibleClients returns nothing for a client session.
func VisibleClients(s Session, all []*client.Client) []*client.Client {
	if s.IsAdmin() {
		return all
	}
	return []*client.Client{}
}

// CanSeeTicket is the single-ticket form of VisibleTickets.
func CanSeeTicket(s Session, t *ticket.Ticket) bool {
	return s.IsAdmin() || t.BelongsTo(s.clientID)
}

// AuthorizeTicketCreation decides the owning client of a new ticket. A client
// session always files for itself whatever it requested; the administrator
// must name an existing client.
func AuthorizeTicketCreation(s Session, requestedClientID string, exists func(clientID string) bool) (string, error) {
	if s.IsClient() {
		return s.clientID, nil
	}
	requested := strings.TrimSpace(requestedClientID)
	if requested == "" {
		return "", ErrTargetClientRequired
	}
	if !exists(requested) {
		return "", ErrTargetClientUnknown
	}
	return requested, nil
}
