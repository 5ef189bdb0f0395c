package dto

import (
	"time"

	"github.com/nexus-desk/nexus/internal/domain/client"
	"github.com/nexus-desk/nexus/internal/domain/ticket"
	"github.com/nexus-desk/nexus/internal/shared/constants"
)

type TicketDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ClientID    string    `json:"client_id"`
	ClientName  string    `json:"client_name"`
	AssignedTo  *string   `json:"assigned_to,omitempty"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	Category    string    `json:"category"`
	AIAnalysis  string    `json:"ai_analysis,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ClientName returns the company of the ticket's client, or the placeholder
// used for tickets whose client was removed.
func ClientName(clients []*client.Client, clientID string) string {
	if c, ok := client.Find(clients, clientID); ok {
		return c.Company()
	}
	return constants.UnknownClientName
}

func ToTicketDTO(t *ticket.Ticket, clients []*client.Client) *TicketDTO {
	if t == nil {
		return nil
	}
	return &TicketDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		ClientID:    t.ClientID(),
		ClientName:  ClientName(clients, t.ClientID()),
		AssignedTo:  t.AssignedTo(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		Category:    t.Category(),
		AIAnalysis:  t.AIAnalysis(),
		CreatedAt:   t.CreatedAt(),
	}
}

func ToTicketDTOList(tickets []*ticket.Ticket, clients []*client.Client) []*TicketDTO {
	result := make([]*TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		result = append(result, ToTicketDTO(t, clients))
	}
	return result
}
