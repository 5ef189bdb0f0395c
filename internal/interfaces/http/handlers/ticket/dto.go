package ticket

import (
	"github.com/nexus-desk/nexus/internal/application/ticket/dto"
	"github.com/nexus-desk/nexus/internal/application/ticket/usecases"
	"github.com/nexus-desk/nexus/internal/domain/session"
)

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=5000"`
	// ClientID is ignored for portal sessions.
	ClientID string `json:"client_id"`
}

func (r *CreateTicketRequest) ToCommand(s session.Session) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Session:     s,
		Title:       r.Title,
		Description: r.Description,
		ClientID:    r.ClientID,
	}
}

type CreateTicketResponse struct {
	Ticket     *dto.TicketDTO `json:"ticket"`
	Sentiment  string         `json:"sentiment,omitempty"`
	Classified bool           `json:"classified"`
}

// ChangeStatusRequest may be empty, in which case the ticket advances one step.
type ChangeStatusRequest struct {
	Status string `json:"status" binding:"omitempty,oneof=OPEN IN_PROGRESS RESOLVED CLOSED"`
}
