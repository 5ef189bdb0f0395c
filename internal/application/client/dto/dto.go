package dto

import (
	"time"

	"github.com/nexus-desk/nexus/internal/domain/client"
)

type ClientDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Company   string    `json:"company"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func ToClientDTO(c *client.Client) *ClientDTO {
	if c == nil {
		return nil
	}
	return &ClientDTO{
		ID:        c.ID(),
		Name:      c.Name(),
		Company:   c.Company(),
		Email:     c.Email(),
		CreatedAt: c.CreatedAt(),
	}
}

func ToClientDTOList(clients []*client.Client) []*ClientDTO {
	result := make([]*ClientDTO, 0, len(clients))
	for _, c := range clients {
		result = append(result, ToClientDTO(c))
	}
	return result
}
