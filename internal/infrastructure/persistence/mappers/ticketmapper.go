package mappers

import (
	"fmt"

	"github.com/nexus-desk/nexus/internal/domain/ticket"
	vo "github.com/nexus-desk/nexus/internal/domain/ticket/valueobjects"
	"github.com/nexus-desk/nexus/internal/infrastructure/persistence/models"
)

// TicketMapper provides methods for converting between domain and record
type TicketMapper interface {
	ToDomain(record *models.TicketRecord) (*ticket.Ticket, error)
	ToRecord(entity *ticket.Ticket) *models.TicketRecord
	ToDomainList(records []models.TicketRecord) ([]*ticket.Ticket, error)
	ToRecordList(entities []*ticket.Ticket) []models.TicketRecord
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToDomain(record *models.TicketRecord) (*ticket.Ticket, error) {
	if record == nil {
		return nil, nil
	}

	status, err := vo.NewTicketStatus(record.Status)
	if err != nil {
		return nil, fmt.Errorf("ticket %s: %w", record.ID, err)
	}
	priority, err := vo.NewPriority(record.Priority)
	if err != nil {
		return nil, fmt.Errorf("ticket %s: %w", record.ID, err)
	}
	createdAt, err := parseTime(record.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("ticket %s: %w", record.ID, err)
	}

	var assignedTo *string
	if record.AssignedTo != nil {
		v := *record.AssignedTo
		assignedTo = &v
	}

	t, err := ticket.ReconstructTicket(
		record.ID,
		record.Title,
		record.Description,
		record.ClientID,
		assignedTo,
		status,
		priority,
		record.Category,
		createdAt,
		record.AIAnalysis,
	)
	if err != nil {
		return nil, fmt.Errorf("ticket %s: %w", record.ID, err)
	}
	return t, nil
}

func (m *TicketMapperImpl) ToRecord(entity *ticket.Ticket) *models.TicketRecord {
	if entity == nil {
		return nil
	}
	return &models.TicketRecord{
		ID:          entity.ID(),
		Title:       entity.Title(),
		Description: entity.Description(),
		ClientID:    entity.ClientID(),
		AssignedTo:  entity.AssignedTo(),
		Status:      entity.Status().String(),
		Priority:    entity.Priority().String(),
		Category:    entity.Category(),
		CreatedAt:   formatTime(entity.CreatedAt()),
		AIAnalysis:  entity.AIAnalysis(),
	}
}

func (m *TicketMapperImpl) ToDomainList(records []models.TicketRecord) ([]*ticket.Ticket, error) {
	entities := make([]*ticket.Ticket, 0, len(records))
	for i := range records {
		t, err := m.ToDomain(&records[i])
		if err != nil {
			return nil, err
		}
		entities = append(entities, t)
	}
	return entities, nil
}

func (m *TicketMapperImpl) ToRecordList(entities []*ticket.Ticket) []models.TicketRecord {
	records := make([]models.TicketRecord, 0, len(entities))
	for _, e := range entities {
		records = append(records, *m.ToRecord(e))
	}
	return records
}
