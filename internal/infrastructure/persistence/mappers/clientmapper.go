package mappers

import (
	"fmt"

	"github.com/nexus-desk/nexus/internal/domain/client"
	"github.com/nexus-desk/nexus/internal/infrastructure/persistence/models"
)

type ClientMapper interface {
	ToDomainList(records []models.ClientRecord) ([]*client.Client, error)
	ToRecordList(entities []*client.Client) []models.ClientRecord
}

type ClientMapperImpl struct{}

func NewClientMapper() ClientMapper {
	return &ClientMapperImpl{}
}

func (m *ClientMapperImpl) ToDomainList(records []models.ClientRecord) ([]*client.Client, error) {
	entities := make([]*client.Client, 0, len(records))
	for _, r := range records {
		createdAt, err := parseTime(r.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("client %s: %w", r.ID, err)
		}
		c, err := client.ReconstructClient(r.ID, r.Name, r.Company, r.Email, createdAt)
		if err != nil {
			return nil, fmt.Errorf("client %s: %w", r.ID, err)
		}
		entities = append(entities, c)
	}
	return entities, nil
}

func (m *ClientMapperImpl) ToRecordList(entities []*client.Client) []models.ClientRecord {
	records := make([]models.ClientRecord, 0, len(entities))
	for _, c := range entities {
		records = append(records, models.ClientRecord{
			ID:        c.ID(),
			Name:      c.Name(),
			Email:     c.Email(),
			Company:   c.Company(),
			CreatedAt: formatTime(c.CreatedAt()),
		})
	}
	return records
}
