package mappers

import (
	"fmt"

	"github.com/nexus-desk/nexus/internal/domain/team"
	"github.com/nexus-desk/nexus/internal/infrastructure/persistence/models"
)

type TeamMapper interface {
	ToDomainList(records []models.TeamMemberRecord) ([]*team.Member, error)
	ToRecordList(entities []*team.Member) []models.TeamMemberRecord
}

type TeamMapperImpl struct{}

func NewTeamMapper() TeamMapper {
	return &TeamMapperImpl{}
}

func (m *TeamMapperImpl) ToDomainList(records []models.TeamMemberRecord) ([]*team.Member, error) {
	entities := make([]*team.Member, 0, len(records))
	for _, r := range records {
		member, err := team.ReconstructMember(r.ID, r.Name, r.Role, r.Email, team.MemberStatus(r.Status))
		if err != nil {
			return nil, fmt.Errorf("team member %s: %w", r.ID, err)
		}
		entities = append(entities, member)
	}
	return entities, nil
}

func (m *TeamMapperImpl) ToRecordList(entities []*team.Member) []models.TeamMemberRecord {
	records := make([]models.TeamMemberRecord, 0, len(entities))
	for _, member := range entities {
		records = append(records, models.TeamMemberRecord{
			ID:     member.ID(),
			Name:   member.Name(),
			Role:   member.Role(),
			Email:  member.Email(),
			Status: member.Status().String(),
		})
	}
	return records
}
