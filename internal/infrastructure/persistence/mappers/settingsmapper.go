package mappers

import (
	"github.com/nexus-desk/nexus/internal/domain/setting"
	"github.com/nexus-desk/nexus/internal/infrastructure/persistence/models"
)

type SettingsMapper interface {
	ToDomain(record *models.SettingsRecord) (*setting.SystemSettings, error)
	ToRecord(entity *setting.SystemSettings) *models.SettingsRecord
}

type SettingsMapperImpl struct{}

func NewSettingsMapper() SettingsMapper {
	return &SettingsMapperImpl{}
}

func (m *SettingsMapperImpl) ToDomain(record *models.SettingsRecord) (*setting.SystemSettings, error) {
	return setting.NewSystemSettings(setting.Params{
		AppName:            record.AppName,
		OrganizationName:   record.OrganizationName,
		SupportEmail:       record.SupportEmail,
		AIModel:            record.AIModel,
		AutoCategorization: record.AutoCategorization,
		DefaultPriority:    record.DefaultPriority,
		RetentionDays:      record.RetentionDays,
	})
}

func (m *SettingsMapperImpl) ToRecord(entity *setting.SystemSettings) *models.SettingsRecord {
	p := entity.Params()
	return &models.SettingsRecord{
		AppName:            p.AppName,
		OrganizationName:   p.OrganizationName,
		SupportEmail:       p.SupportEmail,
		AIModel:            p.AIModel,
		AutoCategorization: p.AutoCategorization,
		DefaultPriority:    p.DefaultPriority,
		RetentionDays:      p.RetentionDays,
	}
}
