package dto

import "github.com/nexus-desk/nexus/internal/domain/setting"

type SettingsDTO struct {
	AppName            string `json:"app_name"`
	OrganizationName   string `json:"organization_name"`
	SupportEmail       string `json:"support_email"`
	AIModel            string `json:"ai_model"`
	AutoCategorization bool   `json:"auto_categorization"`
	DefaultPriority    string `json:"default_priority"`
	RetentionDays      int    `json:"retention_days"`
}

// UpdateSettingsRequest replaces the whole settings record.
type UpdateSettingsRequest struct {
	AppName            string `json:"app_name" binding:"required"`
	OrganizationName   string `json:"organization_name" binding:"required"`
	SupportEmail       string `json:"support_email" binding:"required,email"`
	AIModel            string `json:"ai_model" binding:"required"`
	AutoCategorization *bool  `json:"auto_categorization" binding:"required"`
	DefaultPriority    string `json:"default_priority" binding:"required,oneof=LOW MEDIUM HIGH URGENT"`
	RetentionDays      int    `json:"retention_days" binding:"required,min=1"`
}

func ToSettingsDTO(s *setting.SystemSettings) *SettingsDTO {
	if s == nil {
		return nil
	}
	p := s.Params()
	return &SettingsDTO{
		AppName:            p.AppName,
		OrganizationName:   p.OrganizationName,
		SupportEmail:       p.SupportEmail,
		AIModel:            p.AIModel,
		AutoCategorization: p.AutoCategorization,
		DefaultPriority:    p.DefaultPriority,
		RetentionDays:      p.RetentionDays,
	}
}

func (r UpdateSettingsRequest) ToParams() setting.Params {
	auto := false
	if r.AutoCategorization != nil {
		auto = *r.AutoCategorization
	}
	return setting.Params{
		AppName:            r.AppName,
		OrganizationName:   r.OrganizationName,
		SupportEmail:       r.SupportEmail,
		AIModel:            r.AIModel,
		AutoCategorization: auto,
		DefaultPriority:    r.DefaultPriority,
		RetentionDays:      r.RetentionDays,
	}
}
