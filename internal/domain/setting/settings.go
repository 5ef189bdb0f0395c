package setting

import (
	"strings"

	sharedvo "github.com/nexus-desk/nexus/internal/domain/shared/valueobjects"
	vo "github.com/nexus-desk/nexus/internal/domain/ticket/valueobjects"
)

const (
	DefaultAppName          = "Nexus"
	DefaultOrganizationName = "Nexus Global"
	DefaultSupportEmail     = "support@nexus.io"
	DefaultAIModel          = "gemini-3-flash-preview"
	DefaultRetentionDays    = 90
)

// Params is the full editable settings record.
type Params struct {
	AppName            string
	OrganizationName   string
	SupportEmail       string
	AIModel            string
	AutoCategorization bool
	DefaultPriority    string
	RetentionDays      int
}

// SystemSettings is the single workspace configuration record. It is always
// replaced as a whole.
type SystemSettings struct {
	appName            string
	organizationName   string
	supportEmail       sharedvo.Email
	aiModel            string
	autoCategorization bool
	defaultPriority    vo.Priority
	retentionDays      int
}

func NewSystemSettings(p Params) (*SystemSettings, error) {
	appName := strings.TrimSpace(p.AppName)
	if appName == "" {
		return nil, ErrAppNameRequired
	}
	org := strings.TrimSpace(p.OrganizationName)
	if org == "" {
		return nil, ErrOrganizationNameRequired
	}
	email, err := sharedvo.NewEmail(p.SupportEmail)
	if err != nil {
		return nil, err
	}
	model := strings.TrimSpace(p.AIModel)
	if model == "" {
		return nil, ErrAIModelRequired
	}
	priority, err := vo.NewPriority(p.DefaultPriority)
	if err != nil {
		return nil, ErrInvalidDefaultPriority
	}
	if p.RetentionDays < 1 {
		return nil, ErrInvalidRetentionDays
	}

	return &SystemSettings{
		appName:            appName,
		organizationName:   org,
		supportEmail:       email,
		aiModel:            model,
		autoCategorization: p.AutoCategorization,
		defaultPriority:    priority,
		retentionDays:      p.RetentionDays,
	}, nil
}

// DefaultSystemSettings returns the settings used when nothing was persisted.
func DefaultSystemSettings() *SystemSettings {
	s, err := NewSystemSettings(Params{
		AppName:            DefaultAppName,
		OrganizationName:   DefaultOrganizationName,
		SupportEmail:       DefaultSupportEmail,
		AIModel:            DefaultAIModel,
		AutoCategorization: true,
		DefaultPriority:    vo.PriorityMedium.String(),
		RetentionDays:      DefaultRetentionDays,
	})
	if err != nil {
		panic(err)
	}
	return s
}

func (s *SystemSettings) Params() Params {
	return Params{
		AppName:            s.appName,
		OrganizationName:   s.organizationName,
		SupportEmail:       s.supportEmail.String(),
		AIModel:            s.aiModel,
		AutoCategorization: s.autoCategorization,
		DefaultPriority:    s.defaultPriority.String(),
		RetentionDays:      s.retentionDays,
	}
}

func (s *SystemSettings) AppName() string {
	return s.appName
}

func (s *SystemSettings) OrganizationName() string {
	return s.organizationName
}

func (s *SystemSettings) SupportEmail() string {
	return s.supportEmail.String()
}

func (s *SystemSettings) AIModel() string {
	return s.aiModel
}

func (s *SystemSettings) AutoCategorization() bool {
	return s.autoCategorization
}

func (s *SystemSettings) DefaultPriority() vo.Priority {
	return s.defaultPriority
}

// RetentionDays is stored and reported only; nothing purges old tickets.
func (s *SystemSettings) RetentionDays() int {
	return s.retentionDays
}
