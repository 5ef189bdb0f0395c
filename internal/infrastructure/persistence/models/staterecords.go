package models

// The records below are the persisted JSON layout of the four state slices.
// Field names are shared with the browser application that used the same
// keys, so they must not change.

type TicketRecord struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ClientID    string  `json:"clientId"`
	AssignedTo  *string `json:"assignedTo,omitempty"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	Category    string  `json:"category"`
	CreatedAt   string  `json:"createdAt"`
	AIAnalysis  string  `json:"aiAnalysis,omitempty"`
}

type ClientRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Company   string `json:"company"`
	CreatedAt string `json:"createdAt"`
}

type TeamMemberRecord struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

type SettingsRecord struct {
	AppName            string `json:"appName"`
	OrganizationName   string `json:"organizationName"`
	SupportEmail       string `json:"supportEmail"`
	AIModel            string `json:"aiModel"`
	AutoCategorization bool   `json:"autoCategorization"`
	DefaultPriority    string `json:"defaultPriority"`
	RetentionDays      int    `json:"retentionDays"`
}
