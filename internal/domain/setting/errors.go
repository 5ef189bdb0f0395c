package setting

import "errors"

var (
	ErrAppNameRequired          = errors.New("app name is required")
	ErrOrganizationNameRequired = errors.New("organization name is required")
	ErrAIModelRequired          = errors.New("AI model is required")
	ErrInvalidDefaultPriority   = errors.New("invalid default priority")
	ErrInvalidRetentionDays     = errors.New("retention days must be at least 1")
)
