package usecases

import (
	"context"

	"github.com/nexus-desk/nexus/internal/application/access"
	"github.com/nexus-desk/nexus/internal/application/setting/dto"
	permvo "github.com/nexus-desk/nexus/internal/domain/permission/value_objects"
	"github.com/nexus-desk/nexus/internal/domain/session"
	"github.com/nexus-desk/nexus/internal/domain/setting"
	"github.com/nexus-desk/nexus/internal/shared/errors"
	"github.com/nexus-desk/nexus/internal/shared/logger"
)

// UpdateSettingsUseCase validates and replaces the settings record as a whole.
type UpdateSettingsUseCase struct {
	store  SettingsStore
	guard  *access.Guard
	logger logger.Interface
}

func NewUpdateSettingsUseCase(store SettingsStore, guard *access.Guard, logger logger.Interface) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		store:  store,
		guard:  guard,
		logger: logger,
	}
}

func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, s session.Session, params setting.Params) (*dto.SettingsDTO, error) {
	if _, err := uc.guard.Authorize(s, uc.store.Snapshot(), permvo.ResourceSettings, permvo.ActionUpdate); err != nil {
		return nil, err
	}

	next, err := setting.NewSystemSettings(params)
	if err != nil {
		uc.logger.Warnw("settings rejected", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.store.UpdateSettings(ctx, next); err != nil {
		uc.logger.Errorw("failed to update settings", "error", err)
		return nil, err
	}

	uc.logger.Infow("settings updated",
		"ai_model", next.AIModel(),
		"auto_categorization", next.AutoCategorization(),
		"default_priority", next.DefaultPriority(),
	)
	return dto.ToSettingsDTO(next), nil
}
