package usecases

import (
	"context"

	"github.com/nexus-desk/nexus/internal/application/access"
	"github.com/nexus-desk/nexus/internal/application/setting/dto"
	"github.com/nexus-desk/nexus/internal/application/store"
	permvo "github.com/nexus-desk/nexus/internal/domain/permission/value_objects"
	"github.com/nexus-desk/nexus/internal/domain/session"
	"github.com/nexus-desk/nexus/internal/domain/setting"
	"github.com/nexus-desk/nexus/internal/shared/logger"
)

type SettingsStore interface {
	Snapshot() *store.State
	UpdateSettings(ctx context.Context, settings *setting.SystemSettings) error
}

// GetSettingsUseCase returns the system settings to administrators.
type GetSettingsUseCase struct {
	store  SettingsStore
	guard  *access.Guard
	logger logger.Interface
}

func NewGetSettingsUseCase(store SettingsStore, guard *access.Guard, logger logger.Interface) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		store:  store,
		guard:  guard,
		logger: logger,
	}
}

func (uc *GetSettingsUseCase) Execute(ctx context.Context, s session.Session) (*dto.SettingsDTO, error) {
	state := uc.store.Snapshot()
	if _, err := uc.guard.Authorize(s, state, permvo.ResourceSettings, permvo.ActionRead); err != nil {
		return nil, err
	}
	return dto.ToSettingsDTO(state.Settings), nil
}
