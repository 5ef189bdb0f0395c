// Package setting exposes the desk-wide settings record to administrators.
package setting

import (
	"context"

	"github.com/nexus-desk/nexus/internal/application/access"
	"github.com/nexus-desk/nexus/internal/application/setting/dto"
	"github.com/nexus-desk/nexus/internal/application/setting/usecases"
	"github.com/nexus-desk/nexus/internal/domain/session"
	"github.com/nexus-desk/nexus/internal/shared/logger"
)

type Service struct {
	get    *usecases.GetSettingsUseCase
	update *usecases.UpdateSettingsUseCase
}

func NewService(store usecases.SettingsStore, guard *access.Guard, log logger.Interface) *Service {
	log = log.Named("settings")
	return &Service{
		get:    usecases.NewGetSettingsUseCase(store, guard, log),
		update: usecases.NewUpdateSettingsUseCase(store, guard, log),
	}
}

func (s *Service) Get(ctx context.Context, sess session.Session) (*dto.SettingsDTO, error) {
	return s.get.Execute(ctx, sess)
}

// Update replaces the whole record. An omitted autoCategorization flag
// turns categorization off.
func (s *Service) Update(ctx context.Context, sess session.Session, req dto.UpdateSettingsRequest) (*dto.SettingsDTO, error) {
	return s.update.Execute(ctx, sess, req.ToParams())
}
