// Package migration keeps the schema of the SQL store backend current,
// either from embedded goose scripts or from the gorm models.
package migration

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/nexus-desk/nexus/internal/shared/logger"
)

const (
	StrategyGoose = "goose"
	StrategyGorm  = "gorm"
)

// Manager runs one Strategy and reports its outcome.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks a strategy by name; an empty name means goose.
func NewManager(name, dialect string, log logger.Interface) (*Manager, error) {
	var strategy Strategy
	switch name {
	case "", StrategyGoose:
		strategy = NewGooseStrategy(dialect, log)
	case StrategyGorm:
		strategy = NewGormStrategy(log)
	default:
		return nil, fmt.Errorf("unknown migration strategy %q (want %s or %s)", name, StrategyGoose, StrategyGorm)
	}
	return &Manager{strategy: strategy, logger: log.Named("migration")}, nil
}

func (m *Manager) Strategy() Strategy {
	return m.strategy
}

func (m *Manager) Migrate(ctx context.Context, db *gorm.DB, models ...any) error {
	name := m.strategy.Name()
	if err := m.strategy.Migrate(ctx, db, models...); err != nil {
		m.logger.Errorw("store migration failed", "strategy", name, "error", err)
		return fmt.Errorf("%s migration: %w", name, err)
	}
	m.logger.Infow("store migration finished", "strategy", name)
	return nil
}
