package migration

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"time"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/nexus-desk/nexus/internal/shared/logger"
)

//go:embed scripts/*.sql
var scriptsFS embed.FS

// Strategy brings a store schema up to date.
type Strategy interface {
	Migrate(ctx context.Context, db *gorm.DB, models ...any) error
	Name() string
}

// ScriptStatus describes one embedded SQL script.
type ScriptStatus struct {
	Version   int64
	Path      string
	Applied   bool
	AppliedAt time.Time
}

// GooseStrategy applies the embedded SQL scripts through a goose provider,
// so no package-level goose state is involved.
type GooseStrategy struct {
	dialect goose.Dialect
	logger  logger.Interface
}

func NewGooseStrategy(dialect string, log logger.Interface) *GooseStrategy {
	return &GooseStrategy{
		dialect: goose.Dialect(dialect),
		logger:  log.Named("migration.goose"),
	}
}

func (s *GooseStrategy) Name() string {
	return StrategyGoose
}

func (s *GooseStrategy) provider(db *gorm.DB) (*goose.Provider, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("migration: sql handle: %w", err)
	}
	scripts, err := fs.Sub(scriptsFS, "scripts")
	if err != nil {
		return nil, err
	}
	// The provider does not own sqlDB; never call its Close.
	p, err := goose.NewProvider(s.dialect, sqlDB, scripts)
	if err != nil {
		return nil, fmt.Errorf("migration: goose provider for %s: %w", s.dialect, err)
	}
	return p, nil
}

func (s *GooseStrategy) Migrate(ctx context.Context, db *gorm.DB, _ ...any) error {
	p, err := s.provider(db)
	if err != nil {
		return err
	}

	from, err := p.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("migration: read version: %w", err)
	}

	results, err := p.Up(ctx)
	if err != nil {
		s.logger.Errorw("applying sql scripts failed", "dialect", s.dialect, "error", err)
		return fmt.Errorf("migration: apply scripts: %w", err)
	}
	for _, r := range results {
		s.logger.Debugw("sql script applied", "version", r.Source.Version, "took", r.Duration)
	}

	to := from
	if n := len(results); n > 0 {
		to = results[n-1].Source.Version
	}
	s.logger.Infow("schema up to date", "dialect", s.dialect, "from_version", from, "to_version", to, "applied", len(results))
	return nil
}

func (s *GooseStrategy) Version(ctx context.Context, db *gorm.DB) (int64, error) {
	p, err := s.provider(db)
	if err != nil {
		return 0, err
	}
	return p.GetDBVersion(ctx)
}

// Status lists every embedded script in version order.
func (s *GooseStrategy) Status(ctx context.Context, db *gorm.DB) ([]ScriptStatus, error) {
	p, err := s.provider(db)
	if err != nil {
		return nil, err
	}
	raw, err := p.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("migration: status: %w", err)
	}

	out := make([]ScriptStatus, 0, len(raw))
	for _, st := range raw {
		out = append(out, ScriptStatus{
			Version:   st.Source.Version,
			Path:      st.Source.Path,
			Applied:   st.State == goose.StateApplied,
			AppliedAt: st.AppliedAt,
		})
	}
	return out, nil
}

// GormStrategy derives the schema from the persistence models. Useful for
// throwaway databases; it never drops columns.
type GormStrategy struct {
	logger logger.Interface
}

func NewGormStrategy(log logger.Interface) *GormStrategy {
	return &GormStrategy{logger: log.Named("migration.gorm")}
}

func (s *GormStrategy) Name() string {
	return StrategyGorm
}

func (s *GormStrategy) Migrate(ctx context.Context, db *gorm.DB, models ...any) error {
	if len(models) == 0 {
		models = Models()
	}
	if err := db.WithContext(ctx).AutoMigrate(models...); err != nil {
		return fmt.Errorf("migration: auto migrate: %w", err)
	}
	s.logger.Infow("models migrated", "count", len(models))
	return nil
}
