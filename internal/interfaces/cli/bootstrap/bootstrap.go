// Package bootstrap loads configuration, logging and the entity store for
// the CLI commands.
package bootstrap

import (
	"context"
	"fmt"
	"os"

	"github.com/nexus-desk/nexus/internal/application/store"
	"github.com/nexus-desk/nexus/internal/infrastructure/config"
	"github.com/nexus-desk/nexus/internal/infrastructure/kvstore"
	"github.com/nexus-desk/nexus/internal/infrastructure/repository"
	"github.com/nexus-desk/nexus/internal/shared/biztime"
	"github.com/nexus-desk/nexus/internal/shared/constants"
	"github.com/nexus-desk/nexus/internal/shared/logger"
)

// Init loads the configuration and initializes the global logger and the
// business timezone. ENV in the environment overrides env.
func Init(env, configPath string) (*config.Config, logger.Interface, error) {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = GinMode(env)

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.Business.Timezone); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

// OpenStore opens the configured backend and loads the entity store from
// it. The returned close function releases the backend.
func OpenStore(ctx context.Context, cfg *config.Config, log logger.Interface) (*store.Store, func(), error) {
	kv, err := kvstore.Open(ctx, &cfg.Store, &cfg.Redis, log)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := kv.Close(); err != nil {
			log.Warnw("failed to close key-value store", "error", err)
		}
	}

	s := store.New(repository.NewStateRepository(kv, cfg.Store.KeyPrefix, log), log, store.WithSeed(cfg.Store.SeedDemo))
	if err := s.Load(ctx); err != nil {
		closeFn()
		return nil, nil, err
	}
	return s, closeFn, nil
}

func GinMode(environment string) string {
	switch environment {
	case constants.EnvProduction, "prod", "release":
		return "release"
	case constants.EnvTest, "testing":
		return "test"
	default:
		return "debug"
	}
}
