package http

import (
	"context"

	"github.com/nexus-desk/nexus/internal/application/store"
	"github.com/nexus-desk/nexus/internal/infrastructure/kvstore"
	"github.com/nexus-desk/nexus/internal/infrastructure/repository"
)

// initInfrastructure opens the key-value backend, the optional Redis client
// used for rate limiting, and loads the entity store.
func (c *Container) initInfrastructure(ctx context.Context) error {
	if c.kv == nil {
		kv, err := kvstore.Open(ctx, &c.cfg.Store, &c.cfg.Redis, c.log)
		if err != nil {
			return wrapInit("key-value store", err)
		}
		c.kv = kv
	}

	if c.cfg.Redis.IsConfigured() {
		client := kvstore.NewRedisClient(&c.cfg.Redis)
		if err := client.Ping(ctx).Err(); err != nil {
			c.log.Warnw("redis unreachable, rate limiting disabled", "addr", c.cfg.Redis.GetAddr(), "error", err)
			_ = client.Close()
		} else {
			c.redis = client
			c.log.Infow("redis connected", "addr", c.cfg.Redis.GetAddr())
		}
	}

	stateRepo := repository.NewStateRepository(c.kv, c.cfg.Store.KeyPrefix, c.log)
	c.store = store.New(stateRepo, c.log, store.WithSeed(c.cfg.Store.SeedDemo))
	if err := c.store.Load(ctx); err != nil {
		return wrapInit("entity store", err)
	}
	return nil
}
