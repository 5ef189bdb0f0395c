package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/nexus-desk/nexus/internal/application/access"
	"github.com/nexus-desk/nexus/internal/application/store"
	"github.com/nexus-desk/nexus/internal/infrastructure/config"
	"github.com/nexus-desk/nexus/internal/infrastructure/kvstore"
	"github.com/nexus-desk/nexus/internal/interfaces/http/middleware"
	"github.com/nexus-desk/nexus/internal/shared/logger"
)

// Container holds all infrastructure components, use cases, handlers and
// middlewares. It is responsible for wiring everything together and
// providing a Shutdown() method for graceful termination.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	cfg    *config.Config
	log    logger.Interface
	kv     kvstore.Store
	redis  *redis.Client

	// Entity state and access control
	store *store.Store
	guard *access.Guard

	svcs  *services
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimiter          *middleware.RateLimiter
}

type ContainerOption func(*Container)

// WithKVStore skips opening the configured backend and uses kv instead.
func WithKVStore(kv kvstore.Store) ContainerOption {
	return func(c *Container) {
		c.kv = kv
	}
}

// NewContainer creates a new Container with all dependencies wired together.
// The persisted state is loaded before any handler is built.
func NewContainer(ctx context.Context, cfg *config.Config, log logger.Interface, opts ...ContainerOption) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		cfg:    cfg,
		log:    log,
	}
	for _, opt := range opts {
		opt(c)
	}

	// Section 1: Infrastructure - key-value backend, Redis, entity store
	if err := c.initInfrastructure(ctx); err != nil {
		c.Shutdown()
		return nil, err
	}

	// Section 2: Services - permissions, AI provider, email, rate limiting
	if err := c.initServices(); err != nil {
		c.Shutdown()
		return nil, err
	}

	// Section 3: Use cases
	c.initUseCases()

	// Section 4: Handlers and middlewares
	c.initHandlers()

	return c, nil
}

// Store exposes the loaded entity store to CLI commands.
func (c *Container) Store() *store.Store {
	return c.store
}

func (c *Container) Guard() *access.Guard {
	return c.guard
}

// Shutdown releases every connection the container opened.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
	if c.kv != nil {
		if err := c.kv.Close(); err != nil {
			c.log.Warnw("failed to close key-value store", "error", err)
		}
	}
}

func wrapInit(section string, err error) error {
	return fmt.Errorf("init %s: %w", section, err)
}
