package kvstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/nexus-desk/nexus/internal/infrastructure/database"
	"github.com/nexus-desk/nexus/internal/infrastructure/migration"
	"github.com/nexus-desk/nexus/internal/shared/config"
	"github.com/nexus-desk/nexus/internal/shared/logger"
)

const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendSQL    = "sql"
	BackendMongo  = "mongo"
)

// Open builds the backend named in the store configuration.
func Open(ctx context.Context, cfg *config.StoreConfig, redisCfg *config.RedisConfig, log logger.Interface) (Store, error) {
	backend := strings.ToLower(cfg.Backend)
	log.Infow("opening key-value store", "backend", backend)

	switch backend {
	case BackendMemory:
		return NewMemoryStore(), nil

	case BackendFile, "":
		return NewFileStore(cfg.File.Dir)

	case BackendRedis:
		if !redisCfg.IsConfigured() {
			return nil, fmt.Errorf("kvstore: redis backend selected but redis.host is empty")
		}
		client := NewRedisClient(redisCfg)
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("kvstore: redis ping: %w", err)
		}
		return NewRedisStore(client), nil

	case BackendSQL:
		db, err := database.Open(&cfg.SQL)
		if err != nil {
			return nil, err
		}
		if cfg.SQL.AutoMigrate {
			strategy := migration.NewGooseStrategy(database.GooseDialect(cfg.SQL.Driver), log)
			if err := strategy.Migrate(ctx, db); err != nil {
				_ = database.Close(db)
				return nil, err
			}
		}
		return NewGormStore(db), nil

	case BackendMongo:
		return NewMongoStore(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Collection)

	default:
		return nil, fmt.Errorf("kvstore: unknown backend %q", cfg.Backend)
	}
}

func NewRedisClient(cfg *config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}
