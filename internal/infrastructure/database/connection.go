package database

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/nexus-desk/nexus/internal/shared/config"
	applog "github.com/nexus-desk/nexus/internal/shared/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// Open connects to the configured SQL database and sizes its pool.
func Open(cfg *config.SQLStoreConfig) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:      queryLog{level: gormlogger.Warn},
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("database: open %s: %w", cfg.Driver, err)
	}

	pool, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database: sql handle: %w", err)
	}
	if n := cfg.MaxIdleConns; n > 0 {
		pool.SetMaxIdleConns(n)
	}
	if n := cfg.MaxOpenConns; n > 0 {
		pool.SetMaxOpenConns(n)
	}
	if m := cfg.ConnMaxLifetime; m > 0 {
		pool.SetConnMaxLifetime(time.Duration(m) * time.Minute)
	}
	if err := pool.Ping(); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("database: ping %s: %w", cfg.Driver, err)
	}

	applog.Info("sql store connected", "driver", cfg.Driver)
	return db, nil
}

func dialectorFor(cfg *config.SQLStoreConfig) (gorm.Dialector, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("database dsn is required")
	}
	switch strings.ToLower(cfg.Driver) {
	case DriverSQLite, "sqlite3", "":
		return sqlite.Open(cfg.DSN), nil
	case DriverMySQL:
		return mysql.New(mysql.Config{
			DSN:                       cfg.DSN,
			SkipInitializeWithVersion: true,
		}), nil
	case DriverPostgres, "postgresql":
		return postgres.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}
}

// GooseDialect names the goose dialect for a configured driver.
func GooseDialect(driver string) string {
	switch strings.ToLower(driver) {
	case DriverMySQL:
		return "mysql"
	case DriverPostgres, "postgresql":
		return "postgres"
	default:
		return "sqlite3"
	}
}

// Close releases the pool behind db. A nil db is ignored.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	pool, err := db.DB()
	if err != nil {
		return fmt.Errorf("database: sql handle: %w", err)
	}
	if err := pool.Close(); err != nil {
		return fmt.Errorf("database: close: %w", err)
	}
	applog.Debug("sql store closed")
	return nil
}
