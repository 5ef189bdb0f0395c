package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	sharedConfig "github.com/nexus-desk/nexus/internal/shared/config"
)

type Config struct {
	Server   sharedConfig.ServerConfig   `mapstructure:"server"`
	Logger   sharedConfig.LoggerConfig   `mapstructure:"logger"`
	Store    sharedConfig.StoreConfig    `mapstructure:"store"`
	Redis    sharedConfig.RedisConfig    `mapstructure:"redis"`
	AI       sharedConfig.AIConfig       `mapstructure:"ai"`
	Email    sharedConfig.EmailConfig    `mapstructure:"email"`
	Business sharedConfig.BusinessConfig `mapstructure:"business"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from an optional .env file, the config file and
// NEXUS_ prefixed environment variables. A missing config file is not an error;
// defaults plus environment are enough to run.
func Load(env string, configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	v.SetEnvPrefix("NEXUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Allow env parameter to override server mode if provided
	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5173"})

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	v.SetDefault("store.backend", "file")
	v.SetDefault("store.key_prefix", "nexus_")
	v.SetDefault("store.seed_demo", true)
	v.SetDefault("store.file.dir", "./data")
	v.SetDefault("store.sql.driver", "sqlite")
	v.SetDefault("store.sql.dsn", "nexus.db")
	v.SetDefault("store.sql.max_idle_conns", 5)
	v.SetDefault("store.sql.max_open_conns", 10)
	v.SetDefault("store.sql.conn_max_lifetime", 60)
	v.SetDefault("store.sql.auto_migrate", false)
	v.SetDefault("store.mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("store.mongo.database", "nexus")
	v.SetDefault("store.mongo.collection", "kv_entries")

	v.SetDefault("redis.host", "")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.base_url", "https://generativelanguage.googleapis.com")
	v.SetDefault("ai.request_timeout_seconds", 30)
	v.SetDefault("ai.chat_rate_per_minute", 20)
	v.SetDefault("ai.ticket_rate_per_minute", 30)
	v.SetDefault("ai.conversations_per_session", 20)
	v.SetDefault("ai.conversation_idle_minutes", 120)

	v.SetDefault("email.smtp_host", "localhost")
	v.SetDefault("email.smtp_port", 1025)
	v.SetDefault("email.smtp_user", "")
	v.SetDefault("email.smtp_password", "")
	v.SetDefault("email.from_address", "support@nexus.io")
	v.SetDefault("email.from_name", "Nexus Support")

	v.SetDefault("business.timezone", "UTC")
}
