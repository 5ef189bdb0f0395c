package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// StoreConfig selects the key-value backend the entity store mirrors its state into.
type StoreConfig struct {
	Backend   string           `mapstructure:"backend"`
	KeyPrefix string           `mapstructure:"key_prefix"`
	SeedDemo  bool             `mapstructure:"seed_demo"`
	File      FileStoreConfig  `mapstructure:"file"`
	SQL       SQLStoreConfig   `mapstructure:"sql"`
	Mongo     MongoStoreConfig `mapstructure:"mongo"`
}

type FileStoreConfig struct {
	Dir string `mapstructure:"dir"`
}

type SQLStoreConfig struct {
	Driver          string `mapstructure:"driver"`
	DSN             string `mapstructure:"dsn"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool   `mapstructure:"auto_migrate"`
}

type MongoStoreConfig struct {
	URI        string `mapstructure:"uri"`
	Database   string `mapstructure:"database"`
	Collection string `mapstructure:"collection"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// IsConfigured reports whether a Redis host was provided at all.
func (r *RedisConfig) IsConfigured() bool {
	return r.Host != ""
}

type AIConfig struct {
	APIKey                  string `mapstructure:"api_key"`
	BaseURL                 string `mapstructure:"base_url"`
	RequestTimeoutSeconds   int    `mapstructure:"request_timeout_seconds"`
	ChatRatePerMinute       int    `mapstructure:"chat_rate_per_minute"`
	TicketRatePerMinute     int    `mapstructure:"ticket_rate_per_minute"`
	ConversationsPerSession int    `mapstructure:"conversations_per_session"`
	ConversationIdleMinutes int    `mapstructure:"conversation_idle_minutes"`
}

func (a *AIConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}

type BusinessConfig struct {
	Timezone string `mapstructure:"timezone"`
}
