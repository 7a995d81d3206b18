package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string `envconfig:"APP_MODE" default:"dev"`
	Port     string `envconfig:"PORT" default:"3001"`
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Log      LogConfig
}

// DatabaseConfig holds Postgres configuration. An empty URL selects the
// in-memory fallback store.
type DatabaseConfig struct {
	URL             string        `envconfig:"DATABASE_URL" default:""`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"100"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"1h"`
}

// RedisConfig holds cache configuration. An empty address disables the
// recent-sightings cache and change-event publication.
type RedisConfig struct {
	Address   string        `envconfig:"REDIS_ADDRESS" default:""`
	Password  string        `envconfig:"REDIS_PASSWORD" default:""`
	Database  int           `envconfig:"REDIS_DATABASE" default:"0"`
	RecentTTL time.Duration `envconfig:"REDIS_RECENT_TTL" default:"60s"`
}

// JWTConfig holds token service configuration
type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" default:"your-super-secret-jwt-key-change-in-production"`
	TokenTTL time.Duration `envconfig:"JWT_TOKEN_TTL" default:"24h"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"text"`
}

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		logrus.Debug(".env file not found, using environment variables")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	cfg.AppMode = strings.TrimSpace(cfg.AppMode)
	if cfg.AppMode != "dev" && cfg.AppMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", cfg.AppMode)
	}

	return &cfg, nil
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// UseMemoryStore reports whether the in-memory fallback store is active
func (c *Config) UseMemoryStore() bool {
	return c.Database.URL == ""
}
