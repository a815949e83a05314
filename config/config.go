package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env      string `env:"ENV" envDefault:"local" validate:"required,oneof=local staging production"`
	Port     string `env:"PORT" envDefault:"3000" validate:"required"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`

	DatabaseURL       string `env:"DATABASE_URL,required" validate:"required"`
	DBMaxConns        int32  `env:"DB_MAX_CONNS" envDefault:"5" validate:"min=1,max=50"`
	DBQueryTimeoutSec int    `env:"DB_QUERY_TIMEOUT_SEC" envDefault:"5" validate:"min=1,max=60"`
	AutoMigrate       bool   `env:"AUTO_MIGRATE" envDefault:"true"`

	MetricsPort string `env:"METRICS_PORT" envDefault:"9090"`

	SessionShards        int    `env:"SESSION_SHARDS" envDefault:"16" validate:"min=1,max=1024"`
	// SessionSweepEnabled false leaves expiry purely lazy.
	SessionSweepEnabled  bool   `env:"SESSION_SWEEP_ENABLED" envDefault:"true"`
	// SessionSweepSchedule is a cron spec for evicting idle sessions.
	SessionSweepSchedule string `env:"SESSION_SWEEP_SCHEDULE" envDefault:"@every 1m" validate:"required_if=SessionSweepEnabled true"`
}

func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c *Config) DBQueryTimeout() time.Duration {
	return time.Duration(c.DBQueryTimeoutSec) * time.Second
}
