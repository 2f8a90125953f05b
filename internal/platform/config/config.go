// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import (
	"time"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/domain"
)

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Database  DatabaseConfig  `koanf:"database"`
	Locales   []LocaleConfig  `koanf:"locales"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`

	// RequestTimeout bounds each API request; zero disables the bound.
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// DatabaseConfig holds backing-store settings. TxTimeout bounds a root
// transaction scope when the caller's context carries no deadline.
type DatabaseConfig struct {
	Driver          string               `koanf:"driver"`
	DSN             string               `koanf:"dsn"`
	MaxOpenConns    int                  `koanf:"max_open_conns"`
	MaxIdleConns    int                  `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration        `koanf:"conn_max_lifetime"`
	TxTimeout       time.Duration        `koanf:"tx_timeout"`
	Retry           RetryConfig          `koanf:"retry"`
	CircuitBreaker  CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// LocaleConfig declares one culture records may be cloned into.
type LocaleConfig struct {
	Code      string `koanf:"code"`
	Default   bool   `koanf:"default"`
	Supported bool   `koanf:"supported"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// DomainLocales converts the configured locales into domain descriptors,
// preserving declaration order.
func (c *Config) DomainLocales() []domain.Locale {
	out := make([]domain.Locale, 0, len(c.Locales))
	for _, l := range c.Locales {
		out = append(out, domain.Locale{Code: l.Code, IsDefault: l.Default, IsSupported: l.Supported})
	}
	return out
}
