package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Database.validate(),
		validateLocales(c.Locales),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout < 0 {
		errs = append(errs, errors.New("server.request_timeout must not be negative"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (d *DatabaseConfig) validate() error {
	var errs []error

	switch d.Driver {
	case "postgres":
		// Supported drivers.
	default:
		errs = append(errs, fmt.Errorf("database.driver must be one of: postgres; got %q", d.Driver))
	}
	if d.DSN == "" {
		errs = append(errs, errors.New("database.dsn must not be empty"))
	}
	if d.MaxOpenConns < 1 {
		errs = append(errs, fmt.Errorf("database.max_open_conns must be >= 1, got %d", d.MaxOpenConns))
	}
	if d.TxTimeout <= 0 {
		errs = append(errs, errors.New("database.tx_timeout must be positive"))
	}
	if d.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("database.retry.max_attempts must be >= 1, got %d", d.Retry.MaxAttempts))
	}
	if d.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("database.retry.multiplier must be positive, got %f", d.Retry.Multiplier))
	}
	if d.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("database.circuit_breaker.max_failures must be >= 1, got %d",
			d.CircuitBreaker.MaxFailures))
	}

	return errors.Join(errs...)
}

func validateLocales(locales []LocaleConfig) error {
	if len(locales) == 0 {
		return errors.New("locales must declare at least one culture")
	}

	var errs []error
	seen := make(map[string]bool, len(locales))
	defaults := 0

	for i, l := range locales {
		code := strings.ToLower(strings.TrimSpace(l.Code))
		if code == "" {
			errs = append(errs, fmt.Errorf("locales[%d].code must not be empty", i))
			continue
		}
		if seen[code] {
			errs = append(errs, fmt.Errorf("locales[%d].code %q is declared twice", i, l.Code))
		}
		seen[code] = true
		if l.Default {
			defaults++
		}
	}
	if defaults > 1 {
		errs = append(errs, fmt.Errorf("locales must have at most one default, got %d", defaults))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
