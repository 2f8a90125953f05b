package config

const (
	defaultServerPort = 8080

	defaultMaxOpenConns = 10
	defaultMaxIdleConns = 5

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
// Locales have no default; a deployment must declare at least one.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "30s",

		"log.level":  "info",
		"log.format": "json",

		"database.driver":                          "postgres",
		"database.dsn":                             "",
		"database.max_open_conns":                  defaultMaxOpenConns,
		"database.max_idle_conns":                  defaultMaxIdleConns,
		"database.conn_max_lifetime":               "30m",
		"database.tx_timeout":                      "15s",
		"database.retry.max_attempts":              defaultRetryMaxAttempts,
		"database.retry.initial_interval":          "100ms",
		"database.retry.max_interval":              "2s",
		"database.retry.multiplier":                defaultRetryMultiplier,
		"database.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"database.circuit_breaker.timeout":         "30s",
		"database.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"telemetry.enabled":  false,
		"telemetry.exporter": "stdout",
		"telemetry.endpoint": "",
	}
}
