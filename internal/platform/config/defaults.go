package config

const (
	defaultServerPort = 8080

	defaultMaxOpenConns = 10
	defaultMaxIdleConns = 5

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultCORSMaxAge = 300
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":                 "0.0.0.0",
		"server.port":                 defaultServerPort,
		"server.read_header_timeout":  "2s",
		"server.read_timeout":         "5s",
		"server.write_timeout":        "10s",
		"server.idle_timeout":         "120s",
		"server.shutdown_timeout":     "15s",
		"server.health_check_timeout": "2s",

		"log.level":  "info",
		"log.format": "json",

		"database.driver":            "sqlite3",
		"database.dsn":               "file:sprintboard.db?_foreign_keys=1&_busy_timeout=5000",
		"database.max_open_conns":    defaultMaxOpenConns,
		"database.max_idle_conns":    defaultMaxIdleConns,
		"database.conn_max_lifetime": "30m",
		"database.show_sql":          false,
		"database.migrate":           true,

		"auth.mode":        "header",
		"auth.header_name": "X-User-ID",
		"auth.jwt.leeway":  "30s",

		"auth.session.path":                                   "/api/v1/session",
		"auth.session.cookie":                                 "session",
		"auth.session.client.base_url":                        "http://localhost:8081",
		"auth.session.client.timeout":                         "5s",
		"auth.session.client.retry.max_attempts":              defaultRetryMaxAttempts,
		"auth.session.client.retry.initial_interval":          "100ms",
		"auth.session.client.retry.max_interval":              "2s",
		"auth.session.client.retry.multiplier":                defaultRetryMultiplier,
		"auth.session.client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"auth.session.client.circuit_breaker.timeout":         "30s",
		"auth.session.client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"cors.max_age": defaultCORSMaxAge,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "sprintboard",
	}
}
