package config

const (
	defaultServerPort = 8080

	defaultRateLimitRPS   = 10.0
	defaultRateLimitBurst = 20

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"registry.base_url":                        "https://api.ord.vk.com",
		"registry.token":                           "",
		"registry.timeout":                         "30s",
		"registry.rate_limit.enabled":              false,
		"registry.rate_limit.rps":                  defaultRateLimitRPS,
		"registry.rate_limit.burst":                defaultRateLimitBurst,
		"registry.circuit_breaker.enabled":         false,
		"registry.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"registry.circuit_breaker.timeout":         "30s",
		"registry.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"telemetry.enabled":  false,
		"telemetry.exporter": "stdout",
		"telemetry.endpoint": "",
	}
}
