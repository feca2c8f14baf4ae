package config

import (
	"fmt"
	"slices"
	"time"
)

// ObservabilityConfig covers logging, New Relic and the dependency checks
// behind /status.
type ObservabilityConfig struct {
	ServiceName  string             `koanf:"service_name" validate:"required"`
	Environment  string             `koanf:"environment" validate:"required"`
	Logging      LoggingConfig      `koanf:"logging" validate:"required"`
	NewRelic     NewRelicConfig     `koanf:"new_relic" validate:"required"`
	HealthChecks HealthChecksConfig `koanf:"health_checks" validate:"required"`
}

type LoggingConfig struct {
	Level  string `koanf:"level" validate:"required"`
	Format string `koanf:"format" validate:"required"`
	// Queries slower than this are logged at warn level. Zero disables it.
	SlowQueryThreshold time.Duration `koanf:"slow_query_threshold"`
}

// NewRelicConfig configures the APM agent. An empty LicenseKey disables it.
type NewRelicConfig struct {
	LicenseKey                string `koanf:"license_key"`
	AppLogForwardingEnabled   bool   `koanf:"app_log_forwarding_enabled"`
	DistributedTracingEnabled bool   `koanf:"distributed_tracing_enabled"`
	DebugLogging              bool   `koanf:"debug_logging"`
}

// HealthChecksConfig selects which dependencies /status pings.
type HealthChecksConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Interval time.Duration `koanf:"interval" validate:"min=1s"`
	Timeout  time.Duration `koanf:"timeout" validate:"min=1s"`
	Checks   []string      `koanf:"checks"`
}

var (
	validLogLevels    = []string{"debug", "info", "warn", "error"}
	validHealthChecks = []string{"database", "redis"}
)

func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		ServiceName: ServiceName,
		Environment: "development",
		Logging: LoggingConfig{
			Level:              "info",
			Format:             "json",
			SlowQueryThreshold: 100 * time.Millisecond,
		},
		NewRelic: NewRelicConfig{
			AppLogForwardingEnabled:   true,
			DistributedTracingEnabled: true,
			// debug output from the agent breaks JSON log lines
			DebugLogging: false,
		},
		HealthChecks: HealthChecksConfig{
			Enabled:  true,
			Interval: 30 * time.Second,
			Timeout:  5 * time.Second,
			Checks:   []string{"database", "redis"},
		},
	}
}

// Validate checks the rules struct tags cannot express.
func (c *ObservabilityConfig) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("service_name is required")
	}

	if !slices.Contains(validLogLevels, c.Logging.Level) {
		return fmt.Errorf("invalid logging level: %s (must be one of: debug, info, warn, error)", c.Logging.Level)
	}

	if c.Logging.SlowQueryThreshold < 0 {
		return fmt.Errorf("logging slow_query_threshold must be non-negative")
	}

	if c.HealthChecks.Enabled && c.HealthChecks.Timeout <= 0 {
		return fmt.Errorf("health_checks timeout must be positive when checks are enabled")
	}

	for _, check := range c.HealthChecks.Checks {
		if !slices.Contains(validHealthChecks, check) {
			return fmt.Errorf("unknown health check: %s (must be one of: database, redis)", check)
		}
	}

	return nil
}

// GetLogLevel falls back to info in production and debug in development
// when no level is set.
func (c *ObservabilityConfig) GetLogLevel() string {
	if c.Logging.Level != "" {
		return c.Logging.Level
	}

	switch c.Environment {
	case "production":
		return "info"
	case "development":
		return "debug"
	}
	return ""
}

func (c *ObservabilityConfig) IsProduction() bool {
	return c.Environment == "production"
}

// HasCheck reports whether the named dependency check is enabled.
func (c *ObservabilityConfig) HasCheck(name string) bool {
	return c.HealthChecks.Enabled && slices.Contains(c.HealthChecks.Checks, name)
}
