// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file
// when one exists), loads them into structured Go types and validates
// that required values are present so the process fails fast on
// bad or missing configuration.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (e.g. observability).
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process environment before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read with the SIXFIGURE_ prefix. Keys are lower-cased and the
	prefix is removed. Nesting uses "." and, because most shells do not accept
	dots in variable names, a double underscore is accepted as well:

	  SIXFIGURE_SERVER.PORT     -> server.port -> Config.Server.Port
	  SIXFIGURE_DATABASE__HOST  -> database.host -> Config.Database.Host
*/

// EnvPrefix is the prefix every configuration variable must carry.
const EnvPrefix = "SIXFIGURE_"

// ServiceName tags logs, traces and APM data.
const ServiceName = "sixfigure-api"

// Version is reported by the liveness endpoint.
const Version = "1.0.0"

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. Defaults are
// injected before the environment is applied on top of them.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Auth          AuthConfig           `koanf:"auth"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are expressed in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
//
// URL takes precedence over the discrete fields, which makes it possible to
// paste a managed-provider (e.g. Supabase) connection string as is.
type DatabaseConfig struct {
	URL             string `koanf:"url"`
	Host            string `koanf:"host" validate:"required_without=URL"`
	Port            int    `koanf:"port" validate:"required_without=URL"`
	User            string `koanf:"user" validate:"required_without=URL"`
	Password        string `koanf:"password" validate:"required_without=URL"`
	Name            string `koanf:"name" validate:"required_without=URL"`
	SSLMode         string `koanf:"ssl_mode"`
	MaxOpenConns    int    `koanf:"max_open_conns"`
	MaxIdleConns    int    `koanf:"max_idle_conns"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time"`
}

// RedisConfig contains Redis connection details.
// Address is typically "host:port".
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// AuthConfig stores identity-provider secrets.
//
// SecretKey is the Clerk Backend API key. It is only needed to look users up
// when sending welcome e-mails; the webhook itself never calls Clerk.
type AuthConfig struct {
	SecretKey string `koanf:"secret_key"`
}

// IntegrationConfig holds credentials for third-party integrations.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
}

// WelcomeEmailsEnabled reports whether both the Clerk and Resend credentials
// needed by the welcome e-mail task are configured.
func (c *Config) WelcomeEmailsEnabled() bool {
	return c.Auth.SecretKey != "" && c.Integration.ResendAPIKey != ""
}

// LoadConfig loads configuration from environment variables, unmarshals it into
// Config, validates it, applies defaults and returns the resulting config.
//
// Behavior summary:
//   - Loads env vars with prefix SIXFIGURE_
//   - Converts env keys into koanf keys using "." nesting
//   - Unmarshals into Config
//   - Validates required config blocks/fields
//   - Applies defaults for optional values
//   - Validates observability config
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load initial env variables: %w", err)
	}

	// Observability starts from defaults so a single override such as
	// SIXFIGURE_OBSERVABILITY__LOGGING__LEVEL=debug keeps the other values.
	mainConfig := &Config{Observability: DefaultObservabilityConfig()}

	// "" unmarshals everything from the root. Env values are plain strings,
	// so list fields are split on commas.
	err = k.UnmarshalWithConf("", mainConfig, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			WeaklyTypedInput: true,
			Result:           mainConfig,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	mainConfig.applyDefaults()

	// Service name and environment are always derived, never configured.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

// applyDefaults fills optional values that were left empty.
func (c *Config) applyDefaults() {
	if len(c.Server.CORSAllowedOrigins) == 0 {
		c.Server.CORSAllowedOrigins = []string{"http://localhost:3000"}
	}

	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Database.ConnMaxIdleTime == 0 {
		c.Database.ConnMaxIdleTime = 60
	}
}
