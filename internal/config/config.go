// Package config manages environment variables.
//
// It reads variables from the process environment (optionally seeded
// from a `.env` file), loads them into structured Go types, and
// validates that required values are present so they can be reused
// across the application runtime.
//
// Env vars use the PROFAST_ prefix and dot notation for nesting:
//
//	PROFAST_SERVER.PORT                -> Config.Server.Port
//	PROFAST_DATABASE.HOST              -> Config.Database.Host
//	PROFAST_PAYMENT.STRIPE_SECRET_KEY  -> Config.Payment.StripeSecretKey
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file into the process env
	// before anything reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// Config is the root configuration object for the application.
//
// `koanf` tags define where values are mapped from, `validate` tags
// enforce presence at startup so the app fails fast on bad config.
type Config struct {
	Primary  Primary        `koanf:"primary" validate:"required"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Redis    RedisConfig    `koanf:"redis" validate:"required"`
	Payment  PaymentConfig  `koanf:"payment" validate:"required"`
	Mail     MailConfig     `koanf:"mail" validate:"required"`
	Admin    AdminConfig    `koanf:"admin" validate:"required"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are stored as seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig contains Redis connection details ("host:port").
// Redis backs the asynq job queue.
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// PaymentConfig stores payment-gateway credentials and defaults.
type PaymentConfig struct {
	StripeSecretKey string `koanf:"stripe_secret_key" validate:"required"`
	Currency        string `koanf:"currency"`
}

// MailConfig stores the Resend API key and sender identity used for
// payment receipt emails.
type MailConfig struct {
	ResendAPIKey string `koanf:"resend_api_key" validate:"required"`
	FromName     string `koanf:"from_name"`
	FromAddress  string `koanf:"from_address" validate:"required"`
}

// AdminConfig stores the static key that gates unfiltered list access.
//
// Listing parcels or payments without an email filter returns every
// record in the store, so that path requires X-Admin-Key to match.
type AdminConfig struct {
	APIKey string `koanf:"api_key" validate:"required"`
}

// Load reads configuration from environment variables, unmarshals it
// into Config, validates it, and applies defaults.
func Load() (*Config, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	k := koanf.New(".")

	// Only env vars carrying the PROFAST_ prefix are read; the prefix is
	// stripped and the remainder lowercased to produce koanf key paths.
	err := k.Load(env.Provider("PROFAST_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "PROFAST_"))
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not load initial env variables.")
	}

	mainConfig := &Config{}

	if err := k.Unmarshal("", mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("Could not unmarshal main config.")
	}

	validate := validator.New()

	if err := validate.Struct(mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("Config validation failed.")
	}

	// Default intent currency follows the payment gateway's default.
	if mainConfig.Payment.Currency == "" {
		mainConfig.Payment.Currency = "usd"
	}

	if mainConfig.Mail.FromName == "" {
		mainConfig.Mail.FromName = "ProFast"
	}

	return mainConfig, nil
}

// IsDevelopment reports whether the app runs in a development environment.
func (c *Config) IsDevelopment() bool {
	return c.Primary.Env == "development" || c.Primary.Env == "local"
}
