// Package logger configures the application's logging.
//
// It uses zerolog for structured logging: a human-friendly console
// writer in development, plain JSON everywhere else. Request-scoped
// child loggers are derived from the logger built here by the
// middleware context enhancer.
package logger

import (
	"os"

	"github.com/profasthq/profast-api/internal/config"
	"github.com/rs/zerolog"
)

// New builds the application's root logger from config.
//
// Fields attached here (service, env) appear on every log line,
// including request logs and background job logs.
func New(cfg *config.Config) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs

	var logger zerolog.Logger
	if cfg.IsDevelopment() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	return logger.With().
		Timestamp().
		Str("service", "profast-api").
		Str("env", cfg.Primary.Env).
		Logger()
}
