// Package database contains the logic for establishing connections
// to the PostgreSQL database.
//
// It handles:
//   - building a DSN from config
//   - creating a pgx connection pool (pgxpool)
//   - wiring query tracing/logging (pgx tracelog + zerolog)
//   - running schema migrations (tern, see migrator.go)
package database

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/profasthq/profast-api/internal/config"
	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// Database wraps the pgx connection pool and a logger.
//
// Pool is the shared connection pool: opened once at startup and
// reused by every request; the pool manages per-query acquisition.
type Database struct {
	Pool *pgxpool.Pool
	log  *zerolog.Logger
}

// New creates the connection pool from config and verifies
// connectivity with a ping.
func New(cfg *config.Config, logger *zerolog.Logger) (*Database, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolConfig.MinConns = int32(cfg.Database.MaxIdleConns)
	poolConfig.MaxConnLifetime = time.Duration(cfg.Database.ConnMaxLifetime) * time.Minute
	poolConfig.MaxConnIdleTime = time.Duration(cfg.Database.ConnMaxIdleTime) * time.Minute

	// Query logging through tracelog; zerolog is the sink. LogLevelWarn
	// keeps per-query noise out of production logs while still
	// surfacing slow/failed statements.
	level := tracelog.LogLevelWarn
	if cfg.IsDevelopment() {
		level = tracelog.LogLevelDebug
	}
	poolConfig.ConnConfig.Tracer = &tracelog.TraceLog{
		Logger:   pgxzero.NewLogger(*logger),
		LogLevel: level,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("creating database pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	logger.Info().
		Str("host", cfg.Database.Host).
		Str("database", cfg.Database.Name).
		Msg("connected to database")

	return &Database{Pool: pool, log: logger}, nil
}

// Close releases the connection pool.
func (db *Database) Close() error {
	db.Pool.Close()
	db.log.Info().Msg("closed database pool")
	return nil
}

// dsn builds a postgres:// connection string from config, URL-encoding
// the password to keep the DSN valid.
func dsn(cfg *config.Config) string {
	hostPort := net.JoinHostPort(cfg.Database.Host, strconv.Itoa(cfg.Database.Port))

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		cfg.Database.User,
		url.QueryEscape(cfg.Database.Password),
		hostPort,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)
}
