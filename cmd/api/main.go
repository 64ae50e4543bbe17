package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/profasthq/profast-api/internal/config"
	"github.com/profasthq/profast-api/internal/database"
	"github.com/profasthq/profast-api/internal/handler"
	"github.com/profasthq/profast-api/internal/lib/email"
	"github.com/profasthq/profast-api/internal/lib/payment"
	"github.com/profasthq/profast-api/internal/logger"
	"github.com/profasthq/profast-api/internal/middleware"
	"github.com/profasthq/profast-api/internal/repository"
	"github.com/profasthq/profast-api/internal/router"
	"github.com/profasthq/profast-api/internal/server"
	"github.com/profasthq/profast-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := database.Migrate(ctx, &log, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to run database migrations")
	}

	srv, err := server.New(cfg, &log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv.DB.Pool, srv.Logger)

	// Job handlers need the mailer and the payment repository, so they
	// are wired here rather than inside server.New.
	srv.Job.InitHandlers(email.NewClient(cfg, srv.Logger), repos.Payments)
	if err := srv.Job.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start background job server")
	}

	services, err := service.NewServices(srv, repos, payment.NewStripeClient(cfg, srv.Logger))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize services")
	}

	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	srv.SetupHTTPServer(router.Setup(srv, handlers, middlewares))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
		}
		log.Info().Msg("server stopped")

	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}
}
