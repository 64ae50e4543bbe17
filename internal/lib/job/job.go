// Package job provides background job processing using Asynq.
//
// Asynq is a Redis-backed job queue:
//   - the service layer enqueues tasks (producer) via asynq.Client
//   - a worker server processes them (consumer) via asynq.Server
//
// Two task types exist: payment reconciliation (retrying the parcel
// status update for a payment whose two-step write failed halfway)
// and receipt email delivery.
package job

import (
	"github.com/profasthq/profast-api/internal/config"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// JobService holds the Asynq client (enqueue) and server (worker
// execution) plus the dependencies its handlers need.
type JobService struct {
	// Client is used to enqueue tasks into Redis.
	Client *asynq.Client

	server *asynq.Server
	logger *zerolog.Logger

	// Handler dependencies, wired by InitHandlers before Start.
	mailer     Mailer
	reconciler Reconciler
}

// NewJobService creates a JobService configured to use Redis from cfg.
//
// Queue weights give reconciliation most of the worker share: a stuck
// payment is client-visible state, a late receipt email is not.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	client := asynq.NewClient(redisOpt)

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6, // payment reconciliation
				"default":  3, // receipt emails
				"low":      1,
			},
		},
	)

	return &JobService{
		Client: client,
		server: server,
		logger: logger,
	}
}

// Start registers task handlers and starts the background worker
// server. InitHandlers must have been called first; workers would
// otherwise process tasks against nil dependencies.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()

	mux.HandleFunc(TaskReconcilePayment, j.handleReconcilePaymentTask)
	mux.HandleFunc(TaskReceiptEmail, j.handleReceiptEmailTask)

	j.logger.Info().Msg("starting background job server")

	return j.server.Start(mux)
}

// Stop gracefully stops the job server and closes client resources.
func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	j.Client.Close()
}
