package service

import (
	"context"
	"errors"
	"time"

	"github.com/profasthq/profast-api/internal/domain"
	"github.com/profasthq/profast-api/internal/errs"
	"github.com/profasthq/profast-api/internal/lib/job"
	"github.com/profasthq/profast-api/internal/lib/payment"
	"github.com/profasthq/profast-api/internal/repository"
	"github.com/profasthq/profast-api/internal/server"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// PaymentStore is the slice of the payment repository the service
// needs.
type PaymentStore interface {
	List(ctx context.Context, q repository.ListQuery) ([]domain.Payment, error)
	Insert(ctx context.Context, p *domain.Payment) error
	ConfirmWithParcelUpdate(ctx context.Context, paymentID, parcelID uuid.UUID, paidAt time.Time) error
	MarkReconciliationPending(ctx context.Context, id uuid.UUID) error
}

// taskEnqueuer matches asynq.Client's Enqueue method so tests can
// capture enqueued tasks.
type taskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// PaymentService records payments, coordinates the parcel status
// side effect, and fronts the payment gateway for intent creation.
type PaymentService struct {
	payments PaymentStore
	parcels  ParcelStore
	intents  payment.IntentClient
	queue    taskEnqueuer
	currency string
	logger   *zerolog.Logger
}

func NewPaymentService(s *server.Server, repos *repository.Repositories, intents payment.IntentClient) *PaymentService {
	return &PaymentService{
		payments: repos.Payments,
		parcels:  repos.Parcels,
		intents:  intents,
		queue:    s.Job.Client,
		currency: s.Config.Payment.Currency,
		logger:   s.Logger,
	}
}

// List returns payments newest-first, filtered by payer email when
// one is given.
func (s *PaymentService) List(ctx context.Context, q repository.ListQuery) ([]domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	return s.payments.List(ctx, q)
}

// RecordResult is the outcome of recording a payment. Reconciling is
// set when the payment row landed but the parcel update did not: the
// payment is flagged and a background job will finish the update.
type RecordResult struct {
	Payment     *domain.Payment
	Reconciling bool
}

// Record stores a payment and transitions the referenced parcel to
// paid/pending-delivery.
//
// The write sequence:
//  1. verify the parcel exists (a payment must reference a real
//     parcel; unknown and malformed parcel ids are NotFound)
//  2. insert the payment as "pending", stamped paidAt = now
//  3. in one transaction, mark the parcel paid and the payment
//     confirmed
//
// If step 3 fails after step 2 succeeded, the payment is not silently
// reported as complete: it is flagged reconciliation_pending, a
// reconcile task is enqueued, and the result carries Reconciling so
// the handler answers 202 instead of 200. Success additionally
// enqueues the receipt email.
func (s *PaymentService) Record(ctx context.Context, rawParcelID, userEmail string, amountCents int64) (*RecordResult, error) {
	parcelID, err := uuid.Parse(rawParcelID)
	if err != nil {
		return nil, errs.NewNotFoundError("Parcel not found")
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	if _, err := s.parcels.GetByID(ctx, parcelID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errs.NewNotFoundError("Parcel not found")
		}
		return nil, err
	}

	pay := &domain.Payment{
		ID:          uuid.New(),
		ParcelID:    parcelID,
		UserEmail:   userEmail,
		AmountCents: amountCents,
		Status:      domain.PaymentPending,
		PaidAt:      time.Now().UTC(),
	}

	if err := s.payments.Insert(ctx, pay); err != nil {
		return nil, err
	}

	if err := s.payments.ConfirmWithParcelUpdate(ctx, pay.ID, parcelID, pay.PaidAt); err != nil {
		return s.flagForReconciliation(pay, err), nil
	}

	pay.Status = domain.PaymentConfirmed

	s.logger.Info().
		Str("payment_id", pay.ID.String()).
		Str("parcel_id", parcelID.String()).
		Int64("amount_cents", amountCents).
		Msg("recorded payment")

	s.enqueueReceipt(pay)

	return &RecordResult{Payment: pay}, nil
}

// flagForReconciliation parks a payment whose parcel update failed.
// The result always reports Reconciling; even if the status flip or
// the enqueue fails too, the caller must not see success.
func (s *PaymentService) flagForReconciliation(pay *domain.Payment, cause error) *RecordResult {
	s.logger.Error().
		Err(cause).
		Str("payment_id", pay.ID.String()).
		Str("parcel_id", pay.ParcelID.String()).
		Msg("parcel update failed after payment insert, flagging for reconciliation")

	// Detach from the request context: the flag must be written even
	// if the client goes away.
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	if err := s.payments.MarkReconciliationPending(ctx, pay.ID); err != nil {
		s.logger.Error().Err(err).
			Str("payment_id", pay.ID.String()).
			Msg("failed to flag payment for reconciliation")
	} else {
		pay.Status = domain.PaymentReconciliationPending
	}

	task, err := job.NewReconcilePaymentTask(pay.ID)
	if err == nil {
		_, err = s.queue.Enqueue(task)
	}
	if err != nil {
		s.logger.Error().Err(err).
			Str("payment_id", pay.ID.String()).
			Msg("failed to enqueue reconcile task")
	}

	return &RecordResult{Payment: pay, Reconciling: true}
}

// enqueueReceipt queues the receipt email for a confirmed payment.
// Best-effort: a lost receipt never fails the payment.
func (s *PaymentService) enqueueReceipt(pay *domain.Payment) {
	task, err := job.NewReceiptEmailTask(pay.UserEmail, pay.ParcelID.String(), pay.AmountCents)
	if err == nil {
		_, err = s.queue.Enqueue(task)
	}
	if err != nil {
		s.logger.Error().Err(err).
			Str("payment_id", pay.ID.String()).
			Msg("failed to enqueue receipt email")
	}
}

// CreateIntent asks the payment gateway for a payment intent and
// returns its client secret. Gateway failures surface as
// GATEWAY_ERROR with the gateway's message.
func (s *PaymentService) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, gatewayTimeout)
	defer cancel()

	clientSecret, err := s.intents.CreateIntent(ctx, amountCents, s.currency)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", errs.NewTimeoutError("The payment gateway did not respond in time")
		}
		return "", errs.NewGatewayError(err.Error())
	}

	return clientSecret, nil
}
