package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/profasthq/profast-api/internal/domain"
	"github.com/profasthq/profast-api/internal/errs"
	"github.com/profasthq/profast-api/internal/lib/job"
	"github.com/profasthq/profast-api/internal/repository"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPaymentStore struct {
	payments   []domain.Payment
	lastQuery  repository.ListQuery
	inserted   []domain.Payment
	confirmed  []uuid.UUID
	confirmErr error
	flagged    []uuid.UUID
	flagErr    error
}

func (s *stubPaymentStore) List(ctx context.Context, q repository.ListQuery) ([]domain.Payment, error) {
	s.lastQuery = q
	return s.payments, nil
}

func (s *stubPaymentStore) Insert(ctx context.Context, p *domain.Payment) error {
	s.inserted = append(s.inserted, *p)
	return nil
}

func (s *stubPaymentStore) ConfirmWithParcelUpdate(ctx context.Context, paymentID, parcelID uuid.UUID, paidAt time.Time) error {
	if s.confirmErr != nil {
		return s.confirmErr
	}
	s.confirmed = append(s.confirmed, paymentID)
	return nil
}

func (s *stubPaymentStore) MarkReconciliationPending(ctx context.Context, id uuid.UUID) error {
	if s.flagErr != nil {
		return s.flagErr
	}
	s.flagged = append(s.flagged, id)
	return nil
}

type stubQueue struct {
	tasks      []*asynq.Task
	enqueueErr error
}

func (s *stubQueue) Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if s.enqueueErr != nil {
		return nil, s.enqueueErr
	}
	s.tasks = append(s.tasks, task)
	return &asynq.TaskInfo{}, nil
}

func (s *stubQueue) taskTypes() []string {
	types := make([]string, 0, len(s.tasks))
	for _, task := range s.tasks {
		types = append(types, task.Type())
	}
	return types
}

type stubIntentClient struct {
	secret       string
	err          error
	lastAmount   int64
	lastCurrency string
}

func (s *stubIntentClient) CreateIntent(ctx context.Context, amountCents int64, currency string) (string, error) {
	s.lastAmount = amountCents
	s.lastCurrency = currency
	if s.err != nil {
		return "", s.err
	}
	return s.secret, nil
}

type paymentFixture struct {
	svc      *PaymentService
	payments *stubPaymentStore
	parcels  *stubParcelStore
	queue    *stubQueue
	intents  *stubIntentClient
	parcelID uuid.UUID
}

func newPaymentFixture() *paymentFixture {
	logger := zerolog.Nop()

	parcels := newStubParcelStore()
	parcelID := uuid.New()
	parcels.parcels[parcelID] = &domain.Parcel{
		ID:            parcelID,
		CreatedBy:     "sender@example.com",
		PaymentStatus: domain.ParcelUnpaid,
	}

	payments := &stubPaymentStore{}
	queue := &stubQueue{}
	intents := &stubIntentClient{secret: "pi_secret_123"}

	return &paymentFixture{
		svc: &PaymentService{
			payments: payments,
			parcels:  parcels,
			intents:  intents,
			queue:    queue,
			currency: "usd",
			logger:   &logger,
		},
		payments: payments,
		parcels:  parcels,
		queue:    queue,
		intents:  intents,
		parcelID: parcelID,
	}
}

func TestRecordPaymentConfirmsAndEnqueuesReceipt(t *testing.T) {
	f := newPaymentFixture()

	result, err := f.svc.Record(context.Background(), f.parcelID.String(), "payer@example.com", 1500)
	require.NoError(t, err)

	assert.False(t, result.Reconciling)
	assert.Equal(t, domain.PaymentConfirmed, result.Payment.Status)
	assert.Equal(t, f.parcelID, result.Payment.ParcelID)
	assert.Equal(t, int64(1500), result.Payment.AmountCents)

	require.Len(t, f.payments.inserted, 1)
	assert.Equal(t, domain.PaymentPending, f.payments.inserted[0].Status,
		"payment must be inserted pending, confirmation happens with the parcel update")
	require.Len(t, f.payments.confirmed, 1)
	assert.Equal(t, result.Payment.ID, f.payments.confirmed[0])

	assert.Equal(t, []string{job.TaskReceiptEmail}, f.queue.taskTypes())
	assert.Empty(t, f.payments.flagged)
}

func TestRecordPaymentFlagsReconciliationWhenParcelUpdateFails(t *testing.T) {
	f := newPaymentFixture()
	f.payments.confirmErr = errors.New("store connection lost")

	result, err := f.svc.Record(context.Background(), f.parcelID.String(), "payer@example.com", 1500)
	require.NoError(t, err, "a half-applied payment is reported, not failed")

	assert.True(t, result.Reconciling)
	assert.Equal(t, domain.PaymentReconciliationPending, result.Payment.Status)

	require.Len(t, f.payments.inserted, 1, "the payment row must survive the failed parcel update")
	require.Len(t, f.payments.flagged, 1)
	assert.Equal(t, result.Payment.ID, f.payments.flagged[0])

	assert.Equal(t, []string{job.TaskReconcilePayment}, f.queue.taskTypes())
}

func TestRecordPaymentReconcilingEvenWhenFlagWriteFails(t *testing.T) {
	f := newPaymentFixture()
	f.payments.confirmErr = errors.New("store connection lost")
	f.payments.flagErr = errors.New("still down")

	result, err := f.svc.Record(context.Background(), f.parcelID.String(), "payer@example.com", 1500)
	require.NoError(t, err)

	// The caller must never be told the payment fully succeeded.
	assert.True(t, result.Reconciling)
	assert.NotEqual(t, domain.PaymentConfirmed, result.Payment.Status)
}

func TestRecordPaymentUnknownParcelIsNotFound(t *testing.T) {
	f := newPaymentFixture()

	_, err := f.svc.Record(context.Background(), uuid.NewString(), "payer@example.com", 1500)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, errs.KindNotFound, httpErr.Kind)
	assert.Empty(t, f.payments.inserted, "nothing is written for a payment against a missing parcel")
}

func TestRecordPaymentMalformedParcelIDIsNotFound(t *testing.T) {
	f := newPaymentFixture()

	_, err := f.svc.Record(context.Background(), "not-a-uuid", "payer@example.com", 1500)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, errs.KindNotFound, httpErr.Kind)
	assert.Empty(t, f.payments.inserted)
}

func TestPaymentListPassesEmailFilter(t *testing.T) {
	f := newPaymentFixture()
	f.payments.payments = []domain.Payment{{UserEmail: "payer@example.com"}}

	payments, err := f.svc.List(context.Background(), repository.ListQuery{Email: "payer@example.com"})
	require.NoError(t, err)
	assert.Len(t, payments, 1)
	assert.Equal(t, "payer@example.com", f.payments.lastQuery.Email)
}

func TestCreateIntentReturnsClientSecret(t *testing.T) {
	f := newPaymentFixture()

	secret, err := f.svc.CreateIntent(context.Background(), 2500)
	require.NoError(t, err)

	assert.Equal(t, "pi_secret_123", secret)
	assert.Equal(t, int64(2500), f.intents.lastAmount)
	assert.Equal(t, "usd", f.intents.lastCurrency)
}

func TestCreateIntentGatewayFailureIsGatewayError(t *testing.T) {
	f := newPaymentFixture()
	f.intents.err = errors.New("Amount must convert to at least 50 cents")

	_, err := f.svc.CreateIntent(context.Background(), 1)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, errs.KindGatewayError, httpErr.Kind)
	assert.Equal(t, "Amount must convert to at least 50 cents", httpErr.Message)
}

func TestCreateIntentDeadlineIsTimeout(t *testing.T) {
	f := newPaymentFixture()
	f.intents.err = context.DeadlineExceeded

	_, err := f.svc.CreateIntent(context.Background(), 2500)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, errs.KindTimeout, httpErr.Kind)
}
