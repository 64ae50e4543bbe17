package job

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReconciler struct {
	reconciled []uuid.UUID
	err        error
}

func (s *stubReconciler) Reconcile(ctx context.Context, paymentID uuid.UUID) error {
	if s.err != nil {
		return s.err
	}
	s.reconciled = append(s.reconciled, paymentID)
	return nil
}

type stubMailer struct {
	sent []string
	err  error
}

func (s *stubMailer) SendPaymentReceipt(to, parcelID string, amountCents int64) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, to)
	return nil
}

func newJobServiceForTest(mailer Mailer, reconciler Reconciler) *JobService {
	logger := zerolog.Nop()
	j := &JobService{logger: &logger}
	j.InitHandlers(mailer, reconciler)
	return j
}

func TestReconcileTaskConfirmsStuckPayment(t *testing.T) {
	reconciler := &stubReconciler{}
	j := newJobServiceForTest(&stubMailer{}, reconciler)

	paymentID := uuid.New()
	task, err := NewReconcilePaymentTask(paymentID)
	require.NoError(t, err)
	assert.Equal(t, TaskReconcilePayment, task.Type())

	require.NoError(t, j.handleReconcilePaymentTask(context.Background(), task))
	assert.Equal(t, []uuid.UUID{paymentID}, reconciler.reconciled)
}

func TestReconcileTaskReturnsErrorForRetry(t *testing.T) {
	reconciler := &stubReconciler{err: errors.New("parcel still unreachable")}
	j := newJobServiceForTest(&stubMailer{}, reconciler)

	task, err := NewReconcilePaymentTask(uuid.New())
	require.NoError(t, err)

	assert.Error(t, j.handleReconcilePaymentTask(context.Background(), task),
		"a failed reconcile must propagate so asynq schedules a retry")
}

func TestReconcileTaskRejectsGarbagePayload(t *testing.T) {
	j := newJobServiceForTest(&stubMailer{}, &stubReconciler{})

	task := asynq.NewTask(TaskReconcilePayment, []byte("not json"))
	assert.Error(t, j.handleReconcilePaymentTask(context.Background(), task))
}

func TestReceiptEmailTaskSendsReceipt(t *testing.T) {
	mailer := &stubMailer{}
	j := newJobServiceForTest(mailer, &stubReconciler{})

	task, err := NewReceiptEmailTask("payer@example.com", uuid.NewString(), 1500)
	require.NoError(t, err)
	assert.Equal(t, TaskReceiptEmail, task.Type())

	require.NoError(t, j.handleReceiptEmailTask(context.Background(), task))
	assert.Equal(t, []string{"payer@example.com"}, mailer.sent)
}
