package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Reconciler retries the parcel update for a payment stuck in
// reconciliation_pending and confirms it. Implemented by
// repository.PaymentRepository.
type Reconciler interface {
	Reconcile(ctx context.Context, paymentID uuid.UUID) error
}

// Mailer sends payment receipts. Implemented by email.Client.
type Mailer interface {
	SendPaymentReceipt(to, parcelID string, amountCents int64) error
}

// InitHandlers wires the dependencies job handlers need. Must run
// before Start.
func (j *JobService) InitHandlers(mailer Mailer, reconciler Reconciler) {
	j.mailer = mailer
	j.reconciler = reconciler
}

// handleReconcilePaymentTask retries the parcel status update for a
// stuck payment. Returning an error makes Asynq schedule a retry, so
// transient store faults resolve on a later attempt.
func (j *JobService) handleReconcilePaymentTask(ctx context.Context, t *asynq.Task) error {
	var p ReconcilePaymentPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal reconcile payload: %w", err)
	}

	j.logger.Info().
		Str("payment_id", p.PaymentID.String()).
		Msg("processing payment reconciliation task")

	if err := j.reconciler.Reconcile(ctx, p.PaymentID); err != nil {
		j.logger.Error().
			Str("payment_id", p.PaymentID.String()).
			Err(err).
			Msg("payment reconciliation failed, will retry")
		return err
	}

	j.logger.Info().
		Str("payment_id", p.PaymentID.String()).
		Msg("payment reconciled")

	return nil
}

// handleReceiptEmailTask sends the payment receipt email.
func (j *JobService) handleReceiptEmailTask(ctx context.Context, t *asynq.Task) error {
	var p ReceiptEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal receipt email payload: %w", err)
	}

	j.logger.Info().
		Str("to", p.To).
		Str("parcel_id", p.ParcelID).
		Msg("processing receipt email task")

	if err := j.mailer.SendPaymentReceipt(p.To, p.ParcelID, p.AmountCents); err != nil {
		j.logger.Error().
			Str("to", p.To).
			Err(err).
			Msg("failed to send receipt email")
		return err
	}

	return nil
}
