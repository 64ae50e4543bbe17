package job

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Task type names stored in Redis. Asynq routes tasks to handlers by
// these strings.
const (
	TaskReconcilePayment = "payment:reconcile"
	TaskReceiptEmail     = "email:receipt"
)

// ReconcilePaymentPayload identifies a payment stuck in
// reconciliation_pending whose parcel update must be retried.
type ReconcilePaymentPayload struct {
	PaymentID uuid.UUID `json:"payment_id"`
}

// NewReconcilePaymentTask constructs the reconciliation task for a
// stuck payment.
//
// Generous retries with Asynq's default exponential backoff: the
// usual cause is a transient store fault, and the payment row stays
// flagged until a retry lands, so giving up early just strands it.
func NewReconcilePaymentTask(paymentID uuid.UUID) (*asynq.Task, error) {
	payload, err := json.Marshal(ReconcilePaymentPayload{PaymentID: paymentID})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskReconcilePayment,
		payload,
		asynq.MaxRetry(10),
		asynq.Queue("critical"),
		asynq.Timeout(30*time.Second),
	), nil
}

// ReceiptEmailPayload is the JSON payload for the receipt email task.
type ReceiptEmailPayload struct {
	To          string `json:"to"`
	ParcelID    string `json:"parcel_id"`
	AmountCents int64  `json:"amount_cents"`
}

// NewReceiptEmailTask constructs the receipt email task for a
// recorded payment.
func NewReceiptEmailTask(to, parcelID string, amountCents int64) (*asynq.Task, error) {
	payload, err := json.Marshal(ReceiptEmailPayload{
		To:          to,
		ParcelID:    parcelID,
		AmountCents: amountCents,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskReceiptEmail,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
