package domain

import (
	"time"

	"github.com/google/uuid"
)

// Payment lifecycle states.
//
// A payment is inserted as "pending", flipped to "confirmed" in the
// same transaction that marks its parcel paid, and parked as
// "reconciliation_pending" when that parcel update fails after the
// payment row landed. The background reconciler moves stuck payments
// to "confirmed".
const (
	PaymentPending               = "pending"
	PaymentConfirmed             = "confirmed"
	PaymentReconciliationPending = "reconciliation_pending"
)

// Payment records a completed checkout for a parcel. Amounts are
// integer cents. Payments are never mutated after confirmation and
// never deleted.
type Payment struct {
	ID          uuid.UUID `json:"id"`
	ParcelID    uuid.UUID `json:"parcelId"`
	UserEmail   string    `json:"userEmail"`
	AmountCents int64     `json:"amount"`
	Status      string    `json:"status"`
	PaidAt      time.Time `json:"paidAt"`
}
