// Package domain holds the resource types stored by the API:
// parcels, users, and payments.
//
// Field names on the wire follow the shapes the frontend already
// consumes: parcels mix snake_case (created_by, payment_status) with
// camelCase timestamps (createdAt, paidAt).
package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Parcel payment states.
const (
	ParcelUnpaid = "unpaid"
	ParcelPaid   = "paid"
)

// Parcel delivery states. A parcel enters the delivery pipeline as
// "pending" once its payment is recorded.
const (
	DeliveryPending   = "pending"
	DeliveryInTransit = "in_transit"
	DeliveryDelivered = "delivered"
)

// Parcel is a shipment record. Beyond the server-managed columns it
// carries an open attribute bag of client-supplied fields (weight,
// receiver address, parcel type, ...) stored as JSONB.
type Parcel struct {
	ID             uuid.UUID      `json:"id"`
	CreatedBy      string         `json:"created_by"`
	PaymentStatus  string         `json:"payment_status"`
	DeliveryStatus string         `json:"delivery_status"`
	Attributes     map[string]any `json:"-"`
	CreatedAt      time.Time      `json:"createdAt"`
	PaidAt         *time.Time     `json:"paidAt,omitempty"`
}

// parcelReserved lists document keys owned by the server. Client
// attributes under these names are discarded at intake so they can
// never shadow server-assigned values.
var parcelReserved = map[string]struct{}{
	"id":              {},
	"created_by":      {},
	"payment_status":  {},
	"delivery_status": {},
	"createdAt":       {},
	"paidAt":          {},
}

// IsReservedParcelKey reports whether key is server-assigned on parcels.
func IsReservedParcelKey(key string) bool {
	_, ok := parcelReserved[key]
	return ok
}

// MarshalJSON flattens the attribute bag into the top-level document,
// matching the flat record shape clients expect. Server-assigned keys
// always win over attributes.
func (p Parcel) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(p.Attributes)+6)
	for k, v := range p.Attributes {
		if IsReservedParcelKey(k) {
			continue
		}
		doc[k] = v
	}

	doc["id"] = p.ID
	doc["created_by"] = p.CreatedBy
	doc["payment_status"] = p.PaymentStatus
	doc["delivery_status"] = p.DeliveryStatus
	doc["createdAt"] = p.CreatedAt
	if p.PaidAt != nil {
		doc["paidAt"] = p.PaidAt
	}

	return json.Marshal(doc)
}
