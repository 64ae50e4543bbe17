package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParcelMarshalFlattensAttributes(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	p := Parcel{
		ID:             uuid.New(),
		CreatedBy:      "sender@example.com",
		PaymentStatus:  ParcelUnpaid,
		DeliveryStatus: DeliveryPending,
		Attributes: map[string]any{
			"weight":   2.5,
			"receiver": "Karim",
		},
		CreatedAt: created,
	}

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))

	assert.Equal(t, p.ID.String(), doc["id"])
	assert.Equal(t, "sender@example.com", doc["created_by"])
	assert.Equal(t, "unpaid", doc["payment_status"])
	assert.Equal(t, "pending", doc["delivery_status"])
	assert.Equal(t, 2.5, doc["weight"])
	assert.Equal(t, "Karim", doc["receiver"])
	assert.NotContains(t, doc, "paidAt", "unpaid parcels carry no paidAt")
	assert.NotContains(t, doc, "Attributes", "the bag itself must not appear nested")
}

func TestParcelMarshalServerFieldsWinOverAttributes(t *testing.T) {
	p := Parcel{
		ID:             uuid.New(),
		CreatedBy:      "real@example.com",
		PaymentStatus:  ParcelPaid,
		DeliveryStatus: DeliveryPending,
		Attributes: map[string]any{
			"payment_status": "unpaid",
			"created_by":     "spoof@example.com",
		},
		CreatedAt: time.Now().UTC(),
	}

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))

	assert.Equal(t, "paid", doc["payment_status"])
	assert.Equal(t, "real@example.com", doc["created_by"])
}

func TestIsReservedParcelKey(t *testing.T) {
	for _, key := range []string{"id", "created_by", "payment_status", "delivery_status", "createdAt", "paidAt"} {
		assert.True(t, IsReservedParcelKey(key), key)
	}
	assert.False(t, IsReservedParcelKey("weight"))
	assert.False(t, IsReservedParcelKey("receiver"))
}
