package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateParcelRequestSplitsAttributeBag(t *testing.T) {
	body := `{
		"created_by": "sender@example.com",
		"weight": 2.5,
		"receiver": "Karim",
		"division": "Dhaka"
	}`

	req := new(CreateParcelRequest)
	require.NoError(t, json.Unmarshal([]byte(body), req))

	assert.Equal(t, "sender@example.com", req.CreatedBy)
	assert.Equal(t, 2.5, req.Attributes["weight"])
	assert.Equal(t, "Karim", req.Attributes["receiver"])
	assert.Equal(t, "Dhaka", req.Attributes["division"])
	assert.NotContains(t, req.Attributes, "created_by")
}

func TestCreateParcelRequestRequiresCreator(t *testing.T) {
	req := new(CreateParcelRequest)
	require.NoError(t, json.Unmarshal([]byte(`{"weight": 1}`), req))
	assert.Error(t, req.Validate())
}

func TestCreateParcelRequestRejectsNonEmailCreator(t *testing.T) {
	req := new(CreateParcelRequest)
	require.NoError(t, json.Unmarshal([]byte(`{"created_by": "nope"}`), req))
	assert.Error(t, req.Validate())
}

func TestListRequestAllowsEmptyEmail(t *testing.T) {
	req := &ListRequest{}
	assert.NoError(t, req.Validate())
}

func TestListRequestRejectsMalformedEmail(t *testing.T) {
	req := &ListRequest{Email: "not-an-email"}
	assert.Error(t, req.Validate())
}

func TestRecordPaymentRequestRejectsNonPositiveAmount(t *testing.T) {
	req := &RecordPaymentRequest{ParcelID: "some-id", Email: "a@example.com", Amount: 0}
	assert.Error(t, req.Validate())

	req.Amount = -100
	assert.Error(t, req.Validate())

	req.Amount = 100
	assert.NoError(t, req.Validate())
}

func TestCreateIntentRequestValidatesAmount(t *testing.T) {
	assert.Error(t, (&CreateIntentRequest{Amount: 0}).Validate())
	assert.NoError(t, (&CreateIntentRequest{Amount: 500}).Validate())
}
