package errs

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsCarryStableKindsAndStatuses(t *testing.T) {
	cases := []struct {
		err    *HTTPError
		kind   string
		status int
	}{
		{NewValidationError("bad", nil), KindValidation, http.StatusBadRequest},
		{NewNotFoundError("missing"), KindNotFound, http.StatusNotFound},
		{NewForbiddenError("no"), KindForbidden, http.StatusForbidden},
		{NewStoreUnavailableError("down"), KindStoreUnavailable, http.StatusInternalServerError},
		{NewGatewayError("upstream"), KindGatewayError, http.StatusBadGateway},
		{NewTimeoutError("slow"), KindTimeout, http.StatusGatewayTimeout},
		{NewReconciliationPendingError("pending"), KindReconciliationPending, http.StatusAccepted},
	}

	for _, tc := range cases {
		t.Run(tc.kind, func(t *testing.T) {
			assert.Equal(t, tc.kind, tc.err.Kind)
			assert.Equal(t, tc.status, tc.err.Status)
		})
	}
}

func TestHTTPErrorJSONEnvelope(t *testing.T) {
	err := NewValidationError("Validation failed", []FieldError{
		{Field: "email", Error: "must be a valid email address"},
	})

	raw, jsonErr := json.Marshal(err)
	require.NoError(t, jsonErr)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))

	assert.Equal(t, "VALIDATION_ERROR", doc["kind"])
	assert.Equal(t, "Validation failed", doc["error"])
	assert.Equal(t, float64(http.StatusBadRequest), doc["status"])
	require.Len(t, doc["errors"], 1)
}

func TestHTTPErrorOmitsEmptyFieldErrors(t *testing.T) {
	raw, err := json.Marshal(NewNotFoundError("Parcel not found"))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.NotContains(t, doc, "errors")
}

func TestWithMessageKeepsKindAndStatus(t *testing.T) {
	base := NewNotFoundError("Record not found")
	specific := base.WithMessage("Parcel not found")

	assert.Equal(t, base.Kind, specific.Kind)
	assert.Equal(t, base.Status, specific.Status)
	assert.Equal(t, "Parcel not found", specific.Message)
	assert.Equal(t, "Record not found", base.Message, "the original must not be mutated")
}

func TestErrorAndIs(t *testing.T) {
	err := NewForbiddenError("Listing all records requires an admin key")
	assert.Equal(t, "Listing all records requires an admin key", err.Error())
	assert.True(t, err.Is(NewNotFoundError("x")))
	assert.False(t, err.Is(fmt.Errorf("plain")))
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", MakeUpperCaseWithUnderscores("Internal Server Error"))
}
