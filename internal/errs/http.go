package errs

import (
	"net/http"
)

// NewValidationError creates a 400 Bad Request HTTPError.
//
// Parameters:
//   - message: text to send to the client
//   - errors: optional slice of field errors (validation errors)
//
// Validation failures are reported before the store is touched.
func NewValidationError(message string, errors []FieldError) *HTTPError {
	return &HTTPError{
		Kind:    KindValidation,
		Message: message,
		Status:  http.StatusBadRequest,
		Errors:  errors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
//
// Malformed record identifiers map here too: a key that cannot exist
// in the store is indistinguishable from a missing record.
func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{
		Kind:    KindNotFound,
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewForbiddenError creates a 403 Forbidden HTTPError.
func NewForbiddenError(message string) *HTTPError {
	return &HTTPError{
		Kind:    KindForbidden,
		Message: message,
		Status:  http.StatusForbidden,
	}
}

// NewStoreUnavailableError creates a 500 HTTPError for failures
// reaching or writing the document store.
func NewStoreUnavailableError(message string) *HTTPError {
	return &HTTPError{
		Kind:    KindStoreUnavailable,
		Message: message,
		Status:  http.StatusInternalServerError,
	}
}

// NewGatewayError creates a 502 HTTPError surfaced from the external
// payment gateway.
func NewGatewayError(message string) *HTTPError {
	return &HTTPError{
		Kind:    KindGatewayError,
		Message: message,
		Status:  http.StatusBadGateway,
	}
}

// NewTimeoutError creates a 504 HTTPError for store or gateway calls
// that exceeded their deadline.
func NewTimeoutError(message string) *HTTPError {
	return &HTTPError{
		Kind:    KindTimeout,
		Message: message,
		Status:  http.StatusGatewayTimeout,
	}
}

// NewReconciliationPendingError creates a 202 HTTPError for the
// payment-then-parcel-update partial failure: the payment record was
// written but the parcel update did not land, and a background
// reconciler will retry it. Distinct from a generic 500 so callers can
// tell "your payment is recorded, status will follow" from "retry".
func NewReconciliationPendingError(message string) *HTTPError {
	return &HTTPError{
		Kind:    KindReconciliationPending,
		Message: message,
		Status:  http.StatusAccepted,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is the generic status text, not the real internal error
// message; clients don't need stack traces.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Kind:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}
