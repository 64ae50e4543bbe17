package errs

import "strings"

// Error kinds recognized by the API. These are part of the wire
// contract: clients switch on them, so values are stable.
const (
	KindValidation            = "VALIDATION_ERROR"
	KindNotFound              = "NOT_FOUND"
	KindForbidden             = "FORBIDDEN"
	KindStoreUnavailable      = "STORE_UNAVAILABLE"
	KindGatewayError          = "GATEWAY_ERROR"
	KindTimeout               = "TIMEOUT"
	KindReconciliationPending = "RECONCILIATION_PENDING"
)

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "amount", "error": "must be greater than 0" }
type FieldError struct {
	// Field is the field name/key the error relates to (e.g. "email").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// It implements the `error` interface via Error() and is designed to
// be serialized directly to JSON:
//   - Kind: machine-friendly error code (e.g. "NOT_FOUND").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Errors: list of per-field errors (validation).
type HTTPError struct {
	Kind    string `json:"kind"`
	Message string `json:"error"`
	Status  int    `json:"status"`

	// Errors holds field-level validation errors, typically for
	// request payloads.
	Errors []FieldError `json:"errors,omitempty"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is customizes how errors.Is treats HTTPError: any two *HTTPError
// values match by type, not by field equality.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Kind:    e.Kind,
		Message: message,
		Status:  e.Status,
		Errors:  e.Errors,
	}
}

// MakeUpperCaseWithUnderscores converts a string into an
// UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
//
// Used to derive stable kinds from HTTP status text for errors that
// originate outside this package (e.g. router-level 404s).
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
