package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/profasthq/profast-api/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testValidate = validator.New()

type signupPayload struct {
	Email  string `json:"email" validate:"required,email"`
	Amount int64  `json:"amount" validate:"required,gt=0"`
}

func (p *signupPayload) Validate() error {
	return testValidate.Struct(p)
}

func newJSONContext(t *testing.T, body string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidateAcceptsValidPayload(t *testing.T) {
	c := newJSONContext(t, `{"email":"a@example.com","amount":100}`)

	payload := new(signupPayload)
	require.NoError(t, BindAndValidate(c, payload))
	assert.Equal(t, "a@example.com", payload.Email)
	assert.Equal(t, int64(100), payload.Amount)
}

func TestBindAndValidateReportsFieldErrors(t *testing.T) {
	c := newJSONContext(t, `{"email":"not-an-email","amount":-5}`)

	err := BindAndValidate(c, new(signupPayload))
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, errs.KindValidation, httpErr.Kind)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)

	fields := make(map[string]string, len(httpErr.Errors))
	for _, fe := range httpErr.Errors {
		fields[fe.Field] = fe.Error
	}
	assert.Equal(t, "must be a valid email address", fields["email"])
	assert.Equal(t, "must be greater than 0", fields["amount"])
}

func TestBindAndValidateRejectsMalformedJSON(t *testing.T) {
	c := newJSONContext(t, `{"email":`)

	err := BindAndValidate(c, new(signupPayload))

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, errs.KindValidation, httpErr.Kind)
	assert.Equal(t, "Request body could not be parsed", httpErr.Message)
}

func TestExtractValidationErrorCustomErrors(t *testing.T) {
	msg, fieldErrors := extractValidationError(CustomValidationErrors{
		{Field: "amount", Message: "must be an integer number of cents"},
	})

	assert.Equal(t, "Validation failed", msg)
	require.Len(t, fieldErrors, 1)
	assert.Equal(t, "amount", fieldErrors[0].Field)
}
