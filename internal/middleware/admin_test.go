package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/profasthq/profast-api/internal/config"
	"github.com/profasthq/profast-api/internal/errs"
	"github.com/profasthq/profast-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminTestMiddleware() *AdminMiddleware {
	return NewAdminMiddleware(&server.Server{
		Config: &config.Config{Admin: config.AdminConfig{APIKey: "sekrit"}},
	})
}

func runGate(t *testing.T, target string, headers map[string]string) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	gate := newAdminTestMiddleware().GateUnfiltered()
	return gate(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c)
}

func TestGateUnfilteredAllowsFilteredRequests(t *testing.T) {
	err := runGate(t, "/parcels?email=user@example.com", nil)
	assert.NoError(t, err)
}

func TestGateUnfilteredRejectsMissingKey(t *testing.T) {
	err := runGate(t, "/parcels", nil)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, errs.KindForbidden, httpErr.Kind)
	assert.Equal(t, http.StatusForbidden, httpErr.Status)
}

func TestGateUnfilteredRejectsWrongKey(t *testing.T) {
	err := runGate(t, "/payments", map[string]string{AdminKeyHeader: "guess"})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, errs.KindForbidden, httpErr.Kind)
}

func TestGateUnfilteredAllowsMatchingKey(t *testing.T) {
	err := runGate(t, "/payments", map[string]string{AdminKeyHeader: "sekrit"})
	assert.NoError(t, err)
}
