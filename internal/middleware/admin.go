package middleware

import (
	"crypto/subtle"

	"github.com/profasthq/profast-api/internal/errs"
	"github.com/profasthq/profast-api/internal/server"
	"github.com/labstack/echo/v4"
)

// AdminKeyHeader carries the static admin key that authorizes
// unfiltered list access.
const AdminKeyHeader = "X-Admin-Key"

// AdminMiddleware gates the dangerous default of list endpoints:
// without an email filter they return every record in the store, so
// that path requires the admin key. Filtered requests pass through
// untouched.
type AdminMiddleware struct {
	server *server.Server
}

// NewAdminMiddleware constructs an AdminMiddleware.
func NewAdminMiddleware(s *server.Server) *AdminMiddleware {
	return &AdminMiddleware{server: s}
}

// GateUnfiltered returns an Echo middleware for list routes. Requests
// carrying an `email` query parameter proceed; requests without one
// must present a matching X-Admin-Key header or receive 403.
func (a *AdminMiddleware) GateUnfiltered() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.QueryParam("email") != "" {
				return next(c)
			}

			key := c.Request().Header.Get(AdminKeyHeader)
			if subtle.ConstantTimeCompare([]byte(key), []byte(a.server.Config.Admin.APIKey)) != 1 {
				GetLogger(c).Warn().
					Str("path", c.Path()).
					Msg("unfiltered list request without valid admin key")
				return errs.NewForbiddenError("Listing all records requires an admin key")
			}

			return next(c)
		}
	}
}
