// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"net/http"

	"github.com/profasthq/profast-api/internal/handler"
	"github.com/profasthq/profast-api/internal/middleware"
	"github.com/profasthq/profast-api/internal/server"
	"github.com/labstack/echo/v4"
)

// Setup builds the Echo instance: global middleware first, then the
// route tables. The returned router is handed to the HTTP server as
// its handler.
func Setup(s *server.Server, h *handler.Handlers, mw *middleware.Middlewares) *echo.Echo {
	r := echo.New()
	r.HideBanner = true
	r.HidePort = true

	r.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	// Order matters: recovery outermost, then request id so the
	// request-scoped logger and the access log both carry it.
	r.Use(mw.Global.Recover())
	r.Use(middleware.RequestID())
	r.Use(mw.ContextEnhancer.EnhanceContext())
	r.Use(mw.Global.RequestLogger())
	r.Use(mw.Global.CORS())
	r.Use(mw.Global.Secure())

	registerSystemRoutes(r, h)
	registerParcelRoutes(r, h, mw)
	registerUserRoutes(r, h)
	registerPaymentRoutes(r, h, mw)

	return r
}

func registerParcelRoutes(r *echo.Echo, h *handler.Handlers, mw *middleware.Middlewares) {
	r.GET("/parcels", handler.Handle(h.Parcels.Handler, h.Parcels.List, http.StatusOK,
		func() *handler.ListRequest { return new(handler.ListRequest) }),
		mw.Admin.GateUnfiltered())
	r.POST("/parcels", handler.Handle(h.Parcels.Handler, h.Parcels.Create, http.StatusCreated,
		func() *handler.CreateParcelRequest { return new(handler.CreateParcelRequest) }))
	r.GET("/parcels/:id", handler.Handle(h.Parcels.Handler, h.Parcels.Get, http.StatusOK,
		func() *handler.IDRequest { return new(handler.IDRequest) }))
	r.DELETE("/parcels/:id", handler.Handle(h.Parcels.Handler, h.Parcels.Delete, http.StatusOK,
		func() *handler.IDRequest { return new(handler.IDRequest) }))
}

func registerUserRoutes(r *echo.Echo, h *handler.Handlers) {
	r.POST("/users", h.Users.Register)
}

func registerPaymentRoutes(r *echo.Echo, h *handler.Handlers, mw *middleware.Middlewares) {
	r.GET("/payments", handler.Handle(h.Payments.Handler, h.Payments.List, http.StatusOK,
		func() *handler.ListRequest { return new(handler.ListRequest) }),
		mw.Admin.GateUnfiltered())
	r.POST("/payments", h.Payments.Record)
	r.POST("/create-payment-intent", handler.Handle(h.Payments.Handler, h.Payments.CreateIntent, http.StatusOK,
		func() *handler.CreateIntentRequest { return new(handler.CreateIntentRequest) }))
}
