package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/profasthq/profast-api/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler reports process liveness and dependency health.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{Handler: NewHandler(s)}
}

// Root handles GET /. It answers as soon as the process serves HTTP,
// without touching any dependency, so orchestrators can tell a hung
// process from a degraded one.
func (h *HealthHandler) Root(c echo.Context) error {
	return c.String(http.StatusOK, "ProFast delivery API")
}

// CheckHealth handles GET /status. It pings the document store and
// redis and reports per-dependency state; any failing dependency turns
// the overall answer into a 503.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	status := http.StatusOK
	checks := map[string]string{
		"database": "ok",
		"redis":    "ok",
	}

	if err := h.server.DB.Pool.Ping(ctx); err != nil {
		checks["database"] = err.Error()
		status = http.StatusServiceUnavailable
	}

	if err := h.server.Redis.Ping(ctx).Err(); err != nil {
		checks["redis"] = err.Error()
		status = http.StatusServiceUnavailable
	}

	overall := "ok"
	if status != http.StatusOK {
		overall = "degraded"
	}

	return c.JSON(status, map[string]any{
		"status": overall,
		"checks": checks,
	})
}
