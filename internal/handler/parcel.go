package handler

import (
	"github.com/profasthq/profast-api/internal/domain"
	"github.com/profasthq/profast-api/internal/repository"
	"github.com/profasthq/profast-api/internal/server"
	"github.com/profasthq/profast-api/internal/service"
	"github.com/labstack/echo/v4"
)

// ParcelHandler exposes parcel CRUD endpoints.
type ParcelHandler struct {
	Handler
	parcels *service.ParcelService
}

func NewParcelHandler(s *server.Server, services *service.Services) *ParcelHandler {
	return &ParcelHandler{
		Handler: NewHandler(s),
		parcels: services.Parcels,
	}
}

// List handles GET /parcels: newest-first, optionally filtered by
// creator email. The unfiltered case is admin-gated in middleware.
func (h *ParcelHandler) List(c echo.Context, req *ListRequest) ([]domain.Parcel, error) {
	return h.parcels.List(c.Request().Context(), repository.ListQuery{Email: req.Email})
}

// Create handles POST /parcels: stores the submitted document and
// answers 201 with the generated id and the stored record.
func (h *ParcelHandler) Create(c echo.Context, req *CreateParcelRequest) (map[string]any, error) {
	parcel, err := h.parcels.Create(c.Request().Context(), req.CreatedBy, req.Attributes)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"insertedId": parcel.ID,
		"parcel":     parcel,
	}, nil
}

// Get handles GET /parcels/:id.
func (h *ParcelHandler) Get(c echo.Context, req *IDRequest) (*domain.Parcel, error) {
	return h.parcels.Get(c.Request().Context(), req.ID)
}

// Delete handles DELETE /parcels/:id. Unknown ids answer with
// deletedCount 0, mirroring the store's delete semantics.
func (h *ParcelHandler) Delete(c echo.Context, req *IDRequest) (map[string]any, error) {
	deleted, err := h.parcels.Delete(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}

	return map[string]any{"deletedCount": deleted}, nil
}
