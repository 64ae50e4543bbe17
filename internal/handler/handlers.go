package handler

import (
	"github.com/profasthq/profast-api/internal/server"
	"github.com/profasthq/profast-api/internal/service"
)

// Handlers aggregates all HTTP handlers for route registration.
type Handlers struct {
	Health   *HealthHandler
	Parcels  *ParcelHandler
	Users    *UserHandler
	Payments *PaymentHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		Parcels:  NewParcelHandler(s, services),
		Users:    NewUserHandler(s, services),
		Payments: NewPaymentHandler(s, services),
	}
}
