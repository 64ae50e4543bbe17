package handler

import (
	"net/http"

	"github.com/profasthq/profast-api/internal/domain"
	"github.com/profasthq/profast-api/internal/errs"
	"github.com/profasthq/profast-api/internal/repository"
	"github.com/profasthq/profast-api/internal/server"
	"github.com/profasthq/profast-api/internal/service"
	"github.com/profasthq/profast-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// PaymentHandler exposes payment history, payment recording, and
// payment intent creation.
type PaymentHandler struct {
	Handler
	payments *service.PaymentService
}

func NewPaymentHandler(s *server.Server, services *service.Services) *PaymentHandler {
	return &PaymentHandler{
		Handler:  NewHandler(s),
		payments: services.Payments,
	}
}

// List handles GET /payments: newest-first, optionally filtered by
// payer email. The unfiltered case is admin-gated in middleware.
func (h *PaymentHandler) List(c echo.Context, req *ListRequest) ([]domain.Payment, error) {
	return h.payments.List(c.Request().Context(), repository.ListQuery{Email: req.Email})
}

// Record handles POST /payments. A fully applied payment answers 200;
// a payment whose parcel update is deferred to the reconciler answers
// 202 with the RECONCILIATION_PENDING kind. The variable status keeps
// this a plain echo handler.
func (h *PaymentHandler) Record(c echo.Context) error {
	req := new(RecordPaymentRequest)
	if err := validation.BindAndValidate(c, req); err != nil {
		return err
	}

	result, err := h.payments.Record(c.Request().Context(), req.ParcelID, req.Email, req.Amount)
	if err != nil {
		return err
	}

	if result.Reconciling {
		body := errs.NewReconciliationPendingError(
			"Payment recorded; the parcel status update is pending reconciliation")
		return c.JSON(http.StatusAccepted, map[string]any{
			"kind":      body.Kind,
			"error":     body.Message,
			"status":    body.Status,
			"paymentId": result.Payment.ID,
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":   true,
		"paymentId": result.Payment.ID,
		"parcelId":  result.Payment.ParcelID,
		"payment":   result.Payment,
	})
}

// CreateIntent handles POST /create-payment-intent, returning the
// gateway's client secret for the requested amount.
func (h *PaymentHandler) CreateIntent(c echo.Context, req *CreateIntentRequest) (map[string]any, error) {
	clientSecret, err := h.payments.CreateIntent(c.Request().Context(), req.Amount)
	if err != nil {
		return nil, err
	}

	return map[string]any{"clientSecret": clientSecret}, nil
}
