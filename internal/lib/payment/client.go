// Package payment provides the payment-gateway client.
//
// It is a thin adapter over Stripe's PaymentIntents API: the service
// layer asks for an intent, Stripe answers with a client secret the
// frontend uses to complete the charge. No charge state is stored
// locally; recorded payments arrive through POST /payments once the
// frontend confirms the intent.
package payment

import (
	"context"

	"github.com/profasthq/profast-api/internal/config"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

// IntentClient creates payment intents at the external gateway.
// Abstracted so services and tests can swap the Stripe-backed client
// for a stub.
type IntentClient interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string) (string, error)
}

// StripeClient is the production IntentClient backed by stripe-go.
type StripeClient struct {
	logger *zerolog.Logger
}

// NewStripeClient configures the Stripe SDK with the secret key from
// config and returns the client.
func NewStripeClient(cfg *config.Config, logger *zerolog.Logger) *StripeClient {
	stripe.Key = cfg.Payment.StripeSecretKey
	return &StripeClient{logger: logger}
}

// CreateIntent asks Stripe for a new PaymentIntent and returns its
// client secret. The amount is integer cents in the given currency.
func (c *StripeClient) CreateIntent(ctx context.Context, amountCents int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		// Prefer Stripe's own user-facing message when one exists.
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
			return "", errors.Wrap(err, stripeErr.Msg)
		}
		return "", errors.Wrap(err, "creating payment intent")
	}

	c.logger.Info().
		Str("intent_id", intent.ID).
		Int64("amount_cents", amountCents).
		Str("currency", currency).
		Msg("created payment intent")

	return intent.ClientSecret, nil
}
