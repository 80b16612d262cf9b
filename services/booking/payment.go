package booking

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"

	"eraflix/models"
)

// StripePaymentHandler backs the booking workflow with Stripe PaymentIntents.
type StripePaymentHandler struct {
	Logger   *zap.Logger
	Currency string
}

// NewStripePaymentHandler constructs a Stripe-backed PaymentHandler.
// stripe.Key must already be set by the caller.
func NewStripePaymentHandler(logger *zap.Logger, currency string) *StripePaymentHandler {
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}
	return &StripePaymentHandler{Logger: logger, Currency: currency}
}

// CreateIntent opens a PaymentIntent for the booking amount and returns the
// client secret the frontend completes the charge with.
func (h *StripePaymentHandler) CreateIntent(ctx context.Context, booking models.Booking) (string, string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(booking.TotalPrice * 100)), // smallest currency unit
		Currency: stripe.String(h.Currency),
		Metadata: map[string]string{
			"bookingId": booking.ID,
			"screenId":  booking.ScreenID,
		},
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", "", fmt.Errorf("stripe payment intent creation failed: %w", err)
	}

	h.Logger.Info("payment intent created",
		zap.String("bookingID", booking.ID),
		zap.String("paymentID", intent.ID))
	return intent.ClientSecret, intent.ID, nil
}

// VerifyPaid reports whether the PaymentIntent has succeeded.
func (h *StripePaymentHandler) VerifyPaid(ctx context.Context, paymentID string) (bool, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	intent, err := paymentintent.Get(paymentID, params)
	if err != nil {
		return false, fmt.Errorf("stripe payment intent lookup failed: %w", err)
	}
	return intent.Status == stripe.PaymentIntentStatusSucceeded, nil
}
