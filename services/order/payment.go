package order

import (
	"fmt"

	"tably/config"
	"tably/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// createPaymentIntent opens a Stripe payment intent for the authoritative
// total. Capture happens entirely on the Stripe side; this service only
// creates the intent. Returns an empty ID when no Stripe key is configured
// (development / cash-only locations).
func createPaymentIntent(totalCents int64, currency, orderID string) (string, error) {
	if config.AppConfig.StripeKey == "" {
		utils.GetLogger().Warn("stripe key not configured, skipping payment intent",
			zap.String("orderId", orderID))
		return "", nil
	}
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(totalCents),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("orderId", orderID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return pi.ID, nil
}
