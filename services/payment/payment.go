// File: services/payment/payment.go
package payment

import (
	"context"
	"fmt"
	"math"

	"zeefreeze/models"
	"zeefreeze/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentHandler runs charges through Stripe. Fraud checks, settlement and
// PCI compliance are Stripe's concern; this layer only creates intents and
// reads their status back.
type PaymentHandler interface {
	CreateIntent(ctx context.Context, req models.PaymentRequest) (*models.PaymentResult, error)
	IntentStatus(ctx context.Context, paymentIntentID string) (string, error)
}

// StripePaymentHandler is the production implementation. stripe.Key is set
// once at startup from configuration.
type StripePaymentHandler struct{}

func NewStripePaymentHandler() *StripePaymentHandler {
	return &StripePaymentHandler{}
}

// amountToMinorUnits converts an invoice amount into the currency's smallest
// unit. Rounded, not truncated: float products like 19.99*100 land just below
// the integer and would otherwise short the charge by a cent.
func amountToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CreateIntent opens a PaymentIntent for the invoice amount. The returned
// client secret goes to the client app, which confirms the payment there.
func (h *StripePaymentHandler) CreateIntent(ctx context.Context, req models.PaymentRequest) (*models.PaymentResult, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("payment amount must be positive")
	}
	if req.Currency == "" {
		return nil, fmt.Errorf("payment currency is required")
	}

	metadata := map[string]string{
		"invoiceId": req.InvoiceID,
		"clientId":  req.ClientID,
	}
	for k, v := range req.Metadata {
		metadata[k] = v
	}

	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(amountToMinorUnits(req.Amount)),
		Currency:    stripe.String(req.Currency),
		Description: stripe.String(req.Description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		utils.GetLogger().Error("Failed to create payment intent",
			zap.String("invoiceID", req.InvoiceID), zap.Error(err))
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return &models.PaymentResult{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		Status:          string(intent.Status),
	}, nil
}

// IntentStatus fetches the current status of a PaymentIntent.
func (h *StripePaymentHandler) IntentStatus(ctx context.Context, paymentIntentID string) (string, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	intent, err := paymentintent.Get(paymentIntentID, params)
	if err != nil {
		return "", fmt.Errorf("failed to fetch payment intent %s: %w", paymentIntentID, err)
	}
	return string(intent.Status), nil
}
