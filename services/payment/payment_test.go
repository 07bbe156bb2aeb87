// File: services/payment/payment_test.go
package payment

import (
	"context"
	"testing"

	"zeefreeze/models"

	"github.com/stretchr/testify/assert"
)

func TestAmountToMinorUnits(t *testing.T) {
	cases := []struct {
		name   string
		amount float64
		want   int64
	}{
		{"whole euros", 240, 24000},
		{"exact cents", 120.50, 12050},
		{"product lands below the integer", 19.99, 1999},
		{"another inexact float product", 64.35, 6435},
		{"single cent", 0.01, 1},
		{"large invoice", 12345.67, 1234567},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, amountToMinorUnits(tc.amount))
		})
	}
}

func TestCreateIntent_ValidatesRequest(t *testing.T) {
	h := NewStripePaymentHandler()
	cases := []struct {
		name string
		req  models.PaymentRequest
	}{
		{"zero amount", models.PaymentRequest{Amount: 0, Currency: "eur"}},
		{"negative amount", models.PaymentRequest{Amount: -12.50, Currency: "eur"}},
		{"missing currency", models.PaymentRequest{Amount: 99.90}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := h.CreateIntent(context.Background(), tc.req)
			assert.Error(t, err)
			assert.Nil(t, result)
		})
	}
}
