package models

// PaymentRequest describes a charge to run through the payment provider.
type PaymentRequest struct {
	InvoiceID   string
	ClientID    string
	Amount      float64
	Currency    string
	Description string
	Metadata    map[string]string
}

// PaymentResult carries the provider references back to the invoice layer.
// Fraud checks, settlement and PCI compliance are the provider's concern.
type PaymentResult struct {
	PaymentIntentID string `json:"paymentIntentId"`
	ClientSecret    string `json:"clientSecret"`
	Status          string `json:"status"`
}
