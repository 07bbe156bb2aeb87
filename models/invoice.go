package models

import "time"

// Invoice statuses.
const (
	InvoiceDraft   = "draft"
	InvoicePending = "pending"
	InvoicePaid    = "paid"
	InvoiceFailed  = "failed"
)

// Invoice bills a client for a completed job.
type Invoice struct {
	ID              string    `bson:"id" json:"id"`
	ClientID        string    `bson:"clientId" json:"clientId"`
	ReferenceID     string    `bson:"referenceId" json:"referenceId"` // intervention or installation ID
	ReferenceType   string    `bson:"referenceType" json:"referenceType"`
	Amount          float64   `bson:"amount" json:"amount"`
	Currency        string    `bson:"currency" json:"currency"`
	Status          string    `bson:"status" json:"status"`
	PaymentIntentID string    `bson:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CreateInvoiceRequest is the admin-facing creation payload.
type CreateInvoiceRequest struct {
	ClientID      string  `json:"clientId" binding:"required"`
	ReferenceID   string  `json:"referenceId" binding:"required"`
	ReferenceType string  `json:"referenceType" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Currency      string  `json:"currency" binding:"required"`
}
