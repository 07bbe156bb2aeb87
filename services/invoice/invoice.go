// File: services/invoice/invoice.go
package invoice

import (
	"context"
	"fmt"
	"time"

	invoiceRepo "zeefreeze/database/repository/invoice"
	"zeefreeze/models"
	notificationSvc "zeefreeze/services/notification"
	paymentSvc "zeefreeze/services/payment"
	"zeefreeze/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InvoiceService manages billing for completed jobs and drives the payment
// flow through the payment handler.
type InvoiceService interface {
	Create(ctx context.Context, req models.CreateInvoiceRequest) (*models.Invoice, error)
	GetByID(ctx context.Context, id string) (*models.Invoice, error)
	GetAll(ctx context.Context) ([]models.Invoice, error)
	GetByClientID(ctx context.Context, clientID string) ([]models.Invoice, error)
	Delete(ctx context.Context, id string) error

	// InitiatePayment opens a payment intent for a draft or failed invoice and
	// moves it to pending.
	InitiatePayment(ctx context.Context, id string) (*models.PaymentResult, error)
	// RefreshPaymentStatus polls the provider and settles the invoice status.
	RefreshPaymentStatus(ctx context.Context, id string) (*models.Invoice, error)
}

// DefaultInvoiceService is the production implementation.
type DefaultInvoiceService struct {
	Repo     invoiceRepo.InvoiceRepository
	Payments paymentSvc.PaymentHandler
	Notifier notificationSvc.NotificationService
}

func NewDefaultInvoiceService(
	repo invoiceRepo.InvoiceRepository,
	payments paymentSvc.PaymentHandler,
	notifier notificationSvc.NotificationService,
) (*DefaultInvoiceService, error) {
	if repo == nil || payments == nil {
		return nil, fmt.Errorf("invoice service initialization error: one or more dependencies are nil")
	}
	return &DefaultInvoiceService{Repo: repo, Payments: payments, Notifier: notifier}, nil
}

func (s *DefaultInvoiceService) Create(ctx context.Context, req models.CreateInvoiceRequest) (*models.Invoice, error) {
	if req.ReferenceType != "intervention" && req.ReferenceType != "installation" {
		return nil, fmt.Errorf("invalid reference type %q", req.ReferenceType)
	}

	now := time.Now()
	inv := models.Invoice{
		ID:            uuid.New().String(),
		ClientID:      req.ClientID,
		ReferenceID:   req.ReferenceID,
		ReferenceType: req.ReferenceType,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Status:        models.InvoiceDraft,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Repo.Create(ctx, &inv); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	return &inv, nil
}

func (s *DefaultInvoiceService) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	inv, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoice: %w", err)
	}
	if inv == nil {
		return nil, fmt.Errorf("invoice with id %s not found", id)
	}
	return inv, nil
}

func (s *DefaultInvoiceService) GetAll(ctx context.Context) ([]models.Invoice, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultInvoiceService) GetByClientID(ctx context.Context, clientID string) ([]models.Invoice, error) {
	return s.Repo.GetByClientID(ctx, clientID)
}

func (s *DefaultInvoiceService) Delete(ctx context.Context, id string) error {
	inv, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if inv.Status == models.InvoicePaid {
		return fmt.Errorf("a paid invoice cannot be deleted")
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	return nil
}

func (s *DefaultInvoiceService) InitiatePayment(ctx context.Context, id string) (*models.PaymentResult, error) {
	inv, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv.Status == models.InvoicePaid {
		return nil, fmt.Errorf("invoice is already paid")
	}

	result, err := s.Payments.CreateIntent(ctx, models.PaymentRequest{
		InvoiceID:   inv.ID,
		ClientID:    inv.ClientID,
		Amount:      inv.Amount,
		Currency:    inv.Currency,
		Description: fmt.Sprintf("Invoice %s (%s %s)", inv.ID, inv.ReferenceType, inv.ReferenceID),
	})
	if err != nil {
		return nil, err
	}

	if err := s.Repo.SetStatus(ctx, inv.ID, models.InvoicePending, result.PaymentIntentID); err != nil {
		return nil, fmt.Errorf("failed to update invoice status: %w", err)
	}
	return result, nil
}

func (s *DefaultInvoiceService) RefreshPaymentStatus(ctx context.Context, id string) (*models.Invoice, error) {
	inv, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv.PaymentIntentID == "" {
		return inv, nil
	}

	status, err := s.Payments.IntentStatus(ctx, inv.PaymentIntentID)
	if err != nil {
		return nil, err
	}

	var next string
	switch status {
	case "succeeded":
		next = models.InvoicePaid
	case "canceled":
		next = models.InvoiceFailed
	default:
		return inv, nil // still processing
	}

	if err := s.Repo.SetStatus(ctx, inv.ID, next, inv.PaymentIntentID); err != nil {
		return nil, fmt.Errorf("failed to update invoice status: %w", err)
	}
	inv.Status = next

	if next == models.InvoicePaid && s.Notifier != nil {
		if err := s.Notifier.Notify(ctx, inv.ClientID, models.RoleClient, "payment_confirmation",
			"Payment received",
			fmt.Sprintf("Invoice %s has been paid", inv.ID),
			map[string]string{"invoiceId": inv.ID}); err != nil {
			utils.GetLogger().Warn("Failed to notify client of payment",
				zap.String("invoiceID", inv.ID), zap.Error(err))
		}
	}
	return inv, nil
}
