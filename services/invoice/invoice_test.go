// File: services/invoice/invoice_test.go
package invoice

import (
	"context"
	"errors"
	"testing"

	"zeefreeze/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInvoiceRepo struct {
	invoices map[string]models.Invoice
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[string]models.Invoice)}
}

func (r *fakeInvoiceRepo) Create(ctx context.Context, inv *models.Invoice) error {
	r.invoices[inv.ID] = *inv
	return nil
}

func (r *fakeInvoiceRepo) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := inv
	return &cp, nil
}

func (r *fakeInvoiceRepo) GetAll(ctx context.Context) ([]models.Invoice, error) {
	out := make([]models.Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		out = append(out, inv)
	}
	return out, nil
}

func (r *fakeInvoiceRepo) GetByClientID(ctx context.Context, clientID string) ([]models.Invoice, error) {
	var out []models.Invoice
	for _, inv := range r.invoices {
		if inv.ClientID == clientID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) Update(ctx context.Context, inv *models.Invoice) error {
	if _, ok := r.invoices[inv.ID]; !ok {
		return errors.New("invoice not found")
	}
	r.invoices[inv.ID] = *inv
	return nil
}

func (r *fakeInvoiceRepo) SetStatus(ctx context.Context, id, status, paymentIntentID string) error {
	inv, ok := r.invoices[id]
	if !ok {
		return errors.New("invoice not found")
	}
	inv.Status = status
	inv.PaymentIntentID = paymentIntentID
	r.invoices[id] = inv
	return nil
}

func (r *fakeInvoiceRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.invoices[id]; !ok {
		return errors.New("invoice not found")
	}
	delete(r.invoices, id)
	return nil
}

// fakePayments returns canned provider responses.
type fakePayments struct {
	intentStatus string
	createErr    error
	lastRequest  models.PaymentRequest
}

func (p *fakePayments) CreateIntent(ctx context.Context, req models.PaymentRequest) (*models.PaymentResult, error) {
	if p.createErr != nil {
		return nil, p.createErr
	}
	p.lastRequest = req
	return &models.PaymentResult{
		PaymentIntentID: "pi_test",
		ClientSecret:    "pi_test_secret",
		Status:          "requires_payment_method",
	}, nil
}

func (p *fakePayments) IntentStatus(ctx context.Context, intentID string) (string, error) {
	return p.intentStatus, nil
}

func newTestService(t *testing.T) (*DefaultInvoiceService, *fakeInvoiceRepo, *fakePayments) {
	t.Helper()
	repo := newFakeInvoiceRepo()
	payments := &fakePayments{}
	svc, err := NewDefaultInvoiceService(repo, payments, nil)
	require.NoError(t, err)
	return svc, repo, payments
}

func createDraft(t *testing.T, svc *DefaultInvoiceService) *models.Invoice {
	t.Helper()
	inv, err := svc.Create(context.Background(), models.CreateInvoiceRequest{
		ClientID:      "client-1",
		ReferenceID:   "iv-1",
		ReferenceType: "intervention",
		Amount:        240.50,
		Currency:      "eur",
	})
	require.NoError(t, err)
	require.Equal(t, models.InvoiceDraft, inv.Status)
	return inv
}

func TestCreate_RejectsUnknownReferenceType(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.Create(context.Background(), models.CreateInvoiceRequest{
		ClientID:      "client-1",
		ReferenceID:   "x",
		ReferenceType: "subscription",
		Amount:        10,
		Currency:      "eur",
	})
	assert.Error(t, err)
}

func TestInitiatePayment_MovesDraftToPending(t *testing.T) {
	svc, repo, payments := newTestService(t)
	inv := createDraft(t, svc)

	result, err := svc.InitiatePayment(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "pi_test", result.PaymentIntentID)
	assert.NotEmpty(t, result.ClientSecret)
	assert.Equal(t, inv.ID, payments.lastRequest.InvoiceID)
	assert.Equal(t, inv.Amount, payments.lastRequest.Amount)

	stored := repo.invoices[inv.ID]
	assert.Equal(t, models.InvoicePending, stored.Status)
	assert.Equal(t, "pi_test", stored.PaymentIntentID)
}

func TestInitiatePayment_RejectsPaidInvoice(t *testing.T) {
	svc, repo, _ := newTestService(t)
	inv := createDraft(t, svc)
	require.NoError(t, repo.SetStatus(context.Background(), inv.ID, models.InvoicePaid, "pi_old"))

	_, err := svc.InitiatePayment(context.Background(), inv.ID)
	assert.Error(t, err)
}

func TestRefreshPaymentStatus_Settles(t *testing.T) {
	cases := []struct {
		name         string
		intentStatus string
		want         string
	}{
		{"succeeded settles to paid", "succeeded", models.InvoicePaid},
		{"canceled settles to failed", "canceled", models.InvoiceFailed},
		{"processing leaves pending", "processing", models.InvoicePending},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo, payments := newTestService(t)
			inv := createDraft(t, svc)
			_, err := svc.InitiatePayment(context.Background(), inv.ID)
			require.NoError(t, err)

			payments.intentStatus = tc.intentStatus
			refreshed, err := svc.RefreshPaymentStatus(context.Background(), inv.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.want, refreshed.Status)
			assert.Equal(t, tc.want, repo.invoices[inv.ID].Status)
		})
	}
}

func TestRefreshPaymentStatus_NoIntentIsNoOp(t *testing.T) {
	svc, _, _ := newTestService(t)
	inv := createDraft(t, svc)

	refreshed, err := svc.RefreshPaymentStatus(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InvoiceDraft, refreshed.Status)
}

func TestDelete_RejectsPaidInvoice(t *testing.T) {
	svc, repo, _ := newTestService(t)
	inv := createDraft(t, svc)
	require.NoError(t, repo.SetStatus(context.Background(), inv.ID, models.InvoicePaid, "pi_test"))

	err := svc.Delete(context.Background(), inv.ID)
	assert.Error(t, err)
	assert.Contains(t, repo.invoices, inv.ID)
}
