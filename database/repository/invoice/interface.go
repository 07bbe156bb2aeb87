// File: database/repository/invoice/interface.go
package invoiceRepo

import (
	"context"

	"zeefreeze/database"
	"zeefreeze/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// InvoiceRepository defines methods for invoice data access.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *models.Invoice) error
	GetByID(ctx context.Context, id string) (*models.Invoice, error)
	GetAll(ctx context.Context) ([]models.Invoice, error)
	GetByClientID(ctx context.Context, clientID string) ([]models.Invoice, error)
	Update(ctx context.Context, inv *models.Invoice) error
	SetStatus(ctx context.Context, id, status, paymentIntentID string) error
	Delete(ctx context.Context, id string) error
}

type mongoInvoiceRepo struct {
	coll *mongo.Collection
}

// NewMongoInvoiceRepo constructs a new MongoDB InvoiceRepository.
func NewMongoInvoiceRepo() InvoiceRepository {
	db := database.MongoClient.Database(database.Name)
	return &mongoInvoiceRepo{
		coll: db.Collection("invoices"),
	}
}
