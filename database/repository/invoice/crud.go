// File: database/repository/invoice/crud.go
package invoiceRepo

import (
	"context"
	"fmt"
	"time"

	"zeefreeze/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (r *mongoInvoiceRepo) Create(ctx context.Context, inv *models.Invoice) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, inv); err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}
	return nil
}

func (r *mongoInvoiceRepo) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var inv models.Invoice
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&inv); err != nil {
		return nil, fmt.Errorf("failed to fetch invoice with id %s: %w", id, err)
	}
	return &inv, nil
}

func (r *mongoInvoiceRepo) GetAll(ctx context.Context) ([]models.Invoice, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoInvoiceRepo) GetByClientID(ctx context.Context, clientID string) ([]models.Invoice, error) {
	return r.find(ctx, bson.M{"clientId": clientID})
}

func (r *mongoInvoiceRepo) find(ctx context.Context, filter bson.M) ([]models.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoices: %w", err)
	}
	defer cursor.Close(ctx)
	var items []models.Invoice
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("error decoding invoices: %w", err)
	}
	return items, nil
}

func (r *mongoInvoiceRepo) Update(ctx context.Context, inv *models.Invoice) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": inv.ID}, bson.M{"$set": inv})
	if err != nil {
		return fmt.Errorf("failed to update invoice with id %s: %w", inv.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("invoice with id %s not found", inv.ID)
	}
	return nil
}

func (r *mongoInvoiceRepo) SetStatus(ctx context.Context, id, status, paymentIntentID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now(),
	}}
	if paymentIntentID != "" {
		update["$set"].(bson.M)["paymentIntentId"] = paymentIntentID
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set status on invoice %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("invoice with id %s not found", id)
	}
	return nil
}

func (r *mongoInvoiceRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete invoice with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("invoice with id %s not found", id)
	}
	return nil
}
