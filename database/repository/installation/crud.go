// File: database/repository/installation/crud.go
package installationRepo

import (
	"context"
	"fmt"
	"time"

	"zeefreeze/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (r *mongoInstallationRepo) Create(ctx context.Context, inst *models.Installation) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, inst); err != nil {
		return fmt.Errorf("failed to create installation: %w", err)
	}
	return nil
}

func (r *mongoInstallationRepo) GetByID(ctx context.Context, id string) (*models.Installation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var inst models.Installation
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&inst); err != nil {
		return nil, fmt.Errorf("failed to fetch installation with id %s: %w", id, err)
	}
	return &inst, nil
}

func (r *mongoInstallationRepo) GetAll(ctx context.Context) ([]models.Installation, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoInstallationRepo) GetByClientID(ctx context.Context, clientID string) ([]models.Installation, error) {
	return r.find(ctx, bson.M{"clientId": clientID})
}

func (r *mongoInstallationRepo) GetByTechnicianID(ctx context.Context, technicianID string) ([]models.Installation, error) {
	return r.find(ctx, bson.M{"technicianId": technicianID})
}

func (r *mongoInstallationRepo) find(ctx context.Context, filter bson.M) ([]models.Installation, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch installations: %w", err)
	}
	defer cursor.Close(ctx)
	var items []models.Installation
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("error decoding installations: %w", err)
	}
	return items, nil
}

func (r *mongoInstallationRepo) Update(ctx context.Context, inst *models.Installation) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": inst.ID}, bson.M{"$set": inst})
	if err != nil {
		return fmt.Errorf("failed to update installation with id %s: %w", inst.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("installation with id %s not found", inst.ID)
	}
	return nil
}

func (r *mongoInstallationRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete installation with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("installation with id %s not found", id)
	}
	return nil
}
