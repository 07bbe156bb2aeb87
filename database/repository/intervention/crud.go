// File: database/repository/intervention/crud.go
package interventionRepo

import (
	"context"
	"fmt"
	"time"

	"zeefreeze/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (r *mongoInterventionRepo) Create(ctx context.Context, iv *models.Intervention) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, iv); err != nil {
		return fmt.Errorf("failed to create intervention: %w", err)
	}
	return nil
}

func (r *mongoInterventionRepo) GetByID(ctx context.Context, id string) (*models.Intervention, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var iv models.Intervention
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&iv); err != nil {
		return nil, fmt.Errorf("failed to fetch intervention with id %s: %w", id, err)
	}
	return &iv, nil
}

func (r *mongoInterventionRepo) GetAll(ctx context.Context) ([]models.Intervention, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoInterventionRepo) GetByClientID(ctx context.Context, clientID string) ([]models.Intervention, error) {
	return r.find(ctx, bson.M{"clientId": clientID})
}

func (r *mongoInterventionRepo) GetByTechnicianID(ctx context.Context, technicianID string) ([]models.Intervention, error) {
	return r.find(ctx, bson.M{"technicianId": technicianID})
}

func (r *mongoInterventionRepo) GetByStatus(ctx context.Context, status string) ([]models.Intervention, error) {
	return r.find(ctx, bson.M{"status": status})
}

func (r *mongoInterventionRepo) find(ctx context.Context, filter bson.M) ([]models.Intervention, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch interventions: %w", err)
	}
	defer cursor.Close(ctx)
	var items []models.Intervention
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("error decoding interventions: %w", err)
	}
	return items, nil
}

func (r *mongoInterventionRepo) Update(ctx context.Context, iv *models.Intervention) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": iv.ID}, bson.M{"$set": iv})
	if err != nil {
		return fmt.Errorf("failed to update intervention with id %s: %w", iv.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("intervention with id %s not found", iv.ID)
	}
	return nil
}

func (r *mongoInterventionRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete intervention with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("intervention with id %s not found", id)
	}
	return nil
}
