// File: database/repository/event/crud.go
package eventRepo

import (
	"context"
	"fmt"
	"time"

	"zeefreeze/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoEventRepo) Create(ctx context.Context, ev *models.ScheduledEvent) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, ev); err != nil {
		return fmt.Errorf("failed to create scheduled event: %w", err)
	}
	return nil
}

func (r *mongoEventRepo) GetByTechnicianAndRange(ctx context.Context, technicianID, start, end string) ([]models.ScheduledEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"technicianId": technicianID,
		"date":         bson.M{"$gte": start, "$lte": end},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scheduled events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []models.ScheduledEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("error decoding scheduled events: %w", err)
	}
	return events, nil
}

func (r *mongoEventRepo) GetByReferenceID(ctx context.Context, referenceID string) ([]models.ScheduledEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"referenceId": referenceID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events for reference %s: %w", referenceID, err)
	}
	defer cursor.Close(ctx)

	var events []models.ScheduledEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("error decoding scheduled events: %w", err)
	}
	return events, nil
}

func (r *mongoEventRepo) DeleteByReferenceID(ctx context.Context, referenceID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := r.coll.DeleteMany(ctx, bson.M{"referenceId": referenceID}); err != nil {
		return fmt.Errorf("failed to delete events for reference %s: %w", referenceID, err)
	}
	return nil
}
