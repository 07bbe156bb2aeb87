// File: database/repository/availability/crud.go
package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"zeefreeze/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// LoadAll fetches every availability day stored for the technician. A
// technician with zero records yields ErrNotFound so the caller can seed a
// default set.
func (r *mongoAvailabilityRepo) LoadAll(ctx context.Context, technicianID string) (models.AvailabilitySet, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"technicianId": technicianID}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability for technician %s: %w", technicianID, err)
	}
	defer cursor.Close(ctx)

	var days models.AvailabilitySet
	if err := cursor.All(ctx, &days); err != nil {
		return nil, fmt.Errorf("error decoding availability records: %w", err)
	}
	if len(days) == 0 {
		return nil, ErrNotFound
	}
	return days, nil
}

// ReplaceAll swaps the technician's entire set in one transaction
// (delete-all-then-insert, the platform's whole-set replace convention).
// If anything fails, the transaction aborts and the old records stay intact.
func (r *mongoAvailabilityRepo) ReplaceAll(ctx context.Context, technicianID string, days models.AvailabilitySet) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	sess, err := r.coll.Database().Client().StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session for availability replace: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := r.coll.DeleteMany(sc, bson.M{"technicianId": technicianID}); err != nil {
			return nil, fmt.Errorf("failed to clear availability: %w", err)
		}
		if len(days) == 0 {
			return nil, nil
		}
		docs := make([]interface{}, len(days))
		for i, day := range days {
			day.TechnicianID = technicianID
			docs[i] = day
		}
		if _, err := r.coll.InsertMany(sc, docs); err != nil {
			return nil, fmt.Errorf("failed to insert availability: %w", err)
		}
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("failed to replace availability for technician %s: %w", technicianID, err)
	}
	return nil
}
