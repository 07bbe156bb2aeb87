// File: database/repository/event/interface.go
package eventRepo

import (
	"context"

	"zeefreeze/database"
	"zeefreeze/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// EventRepository defines methods for scheduled-event data access. Events are
// booked commitments; they live apart from availability and are never merged
// into it.
type EventRepository interface {
	Create(ctx context.Context, ev *models.ScheduledEvent) error
	GetByTechnicianAndRange(ctx context.Context, technicianID, start, end string) ([]models.ScheduledEvent, error)
	GetByReferenceID(ctx context.Context, referenceID string) ([]models.ScheduledEvent, error)
	DeleteByReferenceID(ctx context.Context, referenceID string) error
}

type mongoEventRepo struct {
	coll *mongo.Collection
}

// NewMongoEventRepo constructs a new MongoDB EventRepository.
func NewMongoEventRepo() EventRepository {
	db := database.MongoClient.Database(database.Name)
	return &mongoEventRepo{
		coll: db.Collection("scheduled_events"),
	}
}
