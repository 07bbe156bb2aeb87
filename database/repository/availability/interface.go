// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"
	"errors"

	"zeefreeze/database"
	"zeefreeze/models"
	"zeefreeze/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ErrNotFound is returned by LoadAll when a technician has no stored set.
// The caller is responsible for seeding a default set.
var ErrNotFound = errors.New("no availability records for technician")

// AvailabilityRepository persists per-technician availability sets. The only
// write operation is a whole-set replace: either every record is swapped or,
// on a storage error, the old set remains fully intact.
type AvailabilityRepository interface {
	LoadAll(ctx context.Context, technicianID string) (models.AvailabilitySet, error)
	ReplaceAll(ctx context.Context, technicianID string, days models.AvailabilitySet) error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.MongoClient.Database(database.Name)
	repo := &mongoAvailabilityRepo{
		coll: db.Collection("availability"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Warn("Failed to ensure availability indexes", zap.Error(err))
	}
	return repo
}
