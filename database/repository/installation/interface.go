// File: database/repository/installation/interface.go
package installationRepo

import (
	"context"

	"zeefreeze/database"
	"zeefreeze/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// InstallationRepository defines methods for installation data access.
type InstallationRepository interface {
	Create(ctx context.Context, inst *models.Installation) error
	GetByID(ctx context.Context, id string) (*models.Installation, error)
	GetAll(ctx context.Context) ([]models.Installation, error)
	GetByClientID(ctx context.Context, clientID string) ([]models.Installation, error)
	GetByTechnicianID(ctx context.Context, technicianID string) ([]models.Installation, error)
	Update(ctx context.Context, inst *models.Installation) error
	Delete(ctx context.Context, id string) error
}

type mongoInstallationRepo struct {
	coll *mongo.Collection
}

// NewMongoInstallationRepo constructs a new MongoDB InstallationRepository.
func NewMongoInstallationRepo() InstallationRepository {
	db := database.MongoClient.Database(database.Name)
	return &mongoInstallationRepo{
		coll: db.Collection("installations"),
	}
}
