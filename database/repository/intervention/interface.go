// File: database/repository/intervention/interface.go
package interventionRepo

import (
	"context"

	"zeefreeze/database"
	"zeefreeze/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// InterventionRepository defines methods for intervention data access.
type InterventionRepository interface {
	Create(ctx context.Context, iv *models.Intervention) error
	GetByID(ctx context.Context, id string) (*models.Intervention, error)
	GetAll(ctx context.Context) ([]models.Intervention, error)
	GetByClientID(ctx context.Context, clientID string) ([]models.Intervention, error)
	GetByTechnicianID(ctx context.Context, technicianID string) ([]models.Intervention, error)
	GetByStatus(ctx context.Context, status string) ([]models.Intervention, error)
	Update(ctx context.Context, iv *models.Intervention) error
	Delete(ctx context.Context, id string) error
}

type mongoInterventionRepo struct {
	coll *mongo.Collection
}

// NewMongoInterventionRepo constructs a new MongoDB InterventionRepository.
func NewMongoInterventionRepo() InterventionRepository {
	db := database.MongoClient.Database(database.Name)
	return &mongoInterventionRepo{
		coll: db.Collection("interventions"),
	}
}
