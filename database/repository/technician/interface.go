package technicianRepo

import (
	"zeefreeze/models"

	"go.mongodb.org/mongo-driver/bson"
)

// TechnicianRepository defines methods for technician data access.
type TechnicianRepository interface {
	// GetByID retrieves a technician by its unique ID.
	GetByID(id string) (*models.Technician, error)
	// GetAll retrieves all technicians.
	GetAll() ([]models.Technician, error)
	// GetByEmail retrieves a technician by its email address.
	GetByEmail(email string) (*models.Technician, error)
	// Create inserts a new technician record.
	Create(technician *models.Technician) error
	// Update modifies an existing technician record.
	Update(technician *models.Technician) error
	// Delete removes a technician record by its ID.
	Delete(id string) error
	// GetByIDWithProjection retrieves a technician by its unique ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.Technician, error)
	// GetByTokenHash retrieves a technician whose token hash matches the provided hash.
	GetByTokenHash(tokenHash string) (*models.Technician, error)
	// GetBySkill retrieves active technicians offering a specific skill.
	GetBySkill(skill string) ([]models.Technician, error)
	// UpdateWithDocument patches a technician document with the specified update document.
	UpdateWithDocument(id string, updateDoc bson.M) error
}
