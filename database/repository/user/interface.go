package userRepo

import (
	"zeefreeze/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for client/admin account data access.
type UserRepository interface {
	GetByID(id string) (*models.User, error)
	GetAll() ([]models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByRole(role string) ([]models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id string) error
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
	GetByTokenHash(tokenHash string) (*models.User, error)
	UpdateWithDocument(id string, updateDoc bson.M) error
}
