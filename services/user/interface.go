package user

import (
	"context"
	"fmt"

	userRepo "zeefreeze/database/repository/user"
	"zeefreeze/models"
)

// UserService manages client and admin accounts.
type UserService interface {
	// Registration / authentication.
	Register(reg models.UserRegistration) (*models.User, error)
	Authenticate(email, password string) (*models.User, error)
	RevokeAuthToken(userID string) error

	// Password reset via one-time code.
	InitiatePasswordReset(email string) error
	CompletePasswordReset(email, otp, newPassword string) error

	// Account management.
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	GetByRole(ctx context.Context, role string) ([]models.User, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*models.User, error)
	Delete(ctx context.Context, id string) error
	UpdateFCMToken(ctx context.Context, id, fcmToken string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

func NewDefaultUserService(repo userRepo.UserRepository) (*DefaultUserService, error) {
	if repo == nil {
		return nil, fmt.Errorf("user service initialization error: repository is nil")
	}
	return &DefaultUserService{Repo: repo}, nil
}
