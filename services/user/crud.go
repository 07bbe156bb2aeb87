// File: services/user/crud.go
package user

import (
	"context"
	"fmt"
	"time"

	"zeefreeze/models"

	"go.mongodb.org/mongo-driver/bson"
)

var protectedUserFields = map[string]bool{
	"id":                    true,
	"role":                  true,
	"security.passwordHash": true,
	"security.tokenHash":    true,
	"createdAt":             true,
}

func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	usr, err := s.Repo.GetByIDWithProjection(id, bson.M{"security": 0})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr == nil {
		return nil, fmt.Errorf("user with id %s not found", id)
	}
	return usr, nil
}

func (s *DefaultUserService) GetAll(ctx context.Context) ([]models.User, error) {
	users, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	for i := range users {
		users[i].Security = models.Security{}
	}
	return users, nil
}

func (s *DefaultUserService) GetByRole(ctx context.Context, role string) ([]models.User, error) {
	users, err := s.Repo.GetByRole(role)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users by role: %w", err)
	}
	for i := range users {
		users[i].Security = models.Security{}
	}
	return users, nil
}

func (s *DefaultUserService) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.User, error) {
	if len(updates) == 0 {
		return nil, fmt.Errorf("no update fields provided")
	}
	updateDoc := bson.M{}
	for key, value := range updates {
		if protectedUserFields[key] {
			return nil, fmt.Errorf("field %q cannot be updated", key)
		}
		updateDoc[key] = value
	}
	updateDoc["updatedAt"] = time.Now()

	if err := s.Repo.UpdateWithDocument(id, updateDoc); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return s.GetByID(ctx, id)
}

func (s *DefaultUserService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (s *DefaultUserService) UpdateFCMToken(ctx context.Context, id, fcmToken string) error {
	if fcmToken == "" {
		return fmt.Errorf("fcm token is required")
	}
	if err := s.Repo.UpdateWithDocument(id, bson.M{"fcmToken": fcmToken, "updatedAt": time.Now()}); err != nil {
		return fmt.Errorf("failed to update fcm token: %w", err)
	}
	return nil
}
