// File: services/technician/crud.go
package technician

import (
	"context"
	"fmt"
	"time"

	"zeefreeze/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Fields that may never be patched through the generic update path.
var protectedTechnicianFields = map[string]bool{
	"id":                    true,
	"security.passwordHash": true,
	"security.tokenHash":    true,
	"createdAt":             true,
}

func (s *DefaultTechnicianService) GetByID(ctx context.Context, id string) (*models.Technician, error) {
	tech, err := s.Repo.GetByIDWithProjection(id, bson.M{"security": 0})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch technician: %w", err)
	}
	if tech == nil {
		return nil, fmt.Errorf("technician with id %s not found", id)
	}
	return tech, nil
}

func (s *DefaultTechnicianService) GetAll(ctx context.Context) ([]models.Technician, error) {
	techs, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch technicians: %w", err)
	}
	for i := range techs {
		techs[i].Security = models.Security{}
	}
	return techs, nil
}

func (s *DefaultTechnicianService) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Technician, error) {
	if len(updates) == 0 {
		return nil, fmt.Errorf("no update fields provided")
	}
	updateDoc := bson.M{}
	for key, value := range updates {
		if protectedTechnicianFields[key] {
			return nil, fmt.Errorf("field %q cannot be updated", key)
		}
		updateDoc[key] = value
	}
	updateDoc["updatedAt"] = time.Now()

	if err := s.Repo.UpdateWithDocument(id, updateDoc); err != nil {
		return nil, fmt.Errorf("failed to update technician: %w", err)
	}
	return s.GetByID(ctx, id)
}

func (s *DefaultTechnicianService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete technician: %w", err)
	}
	return nil
}

// UpdateFCMToken stores the device token used for push notifications.
func (s *DefaultTechnicianService) UpdateFCMToken(ctx context.Context, id, fcmToken string) error {
	if fcmToken == "" {
		return fmt.Errorf("fcm token is required")
	}
	if err := s.Repo.UpdateWithDocument(id, bson.M{"fcmToken": fcmToken, "updatedAt": time.Now()}); err != nil {
		return fmt.Errorf("failed to update fcm token: %w", err)
	}
	return nil
}
