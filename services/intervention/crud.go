// File: services/intervention/crud.go
package intervention

import (
	"context"
	"fmt"
	"time"

	"zeefreeze/models"

	"github.com/google/uuid"
)

func (s *DefaultInterventionService) Create(ctx context.Context, clientID string, req models.CreateInterventionRequest) (*models.Intervention, error) {
	if clientID == "" {
		return nil, fmt.Errorf("client id is required")
	}
	priority := req.Priority
	if priority == "" {
		priority = "normal"
	}

	now := time.Now()
	iv := models.Intervention{
		ID:          uuid.New().String(),
		ClientID:    clientID,
		Status:      models.InterventionPending,
		Equipment:   req.Equipment,
		Description: req.Description,
		Priority:    priority,
		Location:    req.Location,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(ctx, &iv); err != nil {
		return nil, fmt.Errorf("failed to create intervention: %w", err)
	}
	return &iv, nil
}

func (s *DefaultInterventionService) GetByID(ctx context.Context, id string) (*models.Intervention, error) {
	iv, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch intervention: %w", err)
	}
	if iv == nil {
		return nil, fmt.Errorf("intervention with id %s not found", id)
	}
	return iv, nil
}

func (s *DefaultInterventionService) GetAll(ctx context.Context) ([]models.Intervention, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultInterventionService) GetByClientID(ctx context.Context, clientID string) ([]models.Intervention, error) {
	return s.Repo.GetByClientID(ctx, clientID)
}

func (s *DefaultInterventionService) GetByTechnicianID(ctx context.Context, technicianID string) ([]models.Intervention, error) {
	return s.Repo.GetByTechnicianID(ctx, technicianID)
}

func (s *DefaultInterventionService) GetByStatus(ctx context.Context, status string) ([]models.Intervention, error) {
	return s.Repo.GetByStatus(ctx, status)
}

func (s *DefaultInterventionService) Delete(ctx context.Context, id string) error {
	iv, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if iv.Status == models.InterventionInProgress {
		return fmt.Errorf("cannot delete an intervention that is in progress")
	}
	if err := s.Events.DeleteByReferenceID(ctx, id); err != nil {
		return fmt.Errorf("failed to remove scheduled events: %w", err)
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete intervention: %w", err)
	}
	return nil
}
