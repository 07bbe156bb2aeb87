package intervention

import (
	"context"
	"fmt"

	eventRepo "zeefreeze/database/repository/event"
	interventionRepo "zeefreeze/database/repository/intervention"
	"zeefreeze/models"
	availabilitySvc "zeefreeze/services/availability"
	notificationSvc "zeefreeze/services/notification"
)

// InterventionService manages corrective maintenance jobs from request to
// completion, including technician assignment against open availability.
type InterventionService interface {
	Create(ctx context.Context, clientID string, req models.CreateInterventionRequest) (*models.Intervention, error)
	GetByID(ctx context.Context, id string) (*models.Intervention, error)
	GetAll(ctx context.Context) ([]models.Intervention, error)
	GetByClientID(ctx context.Context, clientID string) ([]models.Intervention, error)
	GetByTechnicianID(ctx context.Context, technicianID string) ([]models.Intervention, error)
	GetByStatus(ctx context.Context, status string) ([]models.Intervention, error)

	// Assign books a technician onto a (date, slot) pair after checking the
	// slot is open, and puts the booking on the technician's agenda.
	Assign(ctx context.Context, id string, req models.AssignInterventionRequest) (*models.Intervention, error)
	Start(ctx context.Context, id, technicianID string) (*models.Intervention, error)
	Complete(ctx context.Context, id, technicianID, reportURL string) (*models.Intervention, error)
	Cancel(ctx context.Context, id string) (*models.Intervention, error)
	Delete(ctx context.Context, id string) error
}

// DefaultInterventionService is the production implementation.
type DefaultInterventionService struct {
	Repo         interventionRepo.InterventionRepository
	Events       eventRepo.EventRepository
	Availability availabilitySvc.AvailabilityService
	Notifier     notificationSvc.NotificationService
}

func NewDefaultInterventionService(
	repo interventionRepo.InterventionRepository,
	events eventRepo.EventRepository,
	availability availabilitySvc.AvailabilityService,
	notifier notificationSvc.NotificationService,
) (*DefaultInterventionService, error) {
	if repo == nil || events == nil || availability == nil {
		return nil, fmt.Errorf("intervention service initialization error: one or more dependencies are nil")
	}
	return &DefaultInterventionService{
		Repo:         repo,
		Events:       events,
		Availability: availability,
		Notifier:     notifier,
	}, nil
}
