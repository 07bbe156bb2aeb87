package technician

import (
	"context"
	"fmt"

	technicianRepo "zeefreeze/database/repository/technician"
	"zeefreeze/models"
	availabilitySvc "zeefreeze/services/availability"
)

// TechnicianService manages technician accounts and the matching flow used
// when assigning interventions.
type TechnicianService interface {
	// Registration / authentication.
	Register(reg models.TechnicianRegistration) (*models.Technician, error)
	Authenticate(email, password string) (*models.Technician, error)
	RevokeAuthToken(technicianID string) error

	// Account management.
	GetByID(ctx context.Context, id string) (*models.Technician, error)
	GetAll(ctx context.Context) ([]models.Technician, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Technician, error)
	Delete(ctx context.Context, id string) error
	UpdateFCMToken(ctx context.Context, id, fcmToken string) error

	// MatchBySkill ranks active technicians holding a skill by how many open
	// days they have within [start, end].
	MatchBySkill(ctx context.Context, skill, start, end string) ([]models.TechnicianMatch, error)
}

// DefaultTechnicianService is the production implementation.
type DefaultTechnicianService struct {
	Repo         technicianRepo.TechnicianRepository
	Availability availabilitySvc.AvailabilityService
}

func NewDefaultTechnicianService(repo technicianRepo.TechnicianRepository, availability availabilitySvc.AvailabilityService) (*DefaultTechnicianService, error) {
	if repo == nil || availability == nil {
		return nil, fmt.Errorf("technician service initialization error: one or more dependencies are nil")
	}
	return &DefaultTechnicianService{Repo: repo, Availability: availability}, nil
}
