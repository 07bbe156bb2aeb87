// File: services/installation/installation.go
package installation

import (
	"context"
	"fmt"
	"time"

	eventRepo "zeefreeze/database/repository/event"
	installationRepo "zeefreeze/database/repository/installation"
	"zeefreeze/models"
	availabilitySvc "zeefreeze/services/availability"
	notificationSvc "zeefreeze/services/notification"
	"zeefreeze/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InstallationService manages new-equipment installation jobs.
type InstallationService interface {
	Create(ctx context.Context, clientID string, req models.CreateInstallationRequest) (*models.Installation, error)
	GetByID(ctx context.Context, id string) (*models.Installation, error)
	GetAll(ctx context.Context) ([]models.Installation, error)
	GetByClientID(ctx context.Context, clientID string) ([]models.Installation, error)
	GetByTechnicianID(ctx context.Context, technicianID string) ([]models.Installation, error)

	// Schedule books a technician onto a (date, slot) pair after checking the
	// slot is open.
	Schedule(ctx context.Context, id, technicianID, date, slot string) (*models.Installation, error)
	MarkDone(ctx context.Context, id, technicianID string) (*models.Installation, error)
	Cancel(ctx context.Context, id string) (*models.Installation, error)
	Delete(ctx context.Context, id string) error
}

// Half-day windows on the agenda, minutes from midnight. Installations get the
// wider window: site work routinely runs past a corrective visit.
const (
	morningStart   = 8 * 60
	morningEnd     = 12 * 60
	afternoonStart = 13 * 60
	afternoonEnd   = 18 * 60
)

// DefaultInstallationService is the production implementation.
type DefaultInstallationService struct {
	Repo         installationRepo.InstallationRepository
	Events       eventRepo.EventRepository
	Availability availabilitySvc.AvailabilityService
	Notifier     notificationSvc.NotificationService
}

func NewDefaultInstallationService(
	repo installationRepo.InstallationRepository,
	events eventRepo.EventRepository,
	availability availabilitySvc.AvailabilityService,
	notifier notificationSvc.NotificationService,
) (*DefaultInstallationService, error) {
	if repo == nil || events == nil || availability == nil {
		return nil, fmt.Errorf("installation service initialization error: one or more dependencies are nil")
	}
	return &DefaultInstallationService{
		Repo:         repo,
		Events:       events,
		Availability: availability,
		Notifier:     notifier,
	}, nil
}

func (s *DefaultInstallationService) Create(ctx context.Context, clientID string, req models.CreateInstallationRequest) (*models.Installation, error) {
	if clientID == "" {
		return nil, fmt.Errorf("client id is required")
	}
	now := time.Now()
	inst := models.Installation{
		ID:          uuid.New().String(),
		ClientID:    clientID,
		Status:      models.InstallationRequested,
		Equipment:   req.Equipment,
		SiteAddress: req.SiteAddress,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(ctx, &inst); err != nil {
		return nil, fmt.Errorf("failed to create installation: %w", err)
	}
	return &inst, nil
}

func (s *DefaultInstallationService) GetByID(ctx context.Context, id string) (*models.Installation, error) {
	inst, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch installation: %w", err)
	}
	if inst == nil {
		return nil, fmt.Errorf("installation with id %s not found", id)
	}
	return inst, nil
}

func (s *DefaultInstallationService) GetAll(ctx context.Context) ([]models.Installation, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultInstallationService) GetByClientID(ctx context.Context, clientID string) ([]models.Installation, error) {
	return s.Repo.GetByClientID(ctx, clientID)
}

func (s *DefaultInstallationService) GetByTechnicianID(ctx context.Context, technicianID string) ([]models.Installation, error) {
	return s.Repo.GetByTechnicianID(ctx, technicianID)
}

func (s *DefaultInstallationService) Schedule(ctx context.Context, id, technicianID, date, slot string) (*models.Installation, error) {
	inst, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inst.Status != models.InstallationRequested && inst.Status != models.InstallationScheduled {
		return nil, fmt.Errorf("installation in status %q cannot be scheduled", inst.Status)
	}

	open, err := s.Availability.SlotOpen(ctx, technicianID, date, slot)
	if err != nil {
		return nil, err
	}
	if !open {
		return nil, fmt.Errorf("technician %s is not available on %s (%s)", technicianID, date, slot)
	}

	if inst.TechnicianID != "" {
		if err := s.Events.DeleteByReferenceID(ctx, inst.ID); err != nil {
			return nil, fmt.Errorf("failed to clear previous agenda entry: %w", err)
		}
	}

	start, end := morningStart, morningEnd
	if slot == models.SlotAfternoon {
		start, end = afternoonStart, afternoonEnd
	}
	event := models.ScheduledEvent{
		ID:           uuid.New().String(),
		TechnicianID: technicianID,
		Date:         date,
		Start:        start,
		End:          end,
		Type:         models.EventInstallation,
		ReferenceID:  inst.ID,
		Location:     inst.SiteAddress,
		CreatedAt:    time.Now(),
	}
	if err := s.Events.Create(ctx, &event); err != nil {
		return nil, fmt.Errorf("failed to create agenda entry: %w", err)
	}

	inst.TechnicianID = technicianID
	inst.Date = date
	inst.Slot = slot
	inst.Status = models.InstallationScheduled
	inst.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, inst); err != nil {
		return nil, fmt.Errorf("failed to update installation: %w", err)
	}

	s.notify(ctx, technicianID, models.RoleTechnician, "installation_scheduled",
		"New installation scheduled",
		fmt.Sprintf("%s on %s (%s) at %s", inst.Equipment, date, slot, inst.SiteAddress),
		map[string]string{"installationId": inst.ID})
	return inst, nil
}

func (s *DefaultInstallationService) MarkDone(ctx context.Context, id, technicianID string) (*models.Installation, error) {
	inst, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inst.TechnicianID != technicianID {
		return nil, fmt.Errorf("installation is not assigned to this technician")
	}
	if inst.Status != models.InstallationScheduled {
		return nil, fmt.Errorf("installation in status %q cannot be completed", inst.Status)
	}

	inst.Status = models.InstallationDone
	inst.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, inst); err != nil {
		return nil, fmt.Errorf("failed to update installation: %w", err)
	}

	s.notify(ctx, inst.ClientID, models.RoleClient, "installation_done",
		"Installation complete",
		fmt.Sprintf("Your %s has been installed", inst.Equipment),
		map[string]string{"installationId": inst.ID})
	return inst, nil
}

func (s *DefaultInstallationService) Cancel(ctx context.Context, id string) (*models.Installation, error) {
	inst, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inst.Status == models.InstallationDone {
		return nil, fmt.Errorf("a completed installation cannot be cancelled")
	}

	if err := s.Events.DeleteByReferenceID(ctx, inst.ID); err != nil {
		return nil, fmt.Errorf("failed to clear agenda entry: %w", err)
	}

	inst.Status = models.InstallationCancelled
	inst.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, inst); err != nil {
		return nil, fmt.Errorf("failed to update installation: %w", err)
	}
	return inst, nil
}

func (s *DefaultInstallationService) Delete(ctx context.Context, id string) error {
	if err := s.Events.DeleteByReferenceID(ctx, id); err != nil {
		return fmt.Errorf("failed to remove scheduled events: %w", err)
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete installation: %w", err)
	}
	return nil
}

func (s *DefaultInstallationService) notify(ctx context.Context, accountID, role, nType, title, body string, data map[string]string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.Notify(ctx, accountID, role, nType, title, body, data); err != nil {
		utils.GetLogger().Warn("Failed to notify account",
			zap.String("accountID", accountID), zap.Error(err))
	}
}
