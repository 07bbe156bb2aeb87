// File: services/intervention/assign.go
package intervention

import (
	"context"
	"fmt"
	"time"

	"zeefreeze/models"
	"zeefreeze/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Half-day windows on the agenda, minutes from midnight.
const (
	morningStart   = 8 * 60
	morningEnd     = 12 * 60
	afternoonStart = 13 * 60
	afternoonEnd   = 17 * 60
)

// Assign books a technician onto the requested (date, slot). The slot must be
// open in the technician's availability set; booking does NOT close the slot —
// availability is what the technician offers, the agenda tracks what is
// actually booked, and the two sets stay separate.
func (s *DefaultInterventionService) Assign(ctx context.Context, id string, req models.AssignInterventionRequest) (*models.Intervention, error) {
	iv, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if iv.Status != models.InterventionPending && iv.Status != models.InterventionAssigned {
		return nil, fmt.Errorf("intervention in status %q cannot be assigned", iv.Status)
	}

	open, err := s.Availability.SlotOpen(ctx, req.TechnicianID, req.Date, req.Slot)
	if err != nil {
		return nil, err
	}
	if !open {
		return nil, fmt.Errorf("technician %s is not available on %s (%s)", req.TechnicianID, req.Date, req.Slot)
	}

	// Reassignment clears any previous agenda entry for this job.
	if iv.TechnicianID != "" {
		if err := s.Events.DeleteByReferenceID(ctx, iv.ID); err != nil {
			return nil, fmt.Errorf("failed to clear previous agenda entry: %w", err)
		}
	}

	start, end := morningStart, morningEnd
	if req.Slot == models.SlotAfternoon {
		start, end = afternoonStart, afternoonEnd
	}
	event := models.ScheduledEvent{
		ID:           uuid.New().String(),
		TechnicianID: req.TechnicianID,
		Date:         req.Date,
		Start:        start,
		End:          end,
		Type:         models.EventIntervention,
		ReferenceID:  iv.ID,
		Location:     iv.Location,
		CreatedAt:    time.Now(),
	}
	if err := s.Events.Create(ctx, &event); err != nil {
		return nil, fmt.Errorf("failed to create agenda entry: %w", err)
	}

	iv.TechnicianID = req.TechnicianID
	iv.Date = req.Date
	iv.Slot = req.Slot
	iv.Status = models.InterventionAssigned
	iv.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, iv); err != nil {
		return nil, fmt.Errorf("failed to update intervention: %w", err)
	}

	s.notify(ctx, req.TechnicianID, models.RoleTechnician, "assignment",
		"New intervention assigned",
		fmt.Sprintf("%s on %s (%s) at %s", iv.Equipment, req.Date, req.Slot, iv.Location),
		map[string]string{"interventionId": iv.ID})
	return iv, nil
}

// Start moves an assigned intervention to in_progress. Only the assigned
// technician may start it.
func (s *DefaultInterventionService) Start(ctx context.Context, id, technicianID string) (*models.Intervention, error) {
	iv, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if iv.TechnicianID != technicianID {
		return nil, fmt.Errorf("intervention is not assigned to this technician")
	}
	if iv.Status != models.InterventionAssigned {
		return nil, fmt.Errorf("intervention in status %q cannot be started", iv.Status)
	}

	iv.Status = models.InterventionInProgress
	iv.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, iv); err != nil {
		return nil, fmt.Errorf("failed to update intervention: %w", err)
	}
	return iv, nil
}

// Complete closes out an in-progress intervention, optionally attaching the
// uploaded report, and notifies the client.
func (s *DefaultInterventionService) Complete(ctx context.Context, id, technicianID, reportURL string) (*models.Intervention, error) {
	iv, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if iv.TechnicianID != technicianID {
		return nil, fmt.Errorf("intervention is not assigned to this technician")
	}
	if iv.Status != models.InterventionInProgress && iv.Status != models.InterventionAssigned {
		return nil, fmt.Errorf("intervention in status %q cannot be completed", iv.Status)
	}

	iv.Status = models.InterventionCompleted
	if reportURL != "" {
		iv.ReportURL = reportURL
	}
	iv.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, iv); err != nil {
		return nil, fmt.Errorf("failed to update intervention: %w", err)
	}

	s.notify(ctx, iv.ClientID, models.RoleClient, "intervention_completed",
		"Intervention completed",
		fmt.Sprintf("Work on %s is done", iv.Equipment),
		map[string]string{"interventionId": iv.ID})
	return iv, nil
}

// Cancel aborts a not-yet-completed intervention and clears its agenda entry.
func (s *DefaultInterventionService) Cancel(ctx context.Context, id string) (*models.Intervention, error) {
	iv, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if iv.Status == models.InterventionCompleted {
		return nil, fmt.Errorf("a completed intervention cannot be cancelled")
	}

	if err := s.Events.DeleteByReferenceID(ctx, iv.ID); err != nil {
		return nil, fmt.Errorf("failed to clear agenda entry: %w", err)
	}

	previousTechnician := iv.TechnicianID
	iv.Status = models.InterventionCancelled
	iv.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, iv); err != nil {
		return nil, fmt.Errorf("failed to update intervention: %w", err)
	}

	if previousTechnician != "" {
		s.notify(ctx, previousTechnician, models.RoleTechnician, "assignment_cancelled",
			"Intervention cancelled",
			fmt.Sprintf("%s on %s was cancelled", iv.Equipment, iv.Date),
			map[string]string{"interventionId": iv.ID})
	}
	return iv, nil
}

// notify is best-effort: a failed notification never fails the workflow.
func (s *DefaultInterventionService) notify(ctx context.Context, accountID, role, nType, title, body string, data map[string]string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.Notify(ctx, accountID, role, nType, title, body, data); err != nil {
		utils.GetLogger().Warn("Failed to notify account",
			zap.String("accountID", accountID), zap.Error(err))
	}
}
