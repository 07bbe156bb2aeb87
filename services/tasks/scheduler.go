// File: services/tasks/scheduler.go
package tasks

import (
	"fmt"
	"time"

	"zeefreeze/models"
	"zeefreeze/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ReminderScheduler enqueues reminder tasks for future delivery.
type ReminderScheduler interface {
	// ScheduleVisitReminder notifies the technician the evening before a
	// booked visit.
	ScheduleVisitReminder(technicianID string, event models.ScheduledEvent) error
	// ScheduleMaintenanceReminder notifies a client when equipment is due for
	// its periodic check.
	ScheduleMaintenanceReminder(clientID, equipment string, dueAt time.Time) error
}

// AsynqReminderScheduler is the production implementation.
type AsynqReminderScheduler struct {
	Client *asynq.Client
}

func NewAsynqReminderScheduler(client *asynq.Client) (*AsynqReminderScheduler, error) {
	if client == nil {
		return nil, fmt.Errorf("reminder scheduler initialization error: asynq client is nil")
	}
	return &AsynqReminderScheduler{Client: client}, nil
}

func (s *AsynqReminderScheduler) enqueue(payload models.ReminderPayload, fireAt time.Time) error {
	if !fireAt.After(time.Now()) {
		return fmt.Errorf("reminder fire time %s is in the past", fireAt)
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	info, err := s.Client.Enqueue(task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	utils.GetLogger().Debug("Enqueued reminder",
		zap.String("taskID", info.ID), zap.Time("fireAt", fireAt))
	return nil
}

func (s *AsynqReminderScheduler) ScheduleVisitReminder(technicianID string, event models.ScheduledEvent) error {
	visitDay, err := time.ParseInLocation(models.DateLayout, event.Date, time.Local)
	if err != nil {
		return fmt.Errorf("invalid event date %q: %w", event.Date, err)
	}
	// 18:00 the evening before.
	fireAt := visitDay.AddDate(0, 0, -1).Add(18 * time.Hour)

	payload := models.ReminderPayload{
		ReminderID: uuid.New().String(),
		Target:     "technician",
		ID:         technicianID,
		Title:      "Visit tomorrow",
		Body:       fmt.Sprintf("You have a %s visit on %s at %s", event.Type, event.Date, event.Location),
		FireDate:   fireAt.Format(time.RFC3339),
	}
	return s.enqueue(payload, fireAt)
}

func (s *AsynqReminderScheduler) ScheduleMaintenanceReminder(clientID, equipment string, dueAt time.Time) error {
	payload := models.ReminderPayload{
		ReminderID: uuid.New().String(),
		Target:     "user",
		ID:         clientID,
		Title:      "Maintenance due",
		Body:       fmt.Sprintf("Your %s is due for its periodic maintenance check", equipment),
		FireDate:   dueAt.Format(time.RFC3339),
	}
	return s.enqueue(payload, dueAt)
}
