package availability

import (
	"context"

	"zeefreeze/models"
)

// AvailabilityService exposes the availability model to HTTP handlers and to
// the assignment flow. All mutation goes through whole-set replacement;
// concurrent edits from two sessions are not reconciled (last writer wins —
// an accepted limitation of the whole-set replace convention, flagged rather
// than silently fixed).
type AvailabilityService interface {
	// GetSet loads a technician's set, seeding a default forward-looking
	// window when none exists yet.
	GetSet(ctx context.Context, technicianID string) (*models.AvailabilityDTO, error)
	// ReplaceSet swaps the whole set as submitted by a UI session.
	ReplaceSet(ctx context.Context, technicianID string, days models.AvailabilitySet) (*models.AvailabilityDTO, error)
	// ToggleSlot applies a single (date, slot) toggle and persists the result.
	ToggleSlot(ctx context.Context, technicianID, date, slot string) (*models.AvailabilityDTO, error)
	// ToggleDay applies a whole-day toggle and persists the result.
	ToggleDay(ctx context.Context, technicianID, date string) (*models.AvailabilityDTO, error)
	// SlotOpen answers the booking flow's read-only question.
	SlotOpen(ctx context.Context, technicianID, date, slot string) (bool, error)
	// OpenDaysInRange counts a technician's open days within [start, end].
	OpenDaysInRange(ctx context.Context, technicianID, start, end string) (int, error)
}
