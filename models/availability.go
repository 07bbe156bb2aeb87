package models

// Slot names as they appear on the wire. The mapping of clock times to these
// two buckets is a display concern and is never stored.
const (
	SlotMorning   = "morning"
	SlotAfternoon = "afternoon"
)

// DateLayout is the calendar-date collation key format used across the platform.
const DateLayout = "2006-01-02"

// SlotFlags holds the open/closed state of the two half-day windows.
type SlotFlags struct {
	Morning   bool `bson:"morning" json:"morning"`
	Afternoon bool `bson:"afternoon" json:"afternoon"`
}

// Any reports whether at least one half-day window is open.
func (f SlotFlags) Any() bool {
	return f.Morning || f.Afternoon
}

// AvailabilityDay represents one calendar date's open/closed state for one
// technician. A day with both slots false is never materialized; it is
// equivalent to absence.
type AvailabilityDay struct {
	TechnicianID string    `bson:"technicianId" json:"technicianId,omitempty"`
	Date         string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Available    bool      `bson:"available" json:"available"`
	Slots        SlotFlags `bson:"slots" json:"slots"`
}

// AvailabilitySet is the collection of availability days for exactly one
// technician. At most one record per distinct date; no ordering guarantee —
// consumers needing chronological order sort by Date themselves.
type AvailabilitySet []AvailabilityDay

// AvailabilityDTO is the response shape for availability endpoints.
type AvailabilityDTO struct {
	TechnicianID string          `json:"technicianId"`
	Days         AvailabilitySet `json:"days"`
}

// ToggleSlotRequest is the payload for a single (date, slot) toggle.
type ToggleSlotRequest struct {
	Date string `json:"date" binding:"required"`
	Slot string `json:"slot" binding:"required"`
}

// ToggleDayRequest is the payload for a whole-day toggle.
type ToggleDayRequest struct {
	Date string `json:"date" binding:"required"`
}

// ReplaceAvailabilityRequest carries a full-set replacement from a UI session.
type ReplaceAvailabilityRequest struct {
	Days AvailabilitySet `json:"days" binding:"required"`
}
