package models

import "time"

// Scheduled event types.
const (
	EventInstallation = "installation"
	EventMaintenance  = "maintenance"
	EventIntervention = "intervention"
)

// ScheduledEvent is a booked commitment on a technician's agenda. Events live
// in their own collection and are never merged into the availability set: the
// two calendars (offered availability vs. booked commitments) may be displayed
// together but are kept as separate sets.
type ScheduledEvent struct {
	ID           string    `bson:"id" json:"id"`
	TechnicianID string    `bson:"technicianId" json:"technicianId"`
	Date         string    `bson:"date" json:"date"`   // "YYYY-MM-DD"
	Start        int       `bson:"start" json:"start"` // minutes from midnight (e.g., 540 for 9:00 AM)
	End          int       `bson:"end" json:"end"`     // minutes from midnight
	Type         string    `bson:"type" json:"type"`   // "installation", "maintenance" or "intervention"
	ReferenceID  string    `bson:"referenceId" json:"referenceId"` // the intervention/installation this covers
	Location     string    `bson:"location" json:"location"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
