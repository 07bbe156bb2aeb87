package models

import "time"

// Intervention statuses.
const (
	InterventionPending    = "pending"
	InterventionAssigned   = "assigned"
	InterventionInProgress = "in_progress"
	InterventionCompleted  = "completed"
	InterventionCancelled  = "cancelled"
)

// Intervention is a corrective maintenance job on client equipment.
type Intervention struct {
	ID           string    `bson:"id" json:"id"`
	ClientID     string    `bson:"clientId" json:"clientId"`
	TechnicianID string    `bson:"technicianId,omitempty" json:"technicianId,omitempty"`
	Date         string    `bson:"date,omitempty" json:"date,omitempty"` // "YYYY-MM-DD", set on assignment
	Slot         string    `bson:"slot,omitempty" json:"slot,omitempty"` // "morning" or "afternoon"
	Status       string    `bson:"status" json:"status"`
	Equipment    string    `bson:"equipment" json:"equipment"` // e.g., "cold room", "freezer cabinet"
	Description  string    `bson:"description" json:"description"`
	Priority     string    `bson:"priority" json:"priority"` // "low", "normal", "urgent"
	Location     string    `bson:"location" json:"location"`
	ReportURL    string    `bson:"reportUrl,omitempty" json:"reportUrl,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CreateInterventionRequest is the client-facing creation payload.
type CreateInterventionRequest struct {
	Equipment   string `json:"equipment" binding:"required"`
	Description string `json:"description" binding:"required"`
	Priority    string `json:"priority"`
	Location    string `json:"location" binding:"required"`
}

// AssignInterventionRequest books a technician onto a (date, slot) pair.
type AssignInterventionRequest struct {
	TechnicianID string `json:"technicianId" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Slot         string `json:"slot" binding:"required"`
}
