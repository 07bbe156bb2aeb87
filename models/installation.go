package models

import "time"

// Installation statuses.
const (
	InstallationRequested = "requested"
	InstallationScheduled = "scheduled"
	InstallationDone      = "done"
	InstallationCancelled = "cancelled"
)

// Installation is a new-equipment installation job.
type Installation struct {
	ID           string    `bson:"id" json:"id"`
	ClientID     string    `bson:"clientId" json:"clientId"`
	TechnicianID string    `bson:"technicianId,omitempty" json:"technicianId,omitempty"`
	Date         string    `bson:"date,omitempty" json:"date,omitempty"`
	Slot         string    `bson:"slot,omitempty" json:"slot,omitempty"`
	Status       string    `bson:"status" json:"status"`
	Equipment    string    `bson:"equipment" json:"equipment"`
	SiteAddress  string    `bson:"siteAddress" json:"siteAddress"`
	Notes        string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CreateInstallationRequest is the client-facing creation payload.
type CreateInstallationRequest struct {
	Equipment   string `json:"equipment" binding:"required"`
	SiteAddress string `json:"siteAddress" binding:"required"`
	Notes       string `json:"notes"`
}
