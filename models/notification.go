package models

import "time"

// Notification is a persisted in-app notification, optionally mirrored as an
// FCM push. Clients pull these on demand; the server never polls on their
// behalf.
type Notification struct {
	ID          string            `bson:"id" json:"id"`
	AccountID   string            `bson:"accountId" json:"accountId"` // user or technician ID
	AccountRole string            `bson:"accountRole" json:"accountRole"`
	Type        string            `bson:"type" json:"type"` // e.g., "assignment", "payment_confirmation", "reminder"
	Title       string            `bson:"title" json:"title"`
	Body        string            `bson:"body" json:"body"`
	Data        map[string]string `bson:"data,omitempty" json:"data,omitempty"`
	Read        bool              `bson:"read" json:"read"`
	CreatedAt   time.Time         `bson:"createdAt" json:"createdAt"`
}

// ReminderPayload is the asynq task payload for scheduled reminders.
type ReminderPayload struct {
	ReminderID string `json:"reminderId"`
	Target     string `json:"target"` // "user" or "technician"
	ID         string `json:"id"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	FireDate   string `json:"fireDate"`
}
