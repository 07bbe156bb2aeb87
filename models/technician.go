package models

import "time"

// TechnicianProfile groups the public-facing fields of a technician document.
type TechnicianProfile struct {
	Name        string   `bson:"name" json:"name,omitempty"`
	Email       string   `bson:"email" json:"email,omitempty"`
	PhoneNumber string   `bson:"phoneNumber" json:"phoneNumber,omitempty"`
	Status      string   `bson:"status" json:"status,omitempty"` // "pending", "active", "suspended"
	Skills      []string `bson:"skills" json:"skills,omitempty"` // e.g., ["cold_rooms", "vmc", "heat_pumps"]
	Zone        string   `bson:"zone" json:"zone,omitempty"`     // service area label
	Rating      float64  `bson:"rating" json:"rating,omitempty"`
}

// Security holds credentials; hashes stay out of JSON, secrets stay out of bson.
type Security struct {
	Password     string `bson:"-" json:"password,omitempty"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	Token        string `bson:"-" json:"token,omitempty"`
	TokenHash    string `bson:"tokenHash" json:"-"`
}

// Technician is a field technician account.
type Technician struct {
	ID             string            `bson:"id" json:"id,omitempty"`
	Profile        TechnicianProfile `bson:"profile" json:"profile"`
	Security       Security          `bson:"security" json:"security,omitzero"`
	FCMToken       string            `bson:"fcmToken,omitempty" json:"fcmToken,omitempty"`
	CompletedJobs  int               `bson:"completedJobs" json:"completedJobs,omitempty"`
	CreatedAt      time.Time         `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt      time.Time         `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// TechnicianRegistration is the signup payload.
type TechnicianRegistration struct {
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	PhoneNumber string   `json:"phoneNumber" binding:"required"`
	Password    string   `json:"password" binding:"required,min=8"`
	Skills      []string `json:"skills"`
	Zone        string   `json:"zone"`
}

// TechnicianMatch pairs a technician with their open-day count for a window.
type TechnicianMatch struct {
	Technician    Technician `json:"technician"`
	AvailableDays int        `json:"availableDays"`
}
