package models

import "time"

// Account roles.
const (
	RoleAdmin      = "admin"
	RoleClient     = "client"
	RoleTechnician = "technician"
)

// User is a client or admin account. Technicians have their own collection.
type User struct {
	ID           string    `bson:"id" json:"id,omitempty"`
	Name         string    `bson:"name" json:"name,omitempty"`
	Email        string    `bson:"email" json:"email,omitempty"`
	PhoneNumber  string    `bson:"phoneNumber" json:"phoneNumber,omitempty"`
	Role         string    `bson:"role" json:"role,omitempty"` // "admin" or "client"
	Company      string    `bson:"company,omitempty" json:"company,omitempty"`
	Address      string    `bson:"address,omitempty" json:"address,omitempty"`
	Security     Security  `bson:"security" json:"security,omitzero"`
	FCMToken     string    `bson:"fcmToken,omitempty" json:"fcmToken,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// UserRegistration is the signup payload for clients.
type UserRegistration struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password" binding:"required,min=8"`
	Company     string `json:"company"`
	Address     string `json:"address"`
}

// Credentials is the login payload shared by all account types.
type Credentials struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
