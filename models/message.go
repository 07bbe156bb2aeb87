package models

import "time"

// Message is one entry in a client/technician/admin conversation thread.
type Message struct {
	ID          string    `bson:"id" json:"id"`
	ThreadID    string    `bson:"threadId" json:"threadId"`
	SenderID    string    `bson:"senderId" json:"senderId"`
	SenderRole  string    `bson:"senderRole" json:"senderRole"`
	RecipientID string    `bson:"recipientId" json:"recipientId"`
	Body        string    `bson:"body" json:"body"`
	Read        bool      `bson:"read" json:"read"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// SendMessageRequest is the payload for posting into a thread.
type SendMessageRequest struct {
	RecipientID string `json:"recipientId" binding:"required"`
	Body        string `json:"body" binding:"required"`
}
