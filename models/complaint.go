package models

import "time"

// Complaint states.
const (
	ComplaintStatusOpen      = "open"
	ComplaintStatusResolved  = "resolved"
	ComplaintStatusDismissed = "dismissed"
)

// Complaint is a player report against a field, handled by admins.
type Complaint struct {
	ID         string    `bson:"id" json:"id"`
	FieldID    string    `bson:"fieldId" json:"fieldId"`
	UserID     string    `bson:"userId" json:"userId"`
	Subject    string    `bson:"subject" json:"subject"`
	Body       string    `bson:"body" json:"body"`
	Status     string    `bson:"status" json:"status"`
	Resolution string    `bson:"resolution,omitempty" json:"resolution,omitempty"` // admin note
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ComplaintRequest is the player payload for filing a complaint.
type ComplaintRequest struct {
	FieldID string `json:"fieldId" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
}
