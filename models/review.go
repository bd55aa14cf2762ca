package models

import "time"

// Review is a player's rating of a field after a completed booking.
type Review struct {
	ID        string    `bson:"id" json:"id"`
	FieldID   string    `bson:"fieldId" json:"fieldId"`
	UserID    string    `bson:"userId" json:"userId"`
	Rating    int       `bson:"rating" json:"rating"` // 1..5
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// ReviewRequest is the payload for leaving a review.
type ReviewRequest struct {
	FieldID string `json:"fieldId" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}
