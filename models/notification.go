package models

import "time"

// Notification is an in-app message delivered to a user.
type Notification struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Title     string    `bson:"title" json:"title"`
	Body      string    `bson:"body" json:"body"`
	Read      bool      `bson:"read" json:"read"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// ReminderPayload is the asynq task payload for a booking reminder.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	UserID    string `json:"userId"`
	FieldName string `json:"fieldName"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
}
