package models

import "time"

// Booking statuses. A booking is created confirmed; cancellation and
// completion are the only transitions.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Booking represents a reservation of one field for one contiguous
// time range on one calendar date.
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	FieldID         string    `bson:"fieldId" json:"fieldId"`
	UserID          string    `bson:"userId" json:"userId"`
	Date            string    `bson:"date" json:"date"`           // "YYYY-MM-DD", time-of-day ignored
	StartTime       string    `bson:"startTime" json:"startTime"` // wall-clock "HH:MM"
	EndTime         string    `bson:"endTime" json:"endTime"`     // wall-clock "HH:MM", exclusive
	TotalPrice      int64     `bson:"totalPrice" json:"totalPrice"` // minor currency units
	Status          string    `bson:"status" json:"status"`
	ReminderEnabled bool      `bson:"reminderEnabled" json:"reminderEnabled"`
	CampaignID      string    `bson:"campaignId,omitempty" json:"campaignId,omitempty"` // discount applied at creation, if any
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// BookingRequest is the player payload for creating a reservation.
type BookingRequest struct {
	FieldID         string `json:"fieldId" binding:"required"`
	Date            string `json:"date" binding:"required"`
	StartTime       string `json:"startTime" binding:"required"`
	EndTime         string `json:"endTime" binding:"required"`
	ReminderEnabled bool   `json:"reminderEnabled"`
}

// QuoteRequest asks for the price of a candidate range without booking it.
type QuoteRequest struct {
	FieldID   string `json:"fieldId" form:"fieldId" binding:"required"`
	Date      string `json:"date" form:"date" binding:"required"`
	StartTime string `json:"startTime" form:"startTime" binding:"required"`
	EndTime   string `json:"endTime" form:"endTime" binding:"required"`
}

// Quote is the priced answer for a candidate range.
type Quote struct {
	FieldID         string `json:"fieldId"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	BasePrice       int64  `json:"basePrice"`
	DiscountPercent int    `json:"discountPercent,omitempty"`
	CampaignID      string `json:"campaignId,omitempty"`
	TotalPrice      int64  `json:"totalPrice"`
}
