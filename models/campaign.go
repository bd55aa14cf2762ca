package models

import "time"

// Campaign is an owner-defined discount on a field's hourly rate for a
// range of calendar dates.
type Campaign struct {
	ID              string    `bson:"id" json:"id"`
	FieldID         string    `bson:"fieldId" json:"fieldId"`
	OwnerID         string    `bson:"ownerId" json:"ownerId"`
	Name            string    `bson:"name" json:"name"`
	DiscountPercent int       `bson:"discountPercent" json:"discountPercent"` // 1..90
	StartDate       string    `bson:"startDate" json:"startDate"`             // "YYYY-MM-DD", inclusive
	EndDate         string    `bson:"endDate" json:"endDate"`                 // "YYYY-MM-DD", inclusive
	Active          bool      `bson:"active" json:"active"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Covers reports whether the campaign applies to the given booking date.
func (c *Campaign) Covers(date string) bool {
	return c.Active && c.StartDate <= date && date <= c.EndDate
}

// CampaignRequest is the owner payload for creating a campaign.
type CampaignRequest struct {
	FieldID         string `json:"fieldId" binding:"required"`
	Name            string `json:"name" binding:"required"`
	DiscountPercent int    `json:"discountPercent" binding:"required"`
	StartDate       string `json:"startDate" binding:"required"`
	EndDate         string `json:"endDate" binding:"required"`
}
