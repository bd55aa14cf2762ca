package models

import "time"

// Field represents a bookable sports venue.
type Field struct {
	ID           string    `bson:"id" json:"id"`
	OwnerID      string    `bson:"ownerId" json:"ownerId"`
	Name         string    `bson:"name" json:"name"`
	Sport        string    `bson:"sport" json:"sport"` // e.g. "football", "basketball"
	City         string    `bson:"city" json:"city"`
	Address      string    `bson:"address" json:"address"`
	Description  string    `bson:"description,omitempty" json:"description,omitempty"`
	PricePerHour int64     `bson:"pricePerHour" json:"pricePerHour"` // minor currency units per hour, always > 0
	RatingAvg    float64   `bson:"ratingAvg" json:"ratingAvg"`
	RatingCount  int       `bson:"ratingCount" json:"ratingCount"`
	Blocked      bool      `bson:"blocked" json:"blocked"`
	BlockReason  string    `bson:"blockReason,omitempty" json:"blockReason,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// FieldFilter narrows public field searches.
type FieldFilter struct {
	City  string `form:"city" json:"city"`
	Sport string `form:"sport" json:"sport"`
}

// FieldCreateRequest is the owner payload for registering a venue.
type FieldCreateRequest struct {
	Name         string `json:"name" binding:"required"`
	Sport        string `json:"sport" binding:"required"`
	City         string `json:"city" binding:"required"`
	Address      string `json:"address" binding:"required"`
	Description  string `json:"description"`
	PricePerHour int64  `json:"pricePerHour" binding:"required"`
}

// FieldUpdateRequest carries the mutable venue fields. Pointer fields
// distinguish "leave unchanged" from explicit zero values.
type FieldUpdateRequest struct {
	Name         *string `json:"name,omitempty"`
	Sport        *string `json:"sport,omitempty"`
	City         *string `json:"city,omitempty"`
	Address      *string `json:"address,omitempty"`
	Description  *string `json:"description,omitempty"`
	PricePerHour *int64  `json:"pricePerHour,omitempty"`
}
