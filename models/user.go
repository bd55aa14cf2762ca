package models

import "time"

// User roles.
const (
	RolePlayer = "player"
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
)

// Owner approval states. Players and admins always carry OwnerStatusNone.
const (
	OwnerStatusNone     = ""
	OwnerStatusPending  = "pending"
	OwnerStatusApproved = "approved"
	OwnerStatusRejected = "rejected"
)

// User represents a platform account: player, field owner, or admin.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	PhoneNumber  string    `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Role         string    `bson:"role" json:"role"`                               // "player", "owner", or "admin"
	OwnerStatus  string    `bson:"ownerStatus,omitempty" json:"ownerStatus,omitempty"` // owner approval state, empty for players
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsApprovedOwner reports whether the user may manage fields.
func (u *User) IsApprovedOwner() bool {
	return u.Role == RoleOwner && u.OwnerStatus == OwnerStatusApproved
}

// UserRegistrationRequest is the payload for account creation.
type UserRegistrationRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"` // "player" (default) or "owner"
}

// UserUpdateRequest carries the mutable profile fields.
type UserUpdateRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}
