package user

import (
	"context"
	"time"

	userRepo "meydancha/database/repository/user"
	"meydancha/models"
)

// AuthResponse carries the signed token and the public account details
// returned after registration or sign-in.
type AuthResponse struct {
	ID          string `json:"id"`
	Token       string `json:"token"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	OwnerStatus string `json:"ownerStatus,omitempty"`
}

// UserService defines account management and authentication.
type UserService interface {
	Register(ctx context.Context, req models.UserRegistrationRequest) (*AuthResponse, error)
	SignIn(ctx context.Context, email, password string) (*AuthResponse, error)
	// SignOut revokes the account's active session token.
	SignOut(ctx context.Context, userID string) error
	GetProfile(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, req models.UserUpdateRequest) (*models.User, error)
	ChangePassword(ctx context.Context, id, current, next string) error
	DeleteAccount(ctx context.Context, id string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	TokenTTL time.Duration
}

var _ UserService = (*DefaultUserService)(nil)

func (s *DefaultUserService) tokenTTL() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return 24 * time.Hour
}
