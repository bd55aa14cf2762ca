package user

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"meydancha/models"
	"meydancha/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// verifyPasswordComplexity checks that the password is long enough and mixes
// letter cases with at least one digit.
func verifyPasswordComplexity(pw string) error {
	if len(pw) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	if !regexp.MustCompile(`[A-Z]`).MatchString(pw) {
		return fmt.Errorf("password must include at least one uppercase letter")
	}
	if !regexp.MustCompile(`[a-z]`).MatchString(pw) {
		return fmt.Errorf("password must include at least one lowercase letter")
	}
	if !regexp.MustCompile(`[0-9]`).MatchString(pw) {
		return fmt.Errorf("password must include at least one number")
	}
	return nil
}

// Register creates a new account. Accounts registered as owners start in
// the pending approval state and cannot manage fields until an admin
// approves them.
func (s *DefaultUserService) Register(ctx context.Context, req models.UserRegistrationRequest) (*AuthResponse, error) {
	logger := utils.GetLogger()

	role := req.Role
	if role == "" {
		role = models.RolePlayer
	}
	if role != models.RolePlayer && role != models.RoleOwner {
		return nil, ErrInvalidRole
	}

	if err := verifyPasswordComplexity(req.Password); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		logger.Error("failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	now := time.Now()
	u := &models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		PhoneNumber:  req.PhoneNumber,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if role == models.RoleOwner {
		u.OwnerStatus = models.OwnerStatusPending
	}

	if err := s.Repo.Create(ctx, u); err != nil {
		logger.Error("failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	resp, err := s.issueSession(ctx, u)
	if err != nil {
		return nil, err
	}

	logger.Info("user registered",
		zap.String("userID", u.ID), zap.String("role", u.Role))
	return resp, nil
}

// SignIn verifies credentials and issues a fresh session token, replacing
// any previous session for the account.
func (s *DefaultUserService) SignIn(ctx context.Context, email, password string) (*AuthResponse, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		utils.GetLogger().Error("sign-in lookup failed", zap.Error(err))
		return nil, fmt.Errorf("sign in failed, please try again")
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueSession(ctx, u)
}

// SignOut deletes the account's session entry so the outstanding token is
// rejected by the auth middleware even before it expires.
func (s *DefaultUserService) SignOut(ctx context.Context, userID string) error {
	cacheKey := utils.AuthCachePrefix + userID
	if err := utils.GetAuthCacheClient().Del(ctx, cacheKey).Err(); err != nil {
		utils.GetLogger().Error("failed to revoke session",
			zap.String("userID", userID), zap.Error(err))
		return fmt.Errorf("sign out failed, please try again")
	}
	return nil
}

// issueSession signs a token and records its hash as the account's single
// active session.
func (s *DefaultUserService) issueSession(ctx context.Context, u *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, u.Role, s.tokenTTL())
	if err != nil {
		utils.GetLogger().Error("failed to generate auth token",
			zap.String("userID", u.ID), zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	cacheKey := utils.AuthCachePrefix + u.ID
	if err := utils.GetAuthCacheClient().Set(ctx, cacheKey, utils.HashToken(token), s.tokenTTL()).Err(); err != nil {
		utils.GetLogger().Error("failed to store session hash",
			zap.String("userID", u.ID), zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	return &AuthResponse{
		ID:          u.ID,
		Token:       token,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		OwnerStatus: u.OwnerStatus,
	}, nil
}
