package user

import (
	"context"
	"fmt"
	"time"

	"meydancha/models"
	"meydancha/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func (s *DefaultUserService) GetProfile(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultUserService) UpdateProfile(ctx context.Context, id string, req models.UserUpdateRequest) (*models.User, error) {
	set := map[string]interface{}{"updatedAt": time.Now()}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.PhoneNumber != "" {
		set["phoneNumber"] = req.PhoneNumber
	}
	return s.Repo.Update(ctx, id, set)
}

// ChangePassword verifies the current password before storing a new hash,
// then revokes the active session so the client must sign in again.
func (s *DefaultUserService) ChangePassword(ctx context.Context, id, current, next string) error {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(current)); err != nil {
		return ErrInvalidCredentials
	}
	if err := verifyPasswordComplexity(next); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("failed to hash new password", zap.Error(err))
		return fmt.Errorf("password change failed, please try again")
	}
	if err := s.Repo.UpdatePasswordHash(ctx, id, string(hash)); err != nil {
		return err
	}
	return s.SignOut(ctx, id)
}

// DeleteAccount removes the account and revokes its session.
func (s *DefaultUserService) DeleteAccount(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.SignOut(ctx, id); err != nil {
		utils.GetLogger().Warn("account deleted but session revoke failed",
			zap.String("userID", id), zap.Error(err))
	}
	utils.GetLogger().Info("account deleted", zap.String("userID", id))
	return nil
}
