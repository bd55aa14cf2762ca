package admin

import (
	"context"
	"errors"

	complaintRepo "meydancha/database/repository/complaint"
	fieldRepo "meydancha/database/repository/field"
	userRepo "meydancha/database/repository/user"
	"meydancha/models"
	"meydancha/services/notification"
	"meydancha/utils"

	"go.uber.org/zap"
)

// ErrInvalidStatus is returned for an unknown moderation status value.
var ErrInvalidStatus = errors.New("invalid status")

// AdminService covers platform moderation: owner approval, complaint
// handling, and field blocking.
type AdminService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	ListPendingOwners(ctx context.Context) ([]models.User, error)
	// SetOwnerStatus approves or rejects a pending owner account.
	SetOwnerStatus(ctx context.Context, ownerID, status string) (*models.User, error)
	ListComplaints(ctx context.Context, status string) ([]models.Complaint, error)
	// ResolveComplaint closes a complaint as resolved or dismissed.
	ResolveComplaint(ctx context.Context, id, status, resolution string) (*models.Complaint, error)
	// SetFieldBlocked hides a field from booking, or restores it.
	SetFieldBlocked(ctx context.Context, fieldID string, blocked bool, reason string) error
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	UserRepo      userRepo.UserRepository
	FieldRepo     fieldRepo.FieldRepository
	ComplaintRepo complaintRepo.ComplaintRepository
	Notifier      notification.NotificationService
}

var _ AdminService = (*DefaultAdminService)(nil)

func (s *DefaultAdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.UserRepo.GetAll(ctx)
}

func (s *DefaultAdminService) ListPendingOwners(ctx context.Context) ([]models.User, error) {
	return s.UserRepo.ListOwnersByStatus(ctx, models.OwnerStatusPending)
}

func (s *DefaultAdminService) SetOwnerStatus(ctx context.Context, ownerID, status string) (*models.User, error) {
	if status != models.OwnerStatusApproved && status != models.OwnerStatusRejected {
		return nil, ErrInvalidStatus
	}

	u, err := s.UserRepo.SetOwnerStatus(ctx, ownerID, status)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, ownerID, "Owner application "+status,
		"Your field owner application has been "+status+".")
	utils.GetLogger().Info("owner status changed",
		zap.String("ownerID", ownerID), zap.String("status", status))
	return u, nil
}

func (s *DefaultAdminService) ListComplaints(ctx context.Context, status string) ([]models.Complaint, error) {
	return s.ComplaintRepo.ListByStatus(ctx, status)
}

func (s *DefaultAdminService) ResolveComplaint(ctx context.Context, id, status, resolution string) (*models.Complaint, error) {
	if status != models.ComplaintStatusResolved && status != models.ComplaintStatusDismissed {
		return nil, ErrInvalidStatus
	}

	c, err := s.ComplaintRepo.Resolve(ctx, id, status, resolution)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, c.UserID, "Complaint "+status, resolution)
	utils.GetLogger().Info("complaint closed",
		zap.String("complaintID", id), zap.String("status", status))
	return c, nil
}

func (s *DefaultAdminService) SetFieldBlocked(ctx context.Context, fieldID string, blocked bool, reason string) error {
	if err := s.FieldRepo.SetBlocked(ctx, fieldID, blocked, reason); err != nil {
		return err
	}
	utils.GetLogger().Info("field block state changed",
		zap.String("fieldID", fieldID), zap.Bool("blocked", blocked))
	return nil
}

// notify records an in-app notification; moderation never fails on a
// notification error.
func (s *DefaultAdminService) notify(ctx context.Context, userID, title, body string) {
	if s.Notifier == nil {
		return
	}
	if _, err := s.Notifier.Notify(ctx, userID, title, body); err != nil {
		utils.GetLogger().Warn("moderation notification failed",
			zap.String("userID", userID), zap.Error(err))
	}
}
