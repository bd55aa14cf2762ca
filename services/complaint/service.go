package complaint

import (
	"context"
	"time"

	complaintRepo "meydancha/database/repository/complaint"
	fieldRepo "meydancha/database/repository/field"
	"meydancha/models"
	"meydancha/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ComplaintService is the player-facing side of complaints: filing and
// reading one's own reports. Admin moderation lives in the admin service.
type ComplaintService interface {
	Create(ctx context.Context, userID string, req models.ComplaintRequest) (*models.Complaint, error)
	ListMine(ctx context.Context, userID string) ([]models.Complaint, error)
}

// DefaultComplaintService is the production implementation.
type DefaultComplaintService struct {
	Repo      complaintRepo.ComplaintRepository
	FieldRepo fieldRepo.FieldRepository
}

var _ ComplaintService = (*DefaultComplaintService)(nil)

func (s *DefaultComplaintService) Create(ctx context.Context, userID string, req models.ComplaintRequest) (*models.Complaint, error) {
	if _, err := s.FieldRepo.GetByID(ctx, req.FieldID); err != nil {
		return nil, err
	}

	now := time.Now()
	c := &models.Complaint{
		ID:        uuid.New().String(),
		FieldID:   req.FieldID,
		UserID:    userID,
		Subject:   req.Subject,
		Body:      req.Body,
		Status:    models.ComplaintStatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("complaint filed",
		zap.String("complaintID", c.ID), zap.String("fieldID", c.FieldID))
	return c, nil
}

func (s *DefaultComplaintService) ListMine(ctx context.Context, userID string) ([]models.Complaint, error) {
	return s.Repo.ListByUser(ctx, userID)
}
