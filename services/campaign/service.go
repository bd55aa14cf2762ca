package campaign

import (
	"context"
	"errors"
	"time"

	campaignRepo "meydancha/database/repository/campaign"
	fieldRepo "meydancha/database/repository/field"
	"meydancha/models"
	"meydancha/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrInvalidDiscount is returned for discounts outside 1..90 percent.
	ErrInvalidDiscount = errors.New("discountPercent must be between 1 and 90")
	// ErrInvalidDateRange is returned when endDate precedes startDate or a
	// date is malformed.
	ErrInvalidDateRange = errors.New("invalid campaign date range")
	// ErrNotAllowed is returned when the actor does not own the field.
	ErrNotAllowed = errors.New("not allowed")
)

// CampaignService defines owner-managed discount campaigns.
type CampaignService interface {
	Create(ctx context.Context, ownerID string, req models.CampaignRequest) (*models.Campaign, error)
	ListByField(ctx context.Context, fieldID string) ([]models.Campaign, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Campaign, error)
	// SetActive toggles a campaign. Owners manage their own; admins may
	// deactivate any campaign.
	SetActive(ctx context.Context, id, actorID, actorRole string, active bool) (*models.Campaign, error)
	Delete(ctx context.Context, id, actorID, actorRole string) error
}

// DefaultCampaignService is the production implementation.
type DefaultCampaignService struct {
	Repo      campaignRepo.CampaignRepository
	FieldRepo fieldRepo.FieldRepository
}

var _ CampaignService = (*DefaultCampaignService)(nil)

func (s *DefaultCampaignService) Create(ctx context.Context, ownerID string, req models.CampaignRequest) (*models.Campaign, error) {
	if req.DiscountPercent < 1 || req.DiscountPercent > 90 {
		return nil, ErrInvalidDiscount
	}
	if !validDateRange(req.StartDate, req.EndDate) {
		return nil, ErrInvalidDateRange
	}

	field, err := s.FieldRepo.GetByID(ctx, req.FieldID)
	if err != nil {
		return nil, err
	}
	if field.OwnerID != ownerID {
		return nil, ErrNotAllowed
	}

	now := time.Now()
	c := &models.Campaign{
		ID:              uuid.New().String(),
		FieldID:         req.FieldID,
		OwnerID:         ownerID,
		Name:            req.Name,
		DiscountPercent: req.DiscountPercent,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("campaign created",
		zap.String("campaignID", c.ID),
		zap.String("fieldID", c.FieldID),
		zap.Int("discountPercent", c.DiscountPercent))
	return c, nil
}

func (s *DefaultCampaignService) ListByField(ctx context.Context, fieldID string) ([]models.Campaign, error) {
	return s.Repo.ListByField(ctx, fieldID)
}

func (s *DefaultCampaignService) ListByOwner(ctx context.Context, ownerID string) ([]models.Campaign, error) {
	return s.Repo.ListByOwner(ctx, ownerID)
}

func (s *DefaultCampaignService) SetActive(ctx context.Context, id, actorID, actorRole string, active bool) (*models.Campaign, error) {
	c, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.manageAllowed(c, actorID, actorRole, active) {
		return nil, ErrNotAllowed
	}
	return s.Repo.SetActive(ctx, id, active)
}

func (s *DefaultCampaignService) Delete(ctx context.Context, id, actorID, actorRole string) error {
	c, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if actorRole != models.RoleAdmin && c.OwnerID != actorID {
		return ErrNotAllowed
	}
	return s.Repo.Delete(ctx, id)
}

// manageAllowed: owners manage their own campaigns either way; admins may
// only switch campaigns off, activation stays with the owner.
func (s *DefaultCampaignService) manageAllowed(c *models.Campaign, actorID, actorRole string, active bool) bool {
	if c.OwnerID == actorID {
		return true
	}
	return actorRole == models.RoleAdmin && !active
}

func validDateRange(start, end string) bool {
	s, err := time.Parse(utils.DateFormat, start)
	if err != nil {
		return false
	}
	e, err := time.Parse(utils.DateFormat, end)
	if err != nil {
		return false
	}
	return !e.Before(s)
}
