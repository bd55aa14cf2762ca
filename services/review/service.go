package review

import (
	"context"
	"errors"
	"time"

	bookingRepo "meydancha/database/repository/booking"
	fieldRepo "meydancha/database/repository/field"
	reviewRepo "meydancha/database/repository/review"
	"meydancha/models"
	"meydancha/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrInvalidRating is returned for ratings outside 1..5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	// ErrNoPastBooking is returned when the reviewer has never finished a
	// booking at the field.
	ErrNoPastBooking = errors.New("only players with a past booking may review")
	// ErrAlreadyReviewed is returned on a second review for the same field.
	ErrAlreadyReviewed = errors.New("field already reviewed by this user")
	// ErrNotAllowed is returned when the actor may not delete the review.
	ErrNotAllowed = errors.New("not allowed")
)

// ReviewService defines review creation and moderation. Each player may
// review a field once, and only after a booking there has finished.
type ReviewService interface {
	Create(ctx context.Context, userID string, req models.ReviewRequest) (*models.Review, error)
	ListByField(ctx context.Context, fieldID string) ([]models.Review, error)
	// Delete removes a review and backs its rating out of the field's
	// aggregate. Allowed for the author and admins.
	Delete(ctx context.Context, id, actorID, actorRole string) error
}

// DefaultReviewService is the production implementation.
type DefaultReviewService struct {
	Repo        reviewRepo.ReviewRepository
	BookingRepo bookingRepo.BookingRepository
	FieldRepo   fieldRepo.FieldRepository
	Now         func() time.Time
}

var _ ReviewService = (*DefaultReviewService)(nil)

func (s *DefaultReviewService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultReviewService) Create(ctx context.Context, userID string, req models.ReviewRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	if _, err := s.FieldRepo.GetByID(ctx, req.FieldID); err != nil {
		return nil, err
	}

	eligible, err := s.BookingRepo.HasPastBooking(ctx, userID, req.FieldID, s.now())
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, ErrNoPastBooking
	}

	existing, err := s.Repo.GetByUserAndField(ctx, userID, req.FieldID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyReviewed
	}

	rv := &models.Review{
		ID:        uuid.New().String(),
		FieldID:   req.FieldID,
		UserID:    userID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: s.now(),
	}
	if err := s.Repo.Create(ctx, rv); err != nil {
		return nil, err
	}

	if err := s.FieldRepo.ApplyReviewRating(ctx, req.FieldID, req.Rating); err != nil {
		utils.GetLogger().Error("review saved but rating aggregate update failed",
			zap.String("reviewID", rv.ID), zap.Error(err))
	}

	utils.GetLogger().Info("review created",
		zap.String("reviewID", rv.ID),
		zap.String("fieldID", req.FieldID),
		zap.Int("rating", req.Rating))
	return rv, nil
}

func (s *DefaultReviewService) ListByField(ctx context.Context, fieldID string) ([]models.Review, error) {
	return s.Repo.ListByField(ctx, fieldID)
}

func (s *DefaultReviewService) Delete(ctx context.Context, id, actorID, actorRole string) error {
	rv, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if actorRole != models.RoleAdmin && rv.UserID != actorID {
		return ErrNotAllowed
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.FieldRepo.RemoveReviewRating(ctx, rv.FieldID, rv.Rating); err != nil {
		utils.GetLogger().Error("review deleted but rating aggregate update failed",
			zap.String("reviewID", id), zap.Error(err))
	}
	return nil
}
