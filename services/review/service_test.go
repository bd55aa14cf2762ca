package review

import (
	"context"
	"testing"
	"time"

	bookingRepo "meydancha/database/repository/booking"
	fieldRepo "meydancha/database/repository/field"
	reviewRepo "meydancha/database/repository/review"
	"meydancha/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fakes override only the methods a test exercises; anything else panics
// through the embedded nil interface.

type fakeReviewRepo struct {
	reviewRepo.ReviewRepository
	existing *models.Review
	created  *models.Review
	deleted  string
	byID     *models.Review
}

func (f *fakeReviewRepo) Create(ctx context.Context, rv *models.Review) error {
	f.created = rv
	return nil
}

func (f *fakeReviewRepo) GetByID(ctx context.Context, id string) (*models.Review, error) {
	if f.byID == nil {
		return nil, reviewRepo.ErrReviewNotFound
	}
	return f.byID, nil
}

func (f *fakeReviewRepo) GetByUserAndField(ctx context.Context, userID, fieldID string) (*models.Review, error) {
	return f.existing, nil
}

func (f *fakeReviewRepo) Delete(ctx context.Context, id string) error {
	f.deleted = id
	return nil
}

type fakeBookingRepo struct {
	bookingRepo.BookingRepository
	hasPast bool
}

func (f *fakeBookingRepo) HasPastBooking(ctx context.Context, userID, fieldID string, now time.Time) (bool, error) {
	return f.hasPast, nil
}

type fakeFieldRepo struct {
	fieldRepo.FieldRepository
	applied []int
	removed []int
}

func (f *fakeFieldRepo) GetByID(ctx context.Context, id string) (*models.Field, error) {
	return &models.Field{ID: id, PricePerHour: 2000}, nil
}

func (f *fakeFieldRepo) ApplyReviewRating(ctx context.Context, id string, rating int) error {
	f.applied = append(f.applied, rating)
	return nil
}

func (f *fakeFieldRepo) RemoveReviewRating(ctx context.Context, id string, rating int) error {
	f.removed = append(f.removed, rating)
	return nil
}

func newService(hasPast bool, existing *models.Review) (*DefaultReviewService, *fakeReviewRepo, *fakeFieldRepo) {
	reviews := &fakeReviewRepo{existing: existing}
	fields := &fakeFieldRepo{}
	svc := &DefaultReviewService{
		Repo:        reviews,
		BookingRepo: &fakeBookingRepo{hasPast: hasPast},
		FieldRepo:   fields,
		Now: func() time.Time {
			return time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)
		},
	}
	return svc, reviews, fields
}

func TestCreateReview(t *testing.T) {
	ctx := context.Background()
	req := models.ReviewRequest{FieldID: "f1", Rating: 4, Comment: "great pitch"}

	t.Run("success updates the rating aggregate", func(t *testing.T) {
		svc, reviews, fields := newService(true, nil)

		rv, err := svc.Create(ctx, "u1", req)
		require.NoError(t, err)
		assert.Equal(t, 4, rv.Rating)
		assert.Equal(t, "u1", rv.UserID)
		require.NotNil(t, reviews.created)
		assert.Equal(t, []int{4}, fields.applied)
	})

	t.Run("rating bounds", func(t *testing.T) {
		svc, _, _ := newService(true, nil)
		for _, rating := range []int{0, 6, -1} {
			bad := req
			bad.Rating = rating
			_, err := svc.Create(ctx, "u1", bad)
			assert.ErrorIs(t, err, ErrInvalidRating)
		}
	})

	t.Run("requires a finished booking", func(t *testing.T) {
		svc, _, fields := newService(false, nil)
		_, err := svc.Create(ctx, "u1", req)
		assert.ErrorIs(t, err, ErrNoPastBooking)
		assert.Empty(t, fields.applied)
	})

	t.Run("one review per user and field", func(t *testing.T) {
		svc, _, _ := newService(true, &models.Review{ID: "r0"})
		_, err := svc.Create(ctx, "u1", req)
		assert.ErrorIs(t, err, ErrAlreadyReviewed)
	})
}

func TestDeleteReview(t *testing.T) {
	ctx := context.Background()
	stored := &models.Review{ID: "r1", FieldID: "f1", UserID: "u1", Rating: 5}

	t.Run("author backs rating out of the aggregate", func(t *testing.T) {
		svc, reviews, fields := newService(true, nil)
		reviews.byID = stored

		require.NoError(t, svc.Delete(ctx, "r1", "u1", models.RolePlayer))
		assert.Equal(t, "r1", reviews.deleted)
		assert.Equal(t, []int{5}, fields.removed)
	})

	t.Run("admin may delete any review", func(t *testing.T) {
		svc, reviews, _ := newService(true, nil)
		reviews.byID = stored

		require.NoError(t, svc.Delete(ctx, "r1", "someone-else", models.RoleAdmin))
	})

	t.Run("stranger may not", func(t *testing.T) {
		svc, reviews, fields := newService(true, nil)
		reviews.byID = stored

		err := svc.Delete(ctx, "r1", "someone-else", models.RolePlayer)
		assert.ErrorIs(t, err, ErrNotAllowed)
		assert.Empty(t, fields.removed)
	})
}
