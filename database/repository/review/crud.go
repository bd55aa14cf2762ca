// File: database/repository/review/crud.go
package reviewRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"meydancha/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrReviewNotFound is returned when no review matches the lookup.
var ErrReviewNotFound = errors.New("review not found")

func (r *mongoReviewRepo) Create(ctx context.Context, rv *models.Review) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if rv.ID == "" {
		rv.ID = uuid.New().String()
	}
	rv.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, rv); err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

func (r *mongoReviewRepo) GetByID(ctx context.Context, id string) (*models.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rv models.Review
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&rv)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("find review: %w", err)
	}
	return &rv, nil
}

// GetByUserAndField returns nil without error when the pair has no review,
// so callers can use it as a one-review-per-field check.
func (r *mongoReviewRepo) GetByUserAndField(ctx context.Context, userID, fieldID string) (*models.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rv models.Review
	err := r.coll.FindOne(ctx, bson.M{"userId": userID, "fieldId": fieldID}).Decode(&rv)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("find review by user and field: %w", err)
	}
	return &rv, nil
}

func (r *mongoReviewRepo) ListByField(ctx context.Context, fieldID string) ([]models.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"fieldId": fieldID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("error decoding reviews: %w", err)
	}
	return reviews, nil
}

func (r *mongoReviewRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrReviewNotFound
	}
	return nil
}
