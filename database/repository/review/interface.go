// File: database/repository/review/interface.go
package reviewRepo

import (
	"context"

	"meydancha/database"
	"meydancha/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ReviewRepository defines data access for field reviews.
type ReviewRepository interface {
	Create(ctx context.Context, rv *models.Review) error
	GetByID(ctx context.Context, id string) (*models.Review, error)
	GetByUserAndField(ctx context.Context, userID, fieldID string) (*models.Review, error)
	ListByField(ctx context.Context, fieldID string) ([]models.Review, error)
	Delete(ctx context.Context, id string) error
}

type mongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo constructs a new MongoDB ReviewRepository.
func NewMongoReviewRepo() ReviewRepository {
	return &mongoReviewRepo{
		coll: database.DB().Collection("reviews"),
	}
}
