// File: database/repository/field/interface.go
package fieldRepo

import (
	"context"

	"meydancha/database"
	"meydancha/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// FieldRepository defines data access for sports venues.
type FieldRepository interface {
	Create(ctx context.Context, f *models.Field) error
	GetByID(ctx context.Context, id string) (*models.Field, error)
	Update(ctx context.Context, id string, set map[string]interface{}) (*models.Field, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter models.FieldFilter) ([]models.Field, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Field, error)
	SetBlocked(ctx context.Context, id string, blocked bool, reason string) error
	// ApplyReviewRating folds one new review rating into the denormalized
	// rating aggregate (avg + count) with a single pipeline update.
	ApplyReviewRating(ctx context.Context, id string, rating int) error
	// RemoveReviewRating backs one review rating out of the aggregate.
	RemoveReviewRating(ctx context.Context, id string, rating int) error
}

type mongoFieldRepo struct {
	coll *mongo.Collection
}

// NewMongoFieldRepo constructs a new MongoDB FieldRepository.
func NewMongoFieldRepo() FieldRepository {
	return &mongoFieldRepo{
		coll: database.DB().Collection("fields"),
	}
}
