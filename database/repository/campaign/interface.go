// File: database/repository/campaign/interface.go
package campaignRepo

import (
	"context"

	"meydancha/database"
	"meydancha/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CampaignRepository defines data access for discount campaigns.
type CampaignRepository interface {
	Create(ctx context.Context, c *models.Campaign) error
	GetByID(ctx context.Context, id string) (*models.Campaign, error)
	ListByField(ctx context.Context, fieldID string) ([]models.Campaign, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Campaign, error)
	// ActiveForDate returns active campaigns of the field covering the date.
	ActiveForDate(ctx context.Context, fieldID, date string) ([]models.Campaign, error)
	SetActive(ctx context.Context, id string, active bool) (*models.Campaign, error)
	Delete(ctx context.Context, id string) error
}

type mongoCampaignRepo struct {
	coll *mongo.Collection
}

// NewMongoCampaignRepo constructs a new MongoDB CampaignRepository.
func NewMongoCampaignRepo() CampaignRepository {
	return &mongoCampaignRepo{
		coll: database.DB().Collection("campaigns"),
	}
}
