// File: database/repository/campaign/crud.go
package campaignRepo

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

// ErrCampaignNotFound is returned when no campaign matches the lookup.
var ErrCampaignNotFound = errors.New("campaign not found")

func (r *mongoCampaignRepo) Create(ctx context.Context, c *models.Campaign) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

func (r *mongoCampaignRepo) GetByID(ctx context.Context, id string) (*models.Campaign, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var c models.Campaign
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&c)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrCampaignNotFound
		}
		return nil, fmt.Errorf("find campaign: %w", err)
	}
	return &c, nil
}

func (r *mongoCampaignRepo) list(ctx context.Context, filter bson.M) ([]models.Campaign, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch campaigns: %w", err)
	}
	defer cursor.Close(ctx)

	var campaigns []models.Campaign
	if err := cursor.All(ctx, &campaigns); err != nil {
		return nil, fmt.Errorf("error decoding campaigns: %w", err)
	}
	return campaigns, nil
}

func (r *mongoCampaignRepo) ListByField(ctx context.Context, fieldID string) ([]models.Campaign, error) {
	return r.list(ctx, bson.M{"fieldId": fieldID})
}

func (r *mongoCampaignRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Campaign, error) {
	return r.list(ctx, bson.M{"ownerId": ownerID})
}

// ActiveForDate leans on lexicographic "YYYY-MM-DD" ordering for the
// inclusive date-range comparison.
func (r *mongoCampaignRepo) ActiveForDate(ctx context.Context, fieldID, date string) ([]models.Campaign, error) {
	return r.list(ctx, bson.M{
		"fieldId":   fieldID,
		"active":    true,
		"startDate": bson.M{"$lte": date},
		"endDate":   bson.M{"$gte": date},
	})
}

func (r *mongoCampaignRepo) SetActive(ctx context.Context, id string, active bool) (*models.Campaign, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"active": active, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var c models.Campaign
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&c)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrCampaignNotFound
		}
		return nil, fmt.Errorf("set campaign active flag: %w", err)
	}
	return &c, nil
}

func (r *mongoCampaignRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrCampaignNotFound
	}
	return nil
}
