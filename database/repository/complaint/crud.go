// File: database/repository/complaint/crud.go
package complaintRepo

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

// ErrComplaintNotFound is returned when no complaint matches the lookup.
var ErrComplaintNotFound = errors.New("complaint not found")

func (r *mongoComplaintRepo) Create(ctx context.Context, c *models.Complaint) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now()
	c.Status = models.ComplaintStatusOpen
	c.CreatedAt = now
	c.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("insert complaint: %w", err)
	}
	return nil
}

func (r *mongoComplaintRepo) GetByID(ctx context.Context, id string) (*models.Complaint, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var c models.Complaint
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&c)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrComplaintNotFound
		}
		return nil, fmt.Errorf("find complaint: %w", err)
	}
	return &c, nil
}

func (r *mongoComplaintRepo) list(ctx context.Context, filter bson.M) ([]models.Complaint, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch complaints: %w", err)
	}
	defer cursor.Close(ctx)

	var complaints []models.Complaint
	if err := cursor.All(ctx, &complaints); err != nil {
		return nil, fmt.Errorf("error decoding complaints: %w", err)
	}
	return complaints, nil
}

func (r *mongoComplaintRepo) ListByStatus(ctx context.Context, status string) ([]models.Complaint, error) {
	return r.list(ctx, bson.M{"status": status})
}

func (r *mongoComplaintRepo) ListByUser(ctx context.Context, userID string) ([]models.Complaint, error) {
	return r.list(ctx, bson.M{"userId": userID})
}

func (r *mongoComplaintRepo) Resolve(ctx context.Context, id, status, resolution string) (*models.Complaint, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":     status,
		"resolution": resolution,
		"updatedAt":  time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var c models.Complaint
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&c)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrComplaintNotFound
		}
		return nil, fmt.Errorf("resolve complaint: %w", err)
	}
	return &c, nil
}
