// File: database/repository/field/crud.go
package fieldRepo

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

// ErrFieldNotFound is returned when no field matches the given ID.
var ErrFieldNotFound = errors.New("field not found")

func (r *mongoFieldRepo) Create(ctx context.Context, f *models.Field) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	now := time.Now()
	f.CreatedAt = now
	f.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, f); err != nil {
		return fmt.Errorf("insert field: %w", err)
	}
	return nil
}

func (r *mongoFieldRepo) GetByID(ctx context.Context, id string) (*models.Field, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var f models.Field
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&f)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrFieldNotFound
		}
		return nil, fmt.Errorf("find field: %w", err)
	}
	return &f, nil
}

func (r *mongoFieldRepo) Update(ctx context.Context, id string, set map[string]interface{}) (*models.Field, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	setDoc := bson.M{"updatedAt": time.Now()}
	for k, v := range set {
		setDoc[k] = v
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var f models.Field
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": setDoc}, opts).Decode(&f)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrFieldNotFound
		}
		return nil, fmt.Errorf("update field: %w", err)
	}
	return &f, nil
}

func (r *mongoFieldRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete field: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrFieldNotFound
	}
	return nil
}

func (r *mongoFieldRepo) SetBlocked(ctx context.Context, id string, blocked bool, reason string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"blocked":     blocked,
		"blockReason": reason,
		"updatedAt":   time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("set field blocked flag: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrFieldNotFound
	}
	return nil
}
