// File: database/repository/user/queries.go
package userRepo

import (
	"context"
	"fmt"
	"time"

	"meydancha/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("error decoding users: %w", err)
	}
	return users, nil
}

func (r *mongoUserRepo) ListOwnersByStatus(ctx context.Context, status string) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"role": models.RoleOwner, "ownerStatus": status}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch owners: %w", err)
	}
	defer cursor.Close(ctx)

	var owners []models.User
	if err := cursor.All(ctx, &owners); err != nil {
		return nil, fmt.Errorf("error decoding owners: %w", err)
	}
	return owners, nil
}

func (r *mongoUserRepo) SetOwnerStatus(ctx context.Context, id, status string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "role": models.RoleOwner}
	update := bson.M{"$set": bson.M{"ownerStatus": status, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user models.User
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("set owner status: %w", err)
	}
	return &user, nil
}
