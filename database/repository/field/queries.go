// File: database/repository/field/queries.go
package fieldRepo

import (
	"context"
	"fmt"
	"time"

	"meydancha/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// List returns non-blocked fields matching the public search filter.
func (r *mongoFieldRepo) List(ctx context.Context, filter models.FieldFilter) ([]models.Field, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{"blocked": false}
	if filter.City != "" {
		query["city"] = filter.City
	}
	if filter.Sport != "" {
		query["sport"] = filter.Sport
	}

	opts := options.Find().SetSort(bson.D{{Key: "ratingAvg", Value: -1}, {Key: "ratingCount", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch fields: %w", err)
	}
	defer cursor.Close(ctx)

	var fields []models.Field
	if err := cursor.All(ctx, &fields); err != nil {
		return nil, fmt.Errorf("error decoding fields: %w", err)
	}
	return fields, nil
}

func (r *mongoFieldRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Field, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"ownerId": ownerID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch owner fields: %w", err)
	}
	defer cursor.Close(ctx)

	var fields []models.Field
	if err := cursor.All(ctx, &fields); err != nil {
		return nil, fmt.Errorf("error decoding owner fields: %w", err)
	}
	return fields, nil
}

// ApplyReviewRating recomputes the rating aggregate in place:
// avg' = (avg*count + rating) / (count+1), count' = count+1.
func (r *mongoFieldRepo) ApplyReviewRating(ctx context.Context, id string, rating int) error {
	return r.shiftRating(ctx, id, rating, 1)
}

// RemoveReviewRating backs one rating out of the aggregate, resetting the
// average to zero when the last review goes away.
func (r *mongoFieldRepo) RemoveReviewRating(ctx context.Context, id string, rating int) error {
	return r.shiftRating(ctx, id, rating, -1)
}

func (r *mongoFieldRepo) shiftRating(ctx context.Context, id string, rating, delta int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	newCount := bson.D{{Key: "$add", Value: bson.A{"$ratingCount", delta}}}
	newSum := bson.D{{Key: "$add", Value: bson.A{
		bson.D{{Key: "$multiply", Value: bson.A{"$ratingAvg", "$ratingCount"}}},
		rating * delta,
	}}}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "ratingCount", Value: newCount},
			{Key: "ratingAvg", Value: bson.D{{Key: "$cond", Value: bson.D{
				{Key: "if", Value: bson.D{{Key: "$lte", Value: bson.A{newCount, 0}}}},
				{Key: "then", Value: 0},
				{Key: "else", Value: bson.D{{Key: "$divide", Value: bson.A{newSum, newCount}}}},
			}}}},
			{Key: "updatedAt", Value: time.Now()},
		}}},
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, pipeline)
	if err != nil {
		return fmt.Errorf("failed to shift field rating: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrFieldNotFound
	}
	return nil
}
