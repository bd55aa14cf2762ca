// File: database/repository/booking/crud.go
package bookingRepo

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

// ErrBookingConflict is returned by CreateIfFree when an overlapping
// confirmed booking already exists for the field and date.
var ErrBookingConflict = errors.New("overlapping booking exists")

// ErrBookingNotFound is returned when no booking matches the given ID.
var ErrBookingNotFound = errors.New("booking not found")

// CreateIfFree inserts the booking only if no confirmed booking overlaps
// its [startTime, endTime) range for the same field and date. The check and
// the insert share one transaction. Zero-padded "HH:MM" strings order
// lexicographically, so the overlap test is expressed directly in the filter.
func (r *mongoBookingRepo) CreateIfFree(ctx context.Context, b *models.Booking) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		overlap := bson.M{
			"fieldId":   b.FieldID,
			"date":      b.Date,
			"status":    models.BookingStatusConfirmed,
			"startTime": bson.M{"$lt": b.EndTime},
			"endTime":   bson.M{"$gt": b.StartTime},
		}
		n, err := r.coll.CountDocuments(sc, overlap)
		if err != nil {
			return fmt.Errorf("overlap check failed: %w", err)
		}
		if n > 0 {
			return ErrBookingConflict
		}
		if _, err := r.coll.InsertOne(sc, b); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if errors.Is(err, ErrBookingConflict) {
			return err
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}

func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var b models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return &b, nil
}

func (r *mongoBookingRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var b models.Booking
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&b)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	return &b, nil
}
