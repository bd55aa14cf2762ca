// File: database/repository/booking/queries.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"meydancha/models"
	"meydancha/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoBookingRepo) list(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// ListByFieldAndDate returns every non-cancelled booking for one field on
// one calendar day. This is the availability engine's read accessor.
func (r *mongoBookingRepo) ListByFieldAndDate(ctx context.Context, fieldID, date string) ([]models.Booking, error) {
	return r.list(ctx, bson.M{
		"fieldId": fieldID,
		"date":    date,
		"status":  bson.M{"$ne": models.BookingStatusCancelled},
	})
}

func (r *mongoBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return r.list(ctx, bson.M{"userId": userID})
}

func (r *mongoBookingRepo) ListByField(ctx context.Context, fieldID string) ([]models.Booking, error) {
	return r.list(ctx, bson.M{"fieldId": fieldID})
}

// CompletePast marks confirmed bookings whose day has fully passed, or whose
// end time on today's date has passed, as completed. Returns the number of
// bookings transitioned.
func (r *mongoBookingRepo) CompletePast(ctx context.Context, now time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	today := now.Format(utils.DateFormat)
	clock := now.Format(utils.TimeFormat)

	filter := bson.M{
		"status": models.BookingStatusConfirmed,
		"$or": []bson.M{
			{"date": bson.M{"$lt": today}},
			{"date": today, "endTime": bson.M{"$lte": clock}},
		},
	}
	update := bson.M{"$set": bson.M{"status": models.BookingStatusCompleted, "updatedAt": now}}

	res, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("complete past bookings: %w", err)
	}
	return res.ModifiedCount, nil
}

// HasPastBooking reports whether the user has at least one completed (or
// already elapsed confirmed) booking of the field. Reviews require one.
func (r *mongoBookingRepo) HasPastBooking(ctx context.Context, userID, fieldID string, now time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	today := now.Format(utils.DateFormat)
	clock := now.Format(utils.TimeFormat)

	filter := bson.M{
		"userId":  userID,
		"fieldId": fieldID,
		"$or": []bson.M{
			{"status": models.BookingStatusCompleted},
			{"status": models.BookingStatusConfirmed, "date": bson.M{"$lt": today}},
			{"status": models.BookingStatusConfirmed, "date": today, "endTime": bson.M{"$lte": clock}},
		},
	}
	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("count past bookings: %w", err)
	}
	return n > 0, nil
}
