// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"time"

	"meydancha/database"
	"meydancha/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository defines data access for booking records.
//
// CreateIfFree is the platform's double-booking guard: the overlap check and
// the insert run inside one Mongo transaction, so two concurrent requests
// for the same range cannot both succeed. The availability engine never
// assumes this is solved by being called twice.
type BookingRepository interface {
	CreateIfFree(ctx context.Context, b *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListByFieldAndDate(ctx context.Context, fieldID, date string) ([]models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	ListByField(ctx context.Context, fieldID string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error)
	CompletePast(ctx context.Context, now time.Time) (int64, error)
	HasPastBooking(ctx context.Context, userID, fieldID string, now time.Time) (bool, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
}
