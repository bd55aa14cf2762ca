package booking

import (
	"context"
	"time"

	bookingRepo "meydancha/database/repository/booking"
	campaignRepo "meydancha/database/repository/campaign"
	fieldRepo "meydancha/database/repository/field"
	"meydancha/models"
)

// BookingService is the business surface over the availability and pricing
// engine plus booking persistence.
type BookingService interface {
	// GetDaySchedule returns every slot of the bookable day for one field
	// and date, marked taken/past/available.
	GetDaySchedule(ctx context.Context, fieldID, date string) (*models.DaySchedule, error)
	// Quote prices a candidate range, applying the best active campaign.
	Quote(ctx context.Context, req models.QuoteRequest) (*models.Quote, error)
	// CreateBooking validates, prices and persists a reservation.
	CreateBooking(ctx context.Context, userID string, req models.BookingRequest) (*models.Booking, error)
	// CancelBooking transitions confirmed -> cancelled, when the actor is
	// the booking player, the field owner, or an admin.
	CancelBooking(ctx context.Context, id, actorID, actorRole string) (*models.Booking, error)
	ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error)
	// ListFieldBookings is the owner view of a field's bookings.
	ListFieldBookings(ctx context.Context, fieldID, actorID, actorRole string) ([]models.Booking, error)
}

// ReminderScheduler enqueues a reminder to fire at a fixed instant.
type ReminderScheduler interface {
	ScheduleReminder(payload models.ReminderPayload, fireAt time.Time) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo          bookingRepo.BookingRepository
	FieldRepo     fieldRepo.FieldRepository
	CampaignRepo  campaignRepo.CampaignRepository
	Scheduler     ReminderScheduler
	Window        DayWindow
	ReminderLead  time.Duration
	Now           func() time.Time // injectable clock, set to the booking timezone
}

var _ BookingService = (*DefaultBookingService)(nil)

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
