package booking

import (
	"context"
	"testing"
	"time"

	bookingRepo "meydancha/database/repository/booking"
	"meydancha/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) CreateIfFree(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepo) ListByFieldAndDate(ctx context.Context, fieldID, date string) ([]models.Booking, error) {
	args := m.Called(ctx, fieldID, date)
	if b := args.Get(0); b != nil {
		return b.([]models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	args := m.Called(ctx, userID)
	if b := args.Get(0); b != nil {
		return b.([]models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepo) ListByField(ctx context.Context, fieldID string) ([]models.Booking, error) {
	args := m.Called(ctx, fieldID)
	if b := args.Get(0); b != nil {
		return b.([]models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	args := m.Called(ctx, id, status)
	if b := args.Get(0); b != nil {
		return b.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepo) CompletePast(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepo) HasPastBooking(ctx context.Context, userID, fieldID string, now time.Time) (bool, error) {
	args := m.Called(ctx, userID, fieldID, now)
	return args.Bool(0), args.Error(1)
}

type MockFieldRepo struct {
	mock.Mock
}

func (m *MockFieldRepo) Create(ctx context.Context, f *models.Field) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFieldRepo) GetByID(ctx context.Context, id string) (*models.Field, error) {
	args := m.Called(ctx, id)
	if f := args.Get(0); f != nil {
		return f.(*models.Field), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFieldRepo) Update(ctx context.Context, id string, set map[string]interface{}) (*models.Field, error) {
	args := m.Called(ctx, id, set)
	if f := args.Get(0); f != nil {
		return f.(*models.Field), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFieldRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFieldRepo) List(ctx context.Context, filter models.FieldFilter) ([]models.Field, error) {
	args := m.Called(ctx, filter)
	if f := args.Get(0); f != nil {
		return f.([]models.Field), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFieldRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Field, error) {
	args := m.Called(ctx, ownerID)
	if f := args.Get(0); f != nil {
		return f.([]models.Field), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFieldRepo) SetBlocked(ctx context.Context, id string, blocked bool, reason string) error {
	args := m.Called(ctx, id, blocked, reason)
	return args.Error(0)
}

func (m *MockFieldRepo) ApplyReviewRating(ctx context.Context, id string, rating int) error {
	args := m.Called(ctx, id, rating)
	return args.Error(0)
}

func (m *MockFieldRepo) RemoveReviewRating(ctx context.Context, id string, rating int) error {
	args := m.Called(ctx, id, rating)
	return args.Error(0)
}

type MockCampaignRepo struct {
	mock.Mock
}

func (m *MockCampaignRepo) Create(ctx context.Context, c *models.Campaign) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCampaignRepo) GetByID(ctx context.Context, id string) (*models.Campaign, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*models.Campaign), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCampaignRepo) ListByField(ctx context.Context, fieldID string) ([]models.Campaign, error) {
	args := m.Called(ctx, fieldID)
	if c := args.Get(0); c != nil {
		return c.([]models.Campaign), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCampaignRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Campaign, error) {
	args := m.Called(ctx, ownerID)
	if c := args.Get(0); c != nil {
		return c.([]models.Campaign), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCampaignRepo) ActiveForDate(ctx context.Context, fieldID, date string) ([]models.Campaign, error) {
	args := m.Called(ctx, fieldID, date)
	if c := args.Get(0); c != nil {
		return c.([]models.Campaign), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCampaignRepo) SetActive(ctx context.Context, id string, active bool) (*models.Campaign, error) {
	args := m.Called(ctx, id, active)
	if c := args.Get(0); c != nil {
		return c.(*models.Campaign), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCampaignRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type recordingScheduler struct {
	payloads []models.ReminderPayload
	fireAts  []time.Time
}

func (r *recordingScheduler) ScheduleReminder(p models.ReminderPayload, fireAt time.Time) error {
	r.payloads = append(r.payloads, p)
	r.fireAts = append(r.fireAts, fireAt)
	return nil
}

type testDeps struct {
	svc       *DefaultBookingService
	bookings  *MockBookingRepo
	fields    *MockFieldRepo
	campaigns *MockCampaignRepo
	scheduler *recordingScheduler
}

func newTestDeps() *testDeps {
	d := &testDeps{
		bookings:  new(MockBookingRepo),
		fields:    new(MockFieldRepo),
		campaigns: new(MockCampaignRepo),
		scheduler: &recordingScheduler{},
	}
	d.svc = &DefaultBookingService{
		Repo:         d.bookings,
		FieldRepo:    d.fields,
		CampaignRepo: d.campaigns,
		Scheduler:    d.scheduler,
		Window:       DayWindow{OpenHour: 8, CloseHour: 22},
		ReminderLead: time.Hour,
		Now: func() time.Time {
			return time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)
		},
	}
	return d
}

func testField() *models.Field {
	return &models.Field{
		ID:           "f1",
		OwnerID:      "owner-1",
		Name:         "Center Court",
		PricePerHour: 2000,
	}
}

func TestGetDaySchedule(t *testing.T) {
	d := newTestDeps()
	ctx := context.Background()

	d.fields.On("GetByID", ctx, "f1").Return(testField(), nil)
	d.bookings.On("ListByFieldAndDate", ctx, "f1", "2025-06-01").Return([]models.Booking{
		booked("2025-06-01", "16:00", "18:00"),
	}, nil)

	schedule, err := d.svc.GetDaySchedule(ctx, "f1", "2025-06-01")
	require.NoError(t, err)
	require.Len(t, schedule.Slots, 14)
	assert.Equal(t, int64(2000), schedule.PricePerHour)

	byClock := make(map[models.Slot]models.SlotStatus)
	for _, s := range schedule.Slots {
		byClock[s.Slot] = s
	}

	// 14:30 clock: everything through 14:00 is past.
	assert.True(t, byClock["14:00"].Past)
	assert.False(t, byClock["15:00"].Past)
	assert.True(t, byClock["15:00"].Available)

	// 16:00-18:00 booking takes exactly two slots.
	assert.True(t, byClock["16:00"].Taken)
	assert.True(t, byClock["17:00"].Taken)
	assert.False(t, byClock["16:00"].Available)
	assert.False(t, byClock["18:00"].Taken)
	assert.True(t, byClock["18:00"].Available)

	d.bookings.AssertExpectations(t)
}

func TestGetDayScheduleInvalidDate(t *testing.T) {
	d := newTestDeps()
	ctx := context.Background()
	d.fields.On("GetByID", ctx, "f1").Return(testField(), nil)

	_, err := d.svc.GetDaySchedule(ctx, "f1", "June 1st")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestQuote(t *testing.T) {
	ctx := context.Background()
	req := models.QuoteRequest{FieldID: "f1", Date: "2025-06-02", StartTime: "18:00", EndTime: "20:00"}

	t.Run("no campaign", func(t *testing.T) {
		d := newTestDeps()
		d.fields.On("GetByID", ctx, "f1").Return(testField(), nil)
		d.campaigns.On("ActiveForDate", ctx, "f1", "2025-06-02").Return([]models.Campaign{}, nil)

		quote, err := d.svc.Quote(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, int64(4000), quote.BasePrice)
		assert.Equal(t, int64(4000), quote.TotalPrice)
		assert.Empty(t, quote.CampaignID)
	})

	t.Run("best of several campaigns wins", func(t *testing.T) {
		d := newTestDeps()
		d.fields.On("GetByID", ctx, "f1").Return(testField(), nil)
		d.campaigns.On("ActiveForDate", ctx, "f1", "2025-06-02").Return([]models.Campaign{
			{ID: "c1", DiscountPercent: 10},
			{ID: "c2", DiscountPercent: 25},
		}, nil)

		quote, err := d.svc.Quote(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, int64(4000), quote.BasePrice)
		assert.Equal(t, int64(3000), quote.TotalPrice)
		assert.Equal(t, "c2", quote.CampaignID)
		assert.Equal(t, 25, quote.DiscountPercent)
	})

	t.Run("campaign lookup failure prices undiscounted", func(t *testing.T) {
		d := newTestDeps()
		d.fields.On("GetByID", ctx, "f1").Return(testField(), nil)
		d.campaigns.On("ActiveForDate", ctx, "f1", "2025-06-02").Return(nil, assert.AnError)

		quote, err := d.svc.Quote(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, int64(4000), quote.TotalPrice)
	})
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	req := models.BookingRequest{
		FieldID:   "f1",
		Date:      "2025-06-02",
		StartTime: "18:00",
		EndTime:   "20:00",
	}

	t.Run("success", func(t *testing.T) {
		d := newTestDeps()
		d.fields.On("GetByID", ctx, "f1").Return(testField(), nil)
		d.campaigns.On("ActiveForDate", ctx, "f1", "2025-06-02").Return([]models.Campaign{}, nil)
		d.bookings.On("CreateIfFree", ctx, mock.AnythingOfType("*models.Booking")).Return(nil)

		b, err := d.svc.CreateBooking(ctx, "u1", req)
		require.NoError(t, err)
		assert.Equal(t, "u1", b.UserID)
		assert.Equal(t, models.BookingStatusConfirmed, b.Status)
		assert.Equal(t, int64(4000), b.TotalPrice)
		d.bookings.AssertExpectations(t)
	})

	t.Run("conflict surfaces as slot taken", func(t *testing.T) {
		d := newTestDeps()
		d.fields.On("GetByID", ctx, "f1").Return(testField(), nil)
		d.campaigns.On("ActiveForDate", ctx, "f1", "2025-06-02").Return([]models.Campaign{}, nil)
		d.bookings.On("CreateIfFree", ctx, mock.AnythingOfType("*models.Booking")).
			Return(bookingRepo.ErrBookingConflict)

		_, err := d.svc.CreateBooking(ctx, "u1", req)
		assert.ErrorIs(t, err, ErrSlotTaken)
	})

	t.Run("blocked field", func(t *testing.T) {
		d := newTestDeps()
		field := testField()
		field.Blocked = true
		d.fields.On("GetByID", ctx, "f1").Return(field, nil)

		_, err := d.svc.CreateBooking(ctx, "u1", req)
		assert.ErrorIs(t, err, ErrFieldBlocked)
	})

	t.Run("past start rejected", func(t *testing.T) {
		d := newTestDeps()
		d.fields.On("GetByID", ctx, "f1").Return(testField(), nil)

		past := req
		past.Date = "2025-06-01"
		past.StartTime = "14:00"
		past.EndTime = "15:00"
		_, err := d.svc.CreateBooking(ctx, "u1", past)
		assert.ErrorIs(t, err, ErrPastTime)
	})

	t.Run("outside the day window", func(t *testing.T) {
		d := newTestDeps()
		d.fields.On("GetByID", ctx, "f1").Return(testField(), nil)

		early := req
		early.StartTime = "06:00"
		early.EndTime = "09:00"
		_, err := d.svc.CreateBooking(ctx, "u1", early)
		assert.ErrorIs(t, err, ErrOutsideWindow)
	})

	t.Run("inverted range", func(t *testing.T) {
		d := newTestDeps()
		d.fields.On("GetByID", ctx, "f1").Return(testField(), nil)

		bad := req
		bad.StartTime = "20:00"
		bad.EndTime = "18:00"
		_, err := d.svc.CreateBooking(ctx, "u1", bad)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("off-hour range", func(t *testing.T) {
		d := newTestDeps()
		d.fields.On("GetByID", ctx, "f1").Return(testField(), nil)

		bad := req
		bad.StartTime = "18:30"
		bad.EndTime = "19:30"
		_, err := d.svc.CreateBooking(ctx, "u1", bad)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("reminder fires one lead before start", func(t *testing.T) {
		d := newTestDeps()
		d.fields.On("GetByID", ctx, "f1").Return(testField(), nil)
		d.campaigns.On("ActiveForDate", ctx, "f1", "2025-06-02").Return([]models.Campaign{}, nil)
		d.bookings.On("CreateIfFree", ctx, mock.AnythingOfType("*models.Booking")).Return(nil)

		withReminder := req
		withReminder.ReminderEnabled = true
		_, err := d.svc.CreateBooking(ctx, "u1", withReminder)
		require.NoError(t, err)

		require.Len(t, d.scheduler.payloads, 1)
		assert.Equal(t, "Center Court", d.scheduler.payloads[0].FieldName)
		assert.Equal(t, time.Date(2025, 6, 2, 17, 0, 0, 0, time.UTC), d.scheduler.fireAts[0])
	})
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()

	confirmed := func() *models.Booking {
		return &models.Booking{
			ID:      "b1",
			FieldID: "f1",
			UserID:  "u1",
			Status:  models.BookingStatusConfirmed,
		}
	}

	t.Run("player cancels own booking", func(t *testing.T) {
		d := newTestDeps()
		d.bookings.On("GetByID", ctx, "b1").Return(confirmed(), nil)
		cancelled := confirmed()
		cancelled.Status = models.BookingStatusCancelled
		d.bookings.On("UpdateStatus", ctx, "b1", models.BookingStatusCancelled).Return(cancelled, nil)

		got, err := d.svc.CancelBooking(ctx, "b1", "u1", models.RolePlayer)
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusCancelled, got.Status)
	})

	t.Run("field owner may cancel", func(t *testing.T) {
		d := newTestDeps()
		d.bookings.On("GetByID", ctx, "b1").Return(confirmed(), nil)
		d.fields.On("GetByID", ctx, "f1").Return(testField(), nil)
		cancelled := confirmed()
		cancelled.Status = models.BookingStatusCancelled
		d.bookings.On("UpdateStatus", ctx, "b1", models.BookingStatusCancelled).Return(cancelled, nil)

		_, err := d.svc.CancelBooking(ctx, "b1", "owner-1", models.RoleOwner)
		require.NoError(t, err)
	})

	t.Run("stranger may not", func(t *testing.T) {
		d := newTestDeps()
		d.bookings.On("GetByID", ctx, "b1").Return(confirmed(), nil)
		d.fields.On("GetByID", ctx, "f1").Return(testField(), nil)

		_, err := d.svc.CancelBooking(ctx, "b1", "someone-else", models.RolePlayer)
		assert.ErrorIs(t, err, ErrNotAllowed)
	})

	t.Run("already cancelled", func(t *testing.T) {
		d := newTestDeps()
		b := confirmed()
		b.Status = models.BookingStatusCancelled
		d.bookings.On("GetByID", ctx, "b1").Return(b, nil)

		_, err := d.svc.CancelBooking(ctx, "b1", "u1", models.RolePlayer)
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestListFieldBookings(t *testing.T) {
	ctx := context.Background()

	t.Run("owner sees the list", func(t *testing.T) {
		d := newTestDeps()
		d.fields.On("GetByID", ctx, "f1").Return(testField(), nil)
		d.bookings.On("ListByField", ctx, "f1").Return([]models.Booking{{ID: "b1"}}, nil)

		got, err := d.svc.ListFieldBookings(ctx, "f1", "owner-1", models.RoleOwner)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("non-owner is refused", func(t *testing.T) {
		d := newTestDeps()
		d.fields.On("GetByID", ctx, "f1").Return(testField(), nil)

		_, err := d.svc.ListFieldBookings(ctx, "f1", "u1", models.RolePlayer)
		assert.ErrorIs(t, err, ErrNotAllowed)
	})
}
