package booking

import (
	"fmt"
	"testing"
	"time"

	"meydancha/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlots(t *testing.T, w DayWindow) []models.Slot {
	t.Helper()
	slots, err := GenerateSlots(w)
	require.NoError(t, err)
	return slots
}

func booked(date, start, end string) models.Booking {
	return models.Booking{
		FieldID:   "f1",
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Status:    models.BookingStatusConfirmed,
	}
}

func TestGenerateSlots(t *testing.T) {
	t.Run("full day window", func(t *testing.T) {
		slots := mustSlots(t, DayWindow{OpenHour: 0, CloseHour: 24})
		require.Len(t, slots, 24)
		assert.Equal(t, models.Slot("00:00"), slots[0])
		assert.Equal(t, models.Slot("23:00"), slots[23])
	})

	t.Run("operating window", func(t *testing.T) {
		slots := mustSlots(t, DayWindow{OpenHour: 8, CloseHour: 22})
		require.Len(t, slots, 14)
		assert.Equal(t, models.Slot("08:00"), slots[0])
		assert.Equal(t, models.Slot("21:00"), slots[13])
	})

	t.Run("deterministic", func(t *testing.T) {
		w := DayWindow{OpenHour: 8, CloseHour: 22}
		assert.Equal(t, mustSlots(t, w), mustSlots(t, w))
	})

	t.Run("malformed windows", func(t *testing.T) {
		for _, w := range []DayWindow{
			{OpenHour: 22, CloseHour: 8},
			{OpenHour: 10, CloseHour: 10},
			{OpenHour: -1, CloseHour: 10},
			{OpenHour: 0, CloseHour: 25},
		} {
			_, err := GenerateSlots(w)
			assert.ErrorIs(t, err, ErrInvalidConfiguration, "window %+v", w)
		}
	})
}

func TestAvailableSlots(t *testing.T) {
	window := DayWindow{OpenHour: 8, CloseHour: 22}

	t.Run("booking blocks its hours, half-open end", func(t *testing.T) {
		slots := mustSlots(t, window)
		bookings := []models.Booking{booked("2025-06-01", "10:00", "12:00")}

		got := AvailableSlots(slots, "2025-06-01", bookings)

		assert.NotContains(t, got, models.Slot("10:00"))
		assert.NotContains(t, got, models.Slot("11:00"))
		assert.Contains(t, got, models.Slot("12:00"))
		assert.Contains(t, got, models.Slot("09:00"))
		assert.Len(t, got, len(slots)-2)
	})

	t.Run("booking ending at 20:00 does not block the 20:00 slot", func(t *testing.T) {
		slots := mustSlots(t, window)
		bookings := []models.Booking{booked("2025-06-01", "18:00", "20:00")}

		got := AvailableSlots(slots, "2025-06-01", bookings)
		assert.Contains(t, got, models.Slot("20:00"))
		assert.NotContains(t, got, models.Slot("18:00"))
		assert.NotContains(t, got, models.Slot("19:00"))
	})

	t.Run("other dates never affect availability", func(t *testing.T) {
		slots := mustSlots(t, window)
		bookings := []models.Booking{
			booked("2025-06-02", "08:00", "22:00"),
			booked("2025-05-31", "08:00", "22:00"),
		}
		got := AvailableSlots(slots, "2025-06-01", bookings)
		assert.Equal(t, slots, got)
	})

	t.Run("date with time suffix is truncated before comparison", func(t *testing.T) {
		slots := mustSlots(t, window)
		bookings := []models.Booking{booked("2025-06-01T09:30:00", "10:00", "11:00")}
		got := AvailableSlots(slots, "2025-06-01", bookings)
		assert.NotContains(t, got, models.Slot("10:00"))
	})

	t.Run("overlapping bookings union their blocked slots", func(t *testing.T) {
		slots := mustSlots(t, window)
		bookings := []models.Booking{
			booked("2025-06-01", "10:00", "13:00"),
			booked("2025-06-01", "12:00", "14:00"),
		}
		got := AvailableSlots(slots, "2025-06-01", bookings)
		for _, s := range []models.Slot{"10:00", "11:00", "12:00", "13:00"} {
			assert.NotContains(t, got, s)
		}
		assert.Contains(t, got, models.Slot("14:00"))
	})

	t.Run("no bookings is identity", func(t *testing.T) {
		slots := mustSlots(t, window)
		assert.Equal(t, slots, AvailableSlots(slots, "2025-06-01", nil))
	})
}

func TestFilterPast(t *testing.T) {
	window := DayWindow{OpenHour: 8, CloseHour: 22}
	loc := time.UTC

	t.Run("future date is identity", func(t *testing.T) {
		slots := mustSlots(t, window)
		now := time.Date(2025, 6, 1, 14, 30, 0, 0, loc)
		assert.Equal(t, slots, FilterPast(slots, "2025-06-02", now))
	})

	t.Run("today at 14:30 keeps 15:00 through 21:00", func(t *testing.T) {
		slots := mustSlots(t, window)
		now := time.Date(2025, 6, 1, 14, 30, 0, 0, loc)

		got := FilterPast(slots, "2025-06-01", now)

		require.Len(t, got, 7)
		assert.Equal(t, models.Slot("15:00"), got[0])
		assert.Equal(t, models.Slot("21:00"), got[6])
		for h := 8; h <= 14; h++ {
			assert.NotContains(t, got, models.Slot(fmt.Sprintf("%02d:00", h)))
		}
	})

	t.Run("slot equal to the current minute is already past", func(t *testing.T) {
		now := time.Date(2025, 6, 1, 14, 0, 0, 0, loc)
		got := FilterPast([]models.Slot{"14:00", "15:00"}, "2025-06-01", now)
		assert.Equal(t, []models.Slot{"15:00"}, got)
	})

	t.Run("idempotent", func(t *testing.T) {
		slots := mustSlots(t, window)
		now := time.Date(2025, 6, 1, 14, 30, 0, 0, loc)
		once := FilterPast(slots, "2025-06-01", now)
		twice := FilterPast(once, "2025-06-01", now)
		assert.Equal(t, once, twice)
	})

	t.Run("a fully elapsed date keeps nothing", func(t *testing.T) {
		slots := mustSlots(t, window)
		now := time.Date(2025, 6, 2, 0, 0, 0, 0, loc)
		assert.Empty(t, FilterPast(slots, "2025-06-01", now))
	})
}

func TestIsPast(t *testing.T) {
	loc := time.UTC
	now := time.Date(2025, 6, 1, 14, 30, 0, 0, loc)

	t.Run("same day around the clock", func(t *testing.T) {
		past, err := IsPast("2025-06-01", "14:00", now)
		require.NoError(t, err)
		assert.True(t, past)

		past, err = IsPast("2025-06-01", "15:00", now)
		require.NoError(t, err)
		assert.False(t, past)
	})

	t.Run("future date is never past", func(t *testing.T) {
		past, err := IsPast("2025-06-02", "08:00", now)
		require.NoError(t, err)
		assert.False(t, past)
	})

	t.Run("exact current minute counts as past", func(t *testing.T) {
		past, err := IsPast("2025-06-01", "14:30", now)
		require.NoError(t, err)
		assert.True(t, past)
	})

	t.Run("invalid inputs", func(t *testing.T) {
		_, err := IsPast("2025-06-01", "25:99", now)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat)

		_, err = IsPast("yesterday", "14:00", now)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("agrees with FilterPast", func(t *testing.T) {
		slots := mustSlots(t, DayWindow{OpenHour: 8, CloseHour: 22})
		kept := FilterPast(slots, "2025-06-01", now)
		require.NotEmpty(t, kept)
		for _, s := range kept {
			past, err := IsPast("2025-06-01", string(s), now)
			require.NoError(t, err)
			assert.False(t, past, "slot %s survived FilterPast but IsPast disagrees", s)
		}
	})
}

// Round-trip: generate, no bookings, far-future date. The full list survives.
func TestGenerateFilterRoundTrip(t *testing.T) {
	slots := mustSlots(t, DayWindow{OpenHour: 8, CloseHour: 22})
	now := time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)

	available := AvailableSlots(slots, "2030-01-01", nil)
	upcoming := FilterPast(available, "2030-01-01", now)

	assert.Equal(t, slots, upcoming)
}
