package booking

import (
	"fmt"
	"strings"
	"time"

	"meydancha/models"
	"meydancha/utils"
)

// DayWindow defines the bookable portion of a calendar day in whole hours.
// A window of Open=8 Close=22 yields start slots "08:00" through "21:00":
// the last bookable hour ends exactly at the closing hour.
type DayWindow struct {
	OpenHour  int
	CloseHour int
}

// GenerateSlots produces the ordered sequence of hour-boundary slots for a
// day window. Deterministic and pure: the same window yields the same
// sequence on every call.
func GenerateSlots(w DayWindow) ([]models.Slot, error) {
	if w.OpenHour < 0 || w.CloseHour > 24 || w.CloseHour <= w.OpenHour {
		return nil, fmt.Errorf("%w: open=%d close=%d", ErrInvalidConfiguration, w.OpenHour, w.CloseHour)
	}
	slots := make([]models.Slot, 0, w.CloseHour-w.OpenHour)
	for h := w.OpenHour; h < w.CloseHour; h++ {
		slots = append(slots, models.Slot(fmt.Sprintf("%02d:00", h)))
	}
	return slots, nil
}

// ParseClock converts a wall-clock "HH:MM" string to minutes from midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(utils.TimeFormat, s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// truncateDate reduces a date value to its calendar-day part, dropping any
// time-of-day suffix ("2025-06-01T09:30:00" -> "2025-06-01").
func truncateDate(date string) string {
	if i := strings.IndexAny(date, "T "); i >= 0 {
		return date[:i]
	}
	return date
}

// sameDay reports whether two date values fall on the same calendar day.
func sameDay(a, b string) bool {
	return truncateDate(a) == truncateDate(b)
}

// slotInstant combines a calendar day and a wall-clock slot into one instant
// in the given location.
func slotInstant(date string, clockMinutes int, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(utils.DateFormat, truncateDate(date), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return d.Add(time.Duration(clockMinutes) * time.Minute), nil
}
