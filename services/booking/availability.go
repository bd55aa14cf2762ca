package booking

import (
	"time"

	"meydancha/models"
)

// AvailableSlots returns the subset of slots not blocked by any existing
// booking for the same calendar day. A slot S is blocked iff some booking's
// half-open interval [start, end) satisfies start <= S < end, so a booking
// ending at 20:00 does not block the 20:00 slot. Bookings on other dates
// never affect the result; multiple overlapping bookings simply union their
// blocked slots.
func AvailableSlots(slots []models.Slot, date string, bookings []models.Booking) []models.Slot {
	available := make([]models.Slot, 0, len(slots))
	for _, slot := range slots {
		m, err := ParseClock(string(slot))
		if err != nil {
			continue
		}
		if !slotBlocked(m, date, bookings) {
			available = append(available, slot)
		}
	}
	return available
}

func slotBlocked(slotMinutes int, date string, bookings []models.Booking) bool {
	for _, b := range bookings {
		if !sameDay(b.Date, date) {
			continue
		}
		start, err := ParseClock(b.StartTime)
		if err != nil {
			continue
		}
		end, err := ParseClock(b.EndTime)
		if err != nil {
			continue
		}
		if start <= slotMinutes && slotMinutes < end {
			return true
		}
	}
	return false
}

// FilterPast removes slots whose instant on the given date is at or before
// now. A slot equal to the current minute counts as already past: once the
// hour has begun it can no longer be booked. For any future date the input
// passes through unchanged, and filtering twice equals filtering once.
// An unparseable date leaves the list unchanged; callers validate dates
// before display.
func FilterPast(slots []models.Slot, date string, now time.Time) []models.Slot {
	kept := make([]models.Slot, 0, len(slots))
	for _, slot := range slots {
		m, err := ParseClock(string(slot))
		if err != nil {
			continue
		}
		at, err := slotInstant(date, m, now.Location())
		if err != nil {
			return slots
		}
		if at.After(now) {
			kept = append(kept, slot)
		}
	}
	return kept
}

// IsPast reports whether the combined date and wall-clock time has already
// elapsed. It shares FilterPast's boundary rule (an instant equal to now is
// past), so a slot that survives FilterPast always yields IsPast == false.
// Used as the submission-time guard for a single candidate.
func IsPast(date, hhmm string, now time.Time) (bool, error) {
	m, err := ParseClock(hhmm)
	if err != nil {
		return false, err
	}
	at, err := slotInstant(date, m, now.Location())
	if err != nil {
		return false, err
	}
	return !at.After(now), nil
}
