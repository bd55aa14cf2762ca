package booking

import "errors"

// Validation errors surfaced to the request handler. None is retried and
// none is fatal; each is scoped to the single request.
var (
	// ErrInvalidRange means the requested end time is not after the start time.
	ErrInvalidRange = errors.New("invalid time range: end must be after start")

	// ErrInvalidTimeFormat means a wall-clock value was not a parseable "HH:MM".
	ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")

	// ErrInvalidConfiguration means the bookable day window is malformed.
	ErrInvalidConfiguration = errors.New("invalid day window configuration")

	// ErrInvalidDate means a calendar day was not a parseable "YYYY-MM-DD".
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

	// ErrPastTime means the requested start has already elapsed.
	ErrPastTime = errors.New("cannot book a time that has already started")

	// ErrOutsideWindow means the requested range falls outside the bookable day.
	ErrOutsideWindow = errors.New("requested time range is outside the bookable day")

	// ErrSlotTaken means an overlapping booking already exists for the field and date.
	ErrSlotTaken = errors.New("time slot already booked")

	// ErrFieldBlocked means the field has been blocked by an admin.
	ErrFieldBlocked = errors.New("field is not accepting bookings")

	// ErrNotAllowed means the actor may not perform this operation.
	ErrNotAllowed = errors.New("not allowed to perform this operation")

	// ErrInvalidState means the booking status does not permit the transition.
	ErrInvalidState = errors.New("invalid booking state")
)
