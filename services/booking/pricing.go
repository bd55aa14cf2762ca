package booking

import "fmt"

// Price returns rate × duration for a half-open [start, end) range, in
// integer minor currency units. Duration is measured in minutes so
// fractional hours price exactly, without floating-point drift.
func Price(rateMinor int64, start, end string) (int64, error) {
	s, err := ParseClock(start)
	if err != nil {
		return 0, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return 0, err
	}
	if e <= s {
		return 0, fmt.Errorf("%w: %s..%s", ErrInvalidRange, start, end)
	}
	minutes := int64(e - s)
	return rateMinor * minutes / 60, nil
}

// ApplyDiscount reduces a total by a whole-percent discount, rounding the
// discount down so the payable amount never undershoots.
func ApplyDiscount(totalMinor int64, percent int) int64 {
	if percent <= 0 {
		return totalMinor
	}
	if percent >= 100 {
		return 0
	}
	return totalMinor - totalMinor*int64(percent)/100
}
