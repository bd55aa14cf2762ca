package models

// Slot is one canonical hour-boundary string ("08:00") representing a
// bookable start time. Slots are generated on demand, never stored.
type Slot string

// SlotStatus is the display state of one slot in a day schedule.
type SlotStatus struct {
	Slot      Slot `json:"slot"`
	Taken     bool `json:"taken"`
	Past      bool `json:"past"`
	Available bool `json:"available"`
}

// DaySchedule is the full bookable day for one field and date.
type DaySchedule struct {
	FieldID      string       `json:"fieldId"`
	Date         string       `json:"date"`
	PricePerHour int64        `json:"pricePerHour"`
	Slots        []SlotStatus `json:"slots"`
}
