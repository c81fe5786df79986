package schedule

import "time"

// Slot is one discretized interval of the availability grid together
// with the capacity observed for it.
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`

	ShiftCount   int `json:"shift_count"`
	BookingCount int `json:"booking_count"`

	// AvailableCapacity keeps the raw shift-minus-booking arithmetic,
	// negative values included, for diagnostics. IsAvailable treats
	// anything non-positive as no capacity.
	AvailableCapacity int  `json:"available_capacity"`
	IsAvailable       bool `json:"is_available"`
}

type Availability struct {
	Slots          []Slot `json:"slots"`
	AvailableSlots []Slot `json:"available_slots"`
}
