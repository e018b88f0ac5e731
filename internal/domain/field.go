package domain

import "time"

// Field represents a bookable sports field.
// IsAvailable is a manual administrator switch, independent of whether any
// particular time slot is occupied.
type Field struct {
	ID           int64
	Name         string
	Description  string
	Location     string
	ImageURL     string
	PricePerHour int64  // minor currency units
	Size         string // e.g. "5-a-side", "7-a-side", "11-a-side"
	Amenities    []string
	IsAvailable  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PriceFor returns the total price for the given range, whole hours only.
func (f *Field) PriceFor(slot TimeRange) int64 {
	return f.PricePerHour * int64(slot.DurationHours())
}
