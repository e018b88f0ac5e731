package domain

import (
	"errors"
	"fmt"

	"github.com/fieldbook/FieldBooking-Service/pkg/types"
)

var (
	// ErrInvalidRange возвращается, когда start >= end или время некорректно
	ErrInvalidRange = errors.New("domain: invalid time range")
)

// TimeRange is a half-open [Start, End) interval of a single day.
// The model accepts arbitrary HH:MM boundaries; quantization to whole-hour
// slots is a policy of the booking workflow, not of the range itself.
type TimeRange struct {
	Start types.TimeString
	End   types.TimeString
}

// NewTimeRange builds a validated range. Start must be strictly before End.
func NewTimeRange(start, end types.TimeString) (TimeRange, error) {
	if err := start.Validate(); err != nil {
		return TimeRange{}, fmt.Errorf("%w: start: %v", ErrInvalidRange, err)
	}
	if err := end.Validate(); err != nil {
		return TimeRange{}, fmt.Errorf("%w: end: %v", ErrInvalidRange, err)
	}
	if !start.IsBefore(end) {
		return TimeRange{}, fmt.Errorf("%w: start %s must be before end %s", ErrInvalidRange, start, end)
	}
	return TimeRange{Start: start, End: end}, nil
}

// Overlaps reports whether the two half-open ranges intersect.
// Touching boundaries (a.End == b.Start) are NOT an overlap, so back-to-back
// slots can abut.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.IsBefore(other.End) && other.Start.IsBefore(r.End)
}

// DurationMinutes returns the length of the range in minutes.
// The range is assumed valid; invalid boundaries yield 0.
func (r TimeRange) DurationMinutes() int {
	start, err := r.Start.Minutes()
	if err != nil {
		return 0
	}
	end, err := r.End.Minutes()
	if err != nil {
		return 0
	}
	return end - start
}

// DurationHours returns the length in whole hours, rounding down.
func (r TimeRange) DurationHours() int {
	return r.DurationMinutes() / MinutesPerHour
}

// IsHourAligned reports whether both boundaries fall on a slot boundary.
// The minute component must be a multiple of the slot increment;
// with a 60-minute increment that means whole hours only.
func (r TimeRange) IsHourAligned() bool {
	return r.Start.Minute()%SlotIncrementMinutes == 0 && r.End.Minute()%SlotIncrementMinutes == 0
}

// WithinOperatingHours reports whether the range fits inside opening hours.
func (r TimeRange) WithinOperatingHours() bool {
	return !r.Start.IsBefore(OpeningTime) && !r.End.IsAfter(ClosingTime)
}

// String returns "HH:MM-HH:MM".
func (r TimeRange) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}
