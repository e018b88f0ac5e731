package get_available_fields

import (
	"errors"
	"fmt"
	"time"

	"github.com/fieldbook/FieldBooking-Service/internal/domain"
)

// validateRequest валидирует входные данные и возвращает проверенный слот
func validateRequest(req *Request, now time.Time) (domain.TimeRange, error) {
	if req.Date.IsZero() {
		return domain.TimeRange{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if isDateInPast(req.Date, now) {
		return domain.TimeRange{}, ErrInvalidDate
	}

	slot, err := domain.NewTimeRange(req.StartTime, req.EndTime)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRange) {
			return domain.TimeRange{}, fmt.Errorf("%w: %v", ErrInvalidRange, err)
		}
		return domain.TimeRange{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if !slot.IsHourAligned() {
		return domain.TimeRange{}, fmt.Errorf("%w: slot must start and end on a whole hour", ErrInvalidRange)
	}
	if !slot.WithinOperatingHours() {
		return domain.TimeRange{}, fmt.Errorf("%w: slot must fit between %s and %s",
			ErrInvalidRange, domain.OpeningTime, domain.ClosingTime)
	}

	return slot, nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
