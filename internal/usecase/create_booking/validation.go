package create_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/fieldbook/FieldBooking-Service/internal/domain"
)

// validateRequest валидирует входные данные и возвращает проверенный слот.
// Все ошибки диапазона отсекаются здесь, до обращения к хранилищу.
func validateRequest(req *Request, now time.Time) (domain.TimeRange, error) {
	if req.UserID <= 0 {
		return domain.TimeRange{}, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.FieldID <= 0 {
		return domain.TimeRange{}, fmt.Errorf("%w: fieldID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return domain.TimeRange{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if !domain.ValidPaymentMethod(domain.PaymentMethod(req.PaymentMethod)) {
		return domain.TimeRange{}, fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, req.PaymentMethod)
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

	// Политика слотов: модель интервала принимает любые границы,
	// но бронируются только целые часы внутри рабочего времени
	if !slot.IsHourAligned() {
		return domain.TimeRange{}, fmt.Errorf("%w: slot must start and end on a whole hour", ErrInvalidRange)
	}
	if !slot.WithinOperatingHours() {
		return domain.TimeRange{}, fmt.Errorf("%w: slot must fit between %s and %s",
			ErrInvalidRange, domain.OpeningTime, domain.ClosingTime)
	}

	return slot, nil
}

// findConflict возвращает первое активное бронирование, пересекающееся со слотом
func findConflict(slot domain.TimeRange, bookings []*domain.Booking) *domain.Booking {
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		// Строгие неравенства: граничащие интервалы не пересекаются
		if slot.Overlaps(b.Slot) {
			return b
		}
	}
	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
