package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldbook/FieldBooking-Service/internal/domain"
)

// Service проверяет занятость слотов.
//
// Результат носит рекомендательный характер: между проверкой и созданием
// брони ситуация может измениться. Авторитетная перепроверка выполняется
// внутри сериализуемой транзакции usecase create_booking — только она
// гарантирует инвариант непересечения.
type Service struct {
	bookingRepo BookingRepository
	fieldRepo   FieldRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(bookingRepo BookingRepository, fieldRepo FieldRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		fieldRepo:   fieldRepo,
		logger:      logger,
	}
}

// IsAvailable reports whether no active booking of the field overlaps slot
// on the given date. Read-only; repeated calls with no intervening writes
// return the same result.
func (s *Service) IsAvailable(ctx context.Context, fieldID int64, date time.Time, slot domain.TimeRange) (bool, error) {
	bookings, err := s.bookingRepo.ListByField(ctx, fieldID, date, true)
	if err != nil {
		s.logger.Error("IsAvailable: failed to list bookings for field=%d: %v", fieldID, err)
		return false, fmt.Errorf("%w: IsAvailable - repository error: %v", ErrInternal, err)
	}

	return !anyOverlap(slot, bookings), nil
}

// AvailableFields returns every manually-enabled field whose slot is free
// on the given date. Линейный проход по броням дня: их число ограничено
// количеством слотов, индекс не нужен.
func (s *Service) AvailableFields(ctx context.Context, date time.Time, slot domain.TimeRange) ([]*domain.Field, error) {
	fields, err := s.fieldRepo.List(ctx, true)
	if err != nil {
		s.logger.Error("AvailableFields: failed to list fields: %v", err)
		return nil, fmt.Errorf("%w: AvailableFields - repository error: %v", ErrInternal, err)
	}

	available := make([]*domain.Field, 0, len(fields))
	for _, f := range fields {
		free, err := s.IsAvailable(ctx, f.ID, date, slot)
		if err != nil {
			return nil, err
		}
		if free {
			available = append(available, f)
		}
	}

	s.logger.Info("AvailableFields: %d of %d fields free on %s %s",
		len(available), len(fields), date.Format(domain.DateFormat), slot)
	return available, nil
}

// anyOverlap reports whether any active booking overlaps slot.
// Пересечение считается по строгим неравенствам: граничащие интервалы
// (конец одного равен началу другого) не пересекаются.
func anyOverlap(slot domain.TimeRange, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if slot.Overlaps(b.Slot) {
			return true
		}
	}
	return false
}
