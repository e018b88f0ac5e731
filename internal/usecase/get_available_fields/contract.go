package get_available_fields

import (
	"context"
	"time"

	"github.com/fieldbook/FieldBooking-Service/internal/domain"
)

// AvailabilityService интерфейс сервиса проверки занятости слотов
type AvailabilityService interface {
	AvailableFields(ctx context.Context, date time.Time, slot domain.TimeRange) ([]*domain.Field, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
