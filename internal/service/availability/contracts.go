package availability

import (
	"context"
	"time"

	"github.com/fieldbook/FieldBooking-Service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListByField(ctx context.Context, fieldID int64, date time.Time, activeOnly bool) ([]*domain.Booking, error)
}

// FieldRepository интерфейс репозитория полей
type FieldRepository interface {
	List(ctx context.Context, onlyAvailable bool) ([]*domain.Field, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
