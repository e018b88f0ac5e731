package workflow

import (
	"context"
	"time"

	createBooking "github.com/fieldbook/FieldBooking-Service/internal/usecase/create_booking"
	getAvailableFields "github.com/fieldbook/FieldBooking-Service/internal/usecase/get_available_fields"
)

// AvailableFieldsUseCase интерфейс usecase подбора свободных полей
type AvailableFieldsUseCase interface {
	Execute(ctx context.Context, req *getAvailableFields.Request) (*getAvailableFields.Response, error)
}

// CreateBookingUseCase интерфейс usecase создания бронирования
type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
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
