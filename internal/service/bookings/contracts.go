package bookings

import (
	"context"
	"time"

	"github.com/fieldbook/FieldBooking-Service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	ListByField(ctx context.Context, fieldID int64, date time.Time, activeOnly bool) ([]*domain.Booking, error)
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Delete(ctx context.Context, id int64) error
}

// UserRepository интерфейс репозитория пользователей (для уведомлений)
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Notifier интерфейс почтовых уведомлений.
// Реализация обязана быть best-effort: ошибка отправки не должна
// влиять на результат операции.
type Notifier interface {
	BookingStatusChanged(booking *domain.Booking, user *domain.User)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
