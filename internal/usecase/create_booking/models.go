package create_booking

import (
	"time"

	"github.com/fieldbook/FieldBooking-Service/internal/domain"
	"github.com/fieldbook/FieldBooking-Service/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID        int64            // ID аутентифицированного пользователя
	FieldID       int64            // ID поля
	Date          time.Time        // Дата бронирования (без времени)
	StartTime     types.TimeString // Начало слота, например "18:00"
	EndTime       types.TimeString // Конец слота, например "20:00"
	PaymentMethod string           // "cash" | "bank"
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64            // ID бронирования
	Code          string           // Публичный код бронирования
	UserID        int64            // ID пользователя
	FieldID       int64            // ID поля
	Date          time.Time        // Дата бронирования
	StartTime     types.TimeString // Начало слота
	EndTime       types.TimeString // Конец слота
	TotalPrice    int64            // Цена, зафиксированная при создании
	Status        string           // Статус (unconfirmed)
	PaymentMethod string           // Способ оплаты
	CreatedAt     time.Time        // Время создания
}

// fromDomain конвертирует созданное бронирование в response
func fromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:            b.ID,
		Code:          b.Code,
		UserID:        b.UserID,
		FieldID:       b.FieldID,
		Date:          b.Date,
		StartTime:     b.Slot.Start,
		EndTime:       b.Slot.End,
		TotalPrice:    b.TotalPrice,
		Status:        string(b.Status),
		PaymentMethod: string(b.PaymentMethod),
		CreatedAt:     b.CreatedAt,
	}
}
