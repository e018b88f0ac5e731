package get_field_bookings

import (
	"context"
	"time"

	"github.com/fieldbook/FieldBooking-Service/internal/service/bookings/models"
)

type BookingService interface {
	ListByField(ctx context.Context, fieldID int64, date time.Time, actor models.Actor) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
