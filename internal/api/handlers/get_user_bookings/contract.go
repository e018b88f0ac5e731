package get_user_bookings

import (
	"context"

	"github.com/fieldbook/FieldBooking-Service/internal/service/bookings/models"
)

type BookingService interface {
	ListByUser(ctx context.Context, req *models.ListUserBookingsRequest, actor models.Actor) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
