package get_available_fields

import (
	"context"

	getAvailableFields "github.com/fieldbook/FieldBooking-Service/internal/usecase/get_available_fields"
)

type GetAvailableFieldsUseCase interface {
	Execute(ctx context.Context, req *getAvailableFields.Request) (*getAvailableFields.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
