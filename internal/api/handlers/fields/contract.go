package fields

import (
	"context"

	"github.com/fieldbook/FieldBooking-Service/internal/service/fields/models"
)

type FieldService interface {
	List(ctx context.Context) (*models.FieldListResponse, error)
	GetByID(ctx context.Context, id int64) (*models.FieldResponse, error)
	Create(ctx context.Context, req *models.SaveFieldRequest, actor models.Actor) (*models.FieldResponse, error)
	Update(ctx context.Context, id int64, req *models.SaveFieldRequest, actor models.Actor) (*models.FieldResponse, error)
	Delete(ctx context.Context, id int64, actor models.Actor) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
