package get_available_fields

import (
	"context"
	"fmt"

	"github.com/fieldbook/FieldBooking-Service/internal/domain"
)

// UseCase use case для получения полей, свободных на запрошенный слот.
// Результат рекомендательный: занятость перепроверяется при создании брони.
type UseCase struct {
	availability AvailabilityService
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availability AvailabilityService, logger Logger) *UseCase {
	return &UseCase{
		availability: availability,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения свободных полей
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableFields: date=%s, slot=%s-%s",
		req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	slot, err := validateRequest(req, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("GetAvailableFields: validation failed: %v", err)
		return nil, err
	}

	// 2. Собираем поля, свободные на слот
	fields, err := uc.availability.AvailableFields(ctx, req.Date, slot)
	if err != nil {
		uc.logger.Error("GetAvailableFields: failed to collect fields: %v", err)
		return nil, fmt.Errorf("%w: failed to collect fields: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableFields: %d fields free on %s %s",
		len(fields), req.Date.Format(domain.DateFormat), slot)

	return &Response{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Fields:    toFieldItems(fields, slot),
	}, nil
}
