package fields

import (
	"context"
	"errors"
	"fmt"

	fieldRepo "github.com/fieldbook/FieldBooking-Service/internal/infra/storage/field"
	"github.com/fieldbook/FieldBooking-Service/internal/service/fields/models"
)

// Service сервис каталога полей
type Service struct {
	fieldRepo FieldRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса полей
func NewService(fieldRepo FieldRepository, logger Logger) *Service {
	return &Service{
		fieldRepo: fieldRepo,
		logger:    logger,
	}
}

// List получает каталог полей. Публичная операция.
func (s *Service) List(ctx context.Context) (*models.FieldListResponse, error) {
	fields, err := s.fieldRepo.List(ctx, false)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainFieldList(fields), nil
}

// GetByID получает поле по ID. Публичная операция.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.FieldResponse, error) {
	f, err := s.fieldRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			s.logger.Warn("GetByID: field id=%d not found", id)
			return nil, ErrFieldNotFound
		}
		s.logger.Error("GetByID: repository error for field id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainField(f), nil
}

// Create создает поле. Только для администраторов.
func (s *Service) Create(ctx context.Context, req *models.SaveFieldRequest, actor models.Actor) (*models.FieldResponse, error) {
	if !actor.IsAdmin {
		s.logger.Warn("Create: access denied for user=%d", actor.UserID)
		return nil, ErrAccessDenied
	}
	if err := validateSaveRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.fieldRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: field id=%d %q created by admin user=%d", created.ID, created.Name, actor.UserID)
	return models.FromDomainField(created), nil
}

// Update обновляет поле целиком. Только для администраторов.
func (s *Service) Update(ctx context.Context, id int64, req *models.SaveFieldRequest, actor models.Actor) (*models.FieldResponse, error) {
	if !actor.IsAdmin {
		s.logger.Warn("Update: access denied for user=%d", actor.UserID)
		return nil, ErrAccessDenied
	}
	if err := validateSaveRequest(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	f := req.ToDomain()
	f.ID = id

	updated, err := s.fieldRepo.Update(ctx, f)
	if err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			s.logger.Warn("Update: field id=%d not found", id)
			return nil, ErrFieldNotFound
		}
		s.logger.Error("Update: repository error for field id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: field id=%d updated by admin user=%d", id, actor.UserID)
	return models.FromDomainField(updated), nil
}

// Delete удаляет поле. Поле с бронированиями удалить нельзя:
// ограничение внешнего ключа транслируется в ErrFieldHasBookings.
// Только для администраторов.
func (s *Service) Delete(ctx context.Context, id int64, actor models.Actor) error {
	if !actor.IsAdmin {
		s.logger.Warn("Delete: access denied for user=%d", actor.UserID)
		return ErrAccessDenied
	}

	if err := s.fieldRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, fieldRepo.ErrFieldNotFound):
			s.logger.Warn("Delete: field id=%d not found", id)
			return ErrFieldNotFound
		case errors.Is(err, fieldRepo.ErrFieldHasBookings):
			s.logger.Warn("Delete: field id=%d still referenced by bookings", id)
			return ErrFieldHasBookings
		default:
			s.logger.Error("Delete: repository error for field id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Delete: field id=%d deleted by admin user=%d", id, actor.UserID)
	return nil
}

// validateSaveRequest валидирует данные поля
func validateSaveRequest(req *models.SaveFieldRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Location == "" {
		return fmt.Errorf("%w: location is required", ErrInvalidInput)
	}
	if req.PricePerHour <= 0 {
		return fmt.Errorf("%w: pricePerHour must be positive", ErrInvalidInput)
	}
	return nil
}
