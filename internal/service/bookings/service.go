package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fieldbook/FieldBooking-Service/internal/domain"
	bookingRepo "github.com/fieldbook/FieldBooking-Service/internal/infra/storage/booking"
	"github.com/fieldbook/FieldBooking-Service/internal/service/bookings/models"
)

// Service сервис чтения и изменения существующих бронирований.
// Создание броней живёт отдельно в usecase create_booking:
// там требуется сериализуемая транзакция.
type Service struct {
	bookingRepo BookingRepository
	userRepo    UserRepository
	notifier    Notifier
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	userRepo UserRepository,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID.
// Пользователь видит только свои бронирования; администратор — любые.
func (s *Service) GetByID(ctx context.Context, id int64, actor models.Actor) (*models.BookingResponse, error) {
	booking, err := s.getBooking(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	if booking.UserID != actor.UserID && !actor.IsAdmin {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", actor.UserID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// ListByUser получает бронирования пользователя для личного кабинета
// (по дате, ближайшие первыми). Доступно владельцу и администратору.
func (s *Service) ListByUser(ctx context.Context, req *models.ListUserBookingsRequest, actor models.Actor) (*models.BookingListResponse, error) {
	if req.UserID != actor.UserID && !actor.IsAdmin {
		s.logger.Warn("ListByUser: access denied for user=%d to bookings of user=%d", actor.UserID, req.UserID)
		return nil, ErrAccessDenied
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("ListByUser: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.ListByUser(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("ListByUser: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: ListByUser - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByUser: fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// ListAll получает бронирования с фильтрацией для админских экранов
// (по времени создания, новые первыми). Только для администраторов.
func (s *Service) ListAll(ctx context.Context, req *models.ListBookingsRequest, actor models.Actor) (*models.BookingListResponse, error) {
	if !actor.IsAdmin {
		s.logger.Warn("ListAll: access denied for user=%d", actor.UserID)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListAll: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// ListByField получает расписание поля на дату (по времени начала).
// Только для администраторов.
func (s *Service) ListByField(ctx context.Context, fieldID int64, date time.Time, actor models.Actor) (*models.BookingListResponse, error) {
	if !actor.IsAdmin {
		s.logger.Warn("ListByField: access denied for user=%d", actor.UserID)
		return nil, ErrAccessDenied
	}

	bookings, err := s.bookingRepo.ListByField(ctx, fieldID, date, false)
	if err != nil {
		s.logger.Error("ListByField: repository error for field=%d: %v", fieldID, err)
		return nil, fmt.Errorf("%w: ListByField - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByField: fetched %d bookings for field=%d date=%s",
		len(bookings), fieldID, date.Format(domain.DateFormat))
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus переводит бронирование в новый статус.
// Разрешены только переходы unconfirmed->confirmed, unconfirmed->cancelled
// и confirmed->cancelled; cancelled — терминальный статус.
// Пересечения не перепроверяются: отмена лишь освобождает слот, а
// подтверждение не меняет занятый интервал.
// Только для администраторов.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest, actor models.Actor) (*models.BookingResponse, error) {
	if !actor.IsAdmin {
		s.logger.Warn("UpdateStatus: access denied for user=%d to booking id=%d", actor.UserID, bookingID)
		return nil, ErrAccessDenied
	}

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	booking, err := s.getBooking(ctx, bookingID, "UpdateStatus")
	if err != nil {
		return nil, err
	}

	return s.transition(ctx, booking, newStatus, "UpdateStatus")
}

// Cancel отменяет бронирование.
// Пользователь может отменить только своё бронирование, администратор — любое.
func (s *Service) Cancel(ctx context.Context, bookingID int64, actor models.Actor) (*models.BookingResponse, error) {
	booking, err := s.getBooking(ctx, bookingID, "Cancel")
	if err != nil {
		return nil, err
	}

	if booking.UserID != actor.UserID && !actor.IsAdmin {
		s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", actor.UserID, bookingID)
		return nil, ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d in status=%s cannot be cancelled", bookingID, booking.Status)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, domain.StatusCancelled)
	}

	return s.transition(ctx, booking, domain.StatusCancelled, "Cancel")
}

// Delete физически удаляет бронирование.
// Административный инструмент в обход инварианта хранения истории;
// обычный путь — Cancel. Только для администраторов.
func (s *Service) Delete(ctx context.Context, bookingID int64, actor models.Actor) error {
	if !actor.IsAdmin {
		s.logger.Warn("Delete: access denied for user=%d to booking id=%d", actor.UserID, bookingID)
		return ErrAccessDenied
	}

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Warn("Delete: booking id=%d hard-deleted by admin user=%d", bookingID, actor.UserID)
	return nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, id int64, op string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// transition применяет переход статуса и рассылает уведомление
func (s *Service) transition(ctx context.Context, booking *domain.Booking, newStatus domain.BookingStatus, op string) (*models.BookingResponse, error) {
	if !domain.CanTransitionTo(booking.Status, newStatus) {
		s.logger.Warn("%s: transition %s -> %s rejected for booking id=%d",
			op, booking.Status, newStatus, booking.ID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, booking.ID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, booking.ID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	booking.Status = newStatus
	s.logger.Info("%s: booking id=%d moved to status=%s", op, booking.ID, newStatus)

	// Уведомление best-effort: владельца не нашли — просто не шлём
	if user, err := s.userRepo.GetByID(ctx, booking.UserID); err == nil {
		s.notifier.BookingStatusChanged(booking, user)
	}

	return models.FromDomainBooking(booking), nil
}
