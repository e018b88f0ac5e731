package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fieldbook/FieldBooking-Service/internal/domain"
	fieldRepo "github.com/fieldbook/FieldBooking-Service/internal/infra/storage/field"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	fieldRepo    FieldRepository
	userRepo     UserRepository
	txManager    TransactionManager
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	fieldRepo FieldRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		fieldRepo:    fieldRepo,
		userRepo:     userRepo,
		txManager:    txManager,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка занятости и вставка выполняются в одной сериализуемой транзакции,
// чтобы два конкурирующих запроса на один слот не прошли оба.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, field=%d, date=%s, slot=%s-%s",
		req.UserID, req.FieldID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	slot, err := validateRequest(req, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем поле
	field, err := uc.fieldRepo.GetByID(ctx, req.FieldID)
	if err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			uc.logger.Warn("CreateBooking: field id=%d not found", req.FieldID)
			return nil, ErrFieldNotFound
		}
		uc.logger.Error("CreateBooking: failed to get field id=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to get field: %w", ErrInternal, err)
	}

	// 3. Ручной флаг доступности поля проверяется отдельно от занятости слотов
	if !field.IsAvailable {
		uc.logger.Warn("CreateBooking: field id=%d is disabled", req.FieldID)
		return nil, ErrFieldUnavailable
	}

	// 4. Фиксируем цену на момент создания
	totalPrice := field.PriceFor(slot)

	var result *domain.Booking

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем активные бронирования поля на эту дату с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.ListByField(txCtx, req.FieldID, req.Date, true)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list bookings: %v", err)
			// Причина остаётся в цепочке: конфликт сериализации (40001)
			// должен дойти до retry-логики транзакционного менеджера
			return fmt.Errorf("%w: failed to list bookings: %w", ErrInternal, err)
		}

		// 5.2. Проверяем пересечение со всеми активными бронированиями
		if conflict := findConflict(slot, bookings); conflict != nil {
			uc.logger.Warn("CreateBooking: slot %s conflicts with booking id=%d (%s)",
				slot, conflict.ID, conflict.Slot)
			return ErrSlotConflict
		}

		// 5.3. Создаем бронирование со статусом unconfirmed
		booking := &domain.Booking{
			Code:          uuid.NewString(),
			FieldID:       req.FieldID,
			UserID:        req.UserID,
			Date:          req.Date,
			Slot:          slot,
			TotalPrice:    totalPrice,
			Status:        domain.StatusUnconfirmed,
			PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, code=%s", result.ID, result.Code)

	// 6. Уведомление best-effort, ошибка доставки не влияет на результат
	if user, err := uc.userRepo.GetByID(ctx, req.UserID); err != nil {
		uc.logger.Warn("CreateBooking: failed to get user id=%d for notification: %v", req.UserID, err)
	} else {
		uc.notifier.BookingCreated(result, user)
	}

	return fromDomain(result), nil
}
