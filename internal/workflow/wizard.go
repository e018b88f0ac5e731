package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fieldbook/FieldBooking-Service/internal/domain"
	createBooking "github.com/fieldbook/FieldBooking-Service/internal/usecase/create_booking"
	getAvailableFields "github.com/fieldbook/FieldBooking-Service/internal/usecase/get_available_fields"
	"github.com/fieldbook/FieldBooking-Service/pkg/types"
)

// Selection накопленный выбор пользователя за все этапы мастера
type Selection struct {
	Date          time.Time        // Этап 1: дата
	StartTime     types.TimeString // Этап 2: начало слота
	EndTime       types.TimeString // Этап 2: конец слота
	FieldID       int64            // Этап 3: выбранное поле
	PaymentMethod string           // Этап 4: способ оплаты
}

// Wizard пятиэтапный мастер бронирования.
//
// Состояние живет вне слоя отображения и не трогает хранилище до финального
// Submit: уход пользователя с любого этапа не оставляет следов на сервере.
// Список полей на этапе выбора рекомендательный и может устареть; при
// конфликте на Submit мастер возвращается к выбору поля, а не падает.
//
// Wizard не потокобезопасен: один экземпляр обслуживает одну сессию.
type Wizard struct {
	availableFields AvailableFieldsUseCase
	createBooking   CreateBookingUseCase
	timeProvider    TimeProvider
	logger          Logger

	stage   Stage
	sel     Selection
	offered []getAvailableFields.FieldItem
}

// NewWizard создает мастер на первом этапе (выбор даты)
func NewWizard(
	availableFields AvailableFieldsUseCase,
	createBooking CreateBookingUseCase,
	logger Logger,
) *Wizard {
	return &Wizard{
		availableFields: availableFields,
		createBooking:   createBooking,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
		stage:           StageDateSelection,
	}
}

// Stage возвращает текущий этап
func (w *Wizard) Stage() Stage {
	return w.stage
}

// Selection возвращает накопленный выбор
func (w *Wizard) Selection() Selection {
	return w.sel
}

// OfferedFields возвращает поля, предложенные на этапе выбора поля
func (w *Wizard) OfferedFields() []getAvailableFields.FieldItem {
	return w.offered
}

// SelectDate сохраняет дату на этапе выбора даты.
// Смена даты сбрасывает выбранное поле: список свободных полей зависит от нее.
func (w *Wizard) SelectDate(date time.Time) error {
	if w.stage != StageDateSelection {
		return fmt.Errorf("%w: date can only be selected on stage %s", ErrInvalidSelection, StageDateSelection)
	}
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidSelection)
	}
	if isDateInPast(date, w.timeProvider.Now()) {
		return fmt.Errorf("%w: date is in the past", ErrInvalidSelection)
	}

	w.sel.Date = date
	w.resetFieldChoice()
	return nil
}

// SelectTime сохраняет слот на этапе выбора времени.
// Принимаются только целые часы внутри рабочего времени.
func (w *Wizard) SelectTime(start, end types.TimeString) error {
	if w.stage != StageTimeSelection {
		return fmt.Errorf("%w: time can only be selected on stage %s", ErrInvalidSelection, StageTimeSelection)
	}

	slot, err := domain.NewTimeRange(start, end)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}
	if !slot.IsHourAligned() {
		return fmt.Errorf("%w: slot must start and end on a whole hour", ErrInvalidSelection)
	}
	if !slot.WithinOperatingHours() {
		return fmt.Errorf("%w: slot must fit between %s and %s",
			ErrInvalidSelection, domain.OpeningTime, domain.ClosingTime)
	}

	w.sel.StartTime = start
	w.sel.EndTime = end
	w.resetFieldChoice()
	return nil
}

// SelectField сохраняет поле на этапе выбора поля.
// Поле должно входить в список, предложенный проверкой занятости.
func (w *Wizard) SelectField(fieldID int64) error {
	if w.stage != StageFieldSelection {
		return fmt.Errorf("%w: field can only be selected on stage %s", ErrInvalidSelection, StageFieldSelection)
	}
	for _, f := range w.offered {
		if f.ID == fieldID {
			w.sel.FieldID = fieldID
			return nil
		}
	}
	return ErrFieldNotOffered
}

// SelectPayment сохраняет способ оплаты на этапе выбора оплаты
func (w *Wizard) SelectPayment(method string) error {
	if w.stage != StagePaymentSelection {
		return fmt.Errorf("%w: payment can only be selected on stage %s", ErrInvalidSelection, StagePaymentSelection)
	}
	if !domain.ValidPaymentMethod(domain.PaymentMethod(method)) {
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidSelection, method)
	}
	w.sel.PaymentMethod = method
	return nil
}

// Next переходит к следующему этапу, если текущий заполнен.
// При входе на этап выбора поля загружает список свободных полей;
// пустой список не ошибка, пользователь возвращается и меняет дату или время.
func (w *Wizard) Next(ctx context.Context) (Stage, error) {
	if err := w.gate(); err != nil {
		return w.stage, err
	}

	next, err := Transition(w.stage, EventNext)
	if err != nil {
		return w.stage, err
	}
	w.stage = next

	if w.stage == StageFieldSelection {
		if err := w.loadOfferedFields(ctx); err != nil {
			return w.stage, err
		}
	}
	return w.stage, nil
}

// Back возвращается на предыдущий этап. С первого этапа возврат запрещен.
// Накопленный выбор сохраняется, пользователь может пройти вперед заново.
func (w *Wizard) Back() (Stage, error) {
	prev, err := Transition(w.stage, EventBack)
	if err != nil {
		return w.stage, err
	}
	w.stage = prev
	return w.stage, nil
}

// Submit подтверждает бронирование на этапе подтверждения.
// Анонимный пользователь до этого места не доходит; userID обязателен.
// При конфликте слота или выключенном поле мастер возвращается к выбору
// поля с обновленным списком, ошибка отдается вызывающему для показа.
func (w *Wizard) Submit(ctx context.Context, userID int64) (*createBooking.Response, error) {
	if w.stage != StageConfirmation {
		return nil, ErrNotReady
	}
	if userID <= 0 {
		return nil, ErrNotAuthenticated
	}

	resp, err := w.createBooking.Execute(ctx, &createBooking.Request{
		UserID:        userID,
		FieldID:       w.sel.FieldID,
		Date:          w.sel.Date,
		StartTime:     w.sel.StartTime,
		EndTime:       w.sel.EndTime,
		PaymentMethod: w.sel.PaymentMethod,
	})
	if err != nil {
		if errors.Is(err, createBooking.ErrSlotConflict) || errors.Is(err, createBooking.ErrFieldUnavailable) {
			w.logger.Warn("Wizard: submit rejected, returning to field selection: %v", err)
			w.stage = StageFieldSelection
			w.sel.FieldID = 0
			if loadErr := w.loadOfferedFields(ctx); loadErr != nil {
				w.logger.Error("Wizard: failed to refresh offered fields: %v", loadErr)
			}
		}
		return nil, err
	}

	w.logger.Info("Wizard: booking id=%d created for user=%d", resp.ID, userID)
	return resp, nil
}

// gate проверяет заполненность текущего этапа перед переходом вперед
func (w *Wizard) gate() error {
	switch w.stage {
	case StageDateSelection:
		if w.sel.Date.IsZero() {
			return fmt.Errorf("%w: date is not selected", ErrStageIncomplete)
		}
	case StageTimeSelection:
		if w.sel.StartTime.IsZero() || w.sel.EndTime.IsZero() {
			return fmt.Errorf("%w: time slot is not selected", ErrStageIncomplete)
		}
	case StageFieldSelection:
		if w.sel.FieldID == 0 {
			return fmt.Errorf("%w: field is not selected", ErrStageIncomplete)
		}
	case StagePaymentSelection:
		if w.sel.PaymentMethod == "" {
			return fmt.Errorf("%w: payment method is not selected", ErrStageIncomplete)
		}
	}
	return nil
}

func (w *Wizard) loadOfferedFields(ctx context.Context) error {
	resp, err := w.availableFields.Execute(ctx, &getAvailableFields.Request{
		Date:      w.sel.Date,
		StartTime: w.sel.StartTime,
		EndTime:   w.sel.EndTime,
	})
	if err != nil {
		return err
	}
	w.offered = resp.Fields
	return nil
}

// resetFieldChoice сбрасывает выбор поля при смене даты или времени
func (w *Wizard) resetFieldChoice() {
	w.sel.FieldID = 0
	w.offered = nil
}

func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
