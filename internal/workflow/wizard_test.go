package workflow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/fieldbook/FieldBooking-Service/internal/usecase/create_booking"
	getAvailableFields "github.com/fieldbook/FieldBooking-Service/internal/usecase/get_available_fields"
)

type fakeAvailableFields struct {
	fields []getAvailableFields.FieldItem
	calls  int
}

func (f *fakeAvailableFields) Execute(_ context.Context, req *getAvailableFields.Request) (*getAvailableFields.Response, error) {
	f.calls++
	return &getAvailableFields.Response{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Fields:    f.fields,
	}, nil
}

type fakeCreateBooking struct {
	err   error
	calls int
}

func (f *fakeCreateBooking) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &createBooking.Response{
		ID:            1,
		Code:          "c0ffee",
		UserID:        req.UserID,
		FieldID:       req.FieldID,
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Status:        "unconfirmed",
		PaymentMethod: req.PaymentMethod,
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var futureDate = time.Now().AddDate(0, 1, 0)

func newTestWizard(create *fakeCreateBooking) (*Wizard, *fakeAvailableFields) {
	available := &fakeAvailableFields{fields: []getAvailableFields.FieldItem{
		{ID: 1, Name: "Champions Arena"},
		{ID: 2, Name: "Victory Field"},
	}}
	return NewWizard(available, create, nopLogger{}), available
}

// advanceToConfirmation прогоняет мастер по happy path до подтверждения
func advanceToConfirmation(t *testing.T, w *Wizard) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, w.SelectDate(futureDate))
	_, err := w.Next(ctx)
	require.NoError(t, err)

	require.NoError(t, w.SelectTime("18:00", "20:00"))
	_, err = w.Next(ctx)
	require.NoError(t, err)

	require.NoError(t, w.SelectField(1))
	_, err = w.Next(ctx)
	require.NoError(t, err)

	require.NoError(t, w.SelectPayment("cash"))
	_, err = w.Next(ctx)
	require.NoError(t, err)

	require.Equal(t, StageConfirmation, w.Stage())
}

func TestTransition(t *testing.T) {
	tests := []struct {
		name    string
		stage   Stage
		event   Event
		want    Stage
		wantErr bool
	}{
		{name: "forward from first", stage: StageDateSelection, event: EventNext, want: StageTimeSelection},
		{name: "forward to last", stage: StagePaymentSelection, event: EventNext, want: StageConfirmation},
		{name: "back from middle", stage: StageFieldSelection, event: EventBack, want: StageTimeSelection},
		{name: "back from first is forbidden", stage: StageDateSelection, event: EventBack, wantErr: true},
		{name: "forward from last is forbidden", stage: StageConfirmation, event: EventNext, wantErr: true},
		{name: "unknown stage", stage: Stage("nowhere"), event: EventNext, wantErr: true},
		{name: "unknown event", stage: StageDateSelection, event: Event("jump"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transition(tt.stage, tt.event)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTransition)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestWizardHappyPath(t *testing.T) {
	create := &fakeCreateBooking{}
	w, available := newTestWizard(create)

	advanceToConfirmation(t, w)
	assert.Equal(t, 1, available.calls, "field list is loaded when entering field selection")

	resp, err := w.Submit(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(10), resp.UserID)
	assert.Equal(t, 1, create.calls)
}

func TestWizardStageGates(t *testing.T) {
	w, _ := newTestWizard(&fakeCreateBooking{})
	ctx := context.Background()

	// Вперед без выбранной даты нельзя
	_, err := w.Next(ctx)
	assert.ErrorIs(t, err, ErrStageIncomplete)

	require.NoError(t, w.SelectDate(futureDate))
	_, err = w.Next(ctx)
	require.NoError(t, err)

	// Вперед без выбранного времени нельзя
	_, err = w.Next(ctx)
	assert.ErrorIs(t, err, ErrStageIncomplete)
}

func TestWizardSelectionValidation(t *testing.T) {
	w, _ := newTestWizard(&fakeCreateBooking{})
	ctx := context.Background()

	assert.ErrorIs(t, w.SelectDate(time.Time{}), ErrInvalidSelection)
	assert.ErrorIs(t, w.SelectDate(time.Now().AddDate(0, 0, -1)), ErrInvalidSelection)
	assert.ErrorIs(t, w.SelectTime("18:00", "20:00"), ErrInvalidSelection, "time belongs to the second stage")

	require.NoError(t, w.SelectDate(futureDate))
	_, err := w.Next(ctx)
	require.NoError(t, err)

	assert.ErrorIs(t, w.SelectTime("20:00", "18:00"), ErrInvalidSelection)
	assert.ErrorIs(t, w.SelectTime("18:30", "19:30"), ErrInvalidSelection, "whole hours only")
	assert.ErrorIs(t, w.SelectTime("20:00", "22:00"), ErrInvalidSelection, "outside operating hours")
	require.NoError(t, w.SelectTime("18:00", "20:00"))
	_, err = w.Next(ctx)
	require.NoError(t, err)

	assert.ErrorIs(t, w.SelectField(99), ErrFieldNotOffered)
	require.NoError(t, w.SelectField(2))
	_, err = w.Next(ctx)
	require.NoError(t, err)

	assert.ErrorIs(t, w.SelectPayment("card"), ErrInvalidSelection)
	require.NoError(t, w.SelectPayment("bank"))
}

func TestWizardBackNavigation(t *testing.T) {
	w, _ := newTestWizard(&fakeCreateBooking{})
	ctx := context.Background()

	_, err := w.Back()
	assert.ErrorIs(t, err, ErrInvalidTransition, "no way back from the first stage")

	require.NoError(t, w.SelectDate(futureDate))
	_, err = w.Next(ctx)
	require.NoError(t, err)

	stage, err := w.Back()
	require.NoError(t, err)
	assert.Equal(t, StageDateSelection, stage)
	assert.Equal(t, futureDate, w.Selection().Date, "selection survives backward navigation")
}

func TestWizardSubmitRequiresAuthentication(t *testing.T) {
	create := &fakeCreateBooking{}
	w, _ := newTestWizard(create)
	advanceToConfirmation(t, w)

	_, err := w.Submit(context.Background(), 0)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Zero(t, create.calls)
}

func TestWizardSubmitBeforeConfirmation(t *testing.T) {
	w, _ := newTestWizard(&fakeCreateBooking{})

	_, err := w.Submit(context.Background(), 10)
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestWizardSubmitConflictReturnsToFieldSelection(t *testing.T) {
	create := &fakeCreateBooking{err: createBooking.ErrSlotConflict}
	w, available := newTestWizard(create)
	advanceToConfirmation(t, w)

	_, err := w.Submit(context.Background(), 10)
	assert.ErrorIs(t, err, createBooking.ErrSlotConflict)

	assert.Equal(t, StageFieldSelection, w.Stage(), "conflict sends the user back to field selection")
	assert.Zero(t, w.Selection().FieldID, "stale field choice is dropped")
	assert.Equal(t, 2, available.calls, "offered list is refreshed after the conflict")
}

func TestWizardSubmitFieldDisabledReturnsToFieldSelection(t *testing.T) {
	create := &fakeCreateBooking{err: createBooking.ErrFieldUnavailable}
	w, _ := newTestWizard(create)
	advanceToConfirmation(t, w)

	_, err := w.Submit(context.Background(), 10)
	assert.ErrorIs(t, err, createBooking.ErrFieldUnavailable)
	assert.Equal(t, StageFieldSelection, w.Stage())
}

func TestWizardChangingTimeResetsFieldChoice(t *testing.T) {
	w, _ := newTestWizard(&fakeCreateBooking{})
	ctx := context.Background()

	require.NoError(t, w.SelectDate(futureDate))
	_, err := w.Next(ctx)
	require.NoError(t, err)
	require.NoError(t, w.SelectTime("18:00", "20:00"))
	_, err = w.Next(ctx)
	require.NoError(t, err)
	require.NoError(t, w.SelectField(1))

	// Возвращаемся и меняем время: выбранное поле больше не актуально
	_, err = w.Back()
	require.NoError(t, err)
	require.NoError(t, w.SelectTime("09:00", "10:00"))

	assert.Zero(t, w.Selection().FieldID)
	assert.Empty(t, w.OfferedFields())
}
