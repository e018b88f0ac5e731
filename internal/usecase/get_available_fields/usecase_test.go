package get_available_fields

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldbook/FieldBooking-Service/internal/domain"
	"github.com/fieldbook/FieldBooking-Service/pkg/types"
)

type fakeAvailability struct {
	fields   []*domain.Field
	lastSlot domain.TimeRange
}

func (s *fakeAvailability) AvailableFields(_ context.Context, _ time.Time, slot domain.TimeRange) ([]*domain.Field, error) {
	s.lastSlot = slot
	return s.fields, nil
}

type fixedTime struct{ now time.Time }

func (p fixedTime) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(fields ...*domain.Field) (*UseCase, *fakeAvailability) {
	availability := &fakeAvailability{fields: fields}
	uc := NewUseCase(availability, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)}
	return uc, availability
}

func testRequest(start, end string) *Request {
	return &Request{
		Date:      time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

func TestExecuteReturnsPricedFields(t *testing.T) {
	uc, _ := newTestUseCase(
		&domain.Field{ID: 1, Name: "Victory Field", PricePerHour: 350000, IsAvailable: true},
		&domain.Field{ID: 2, Name: "Riverside Grounds", PricePerHour: 700000, IsAvailable: true},
	)

	resp, err := uc.Execute(context.Background(), testRequest("18:00", "20:00"))
	require.NoError(t, err)

	require.Len(t, resp.Fields, 2)
	assert.Equal(t, int64(700000), resp.Fields[0].TotalPrice, "two hours at 350000")
	assert.Equal(t, int64(1400000), resp.Fields[1].TotalPrice)
	assert.Equal(t, types.TimeString("18:00"), resp.StartTime)
}

func TestExecuteEmptyListIsNotAnError(t *testing.T) {
	uc, _ := newTestUseCase()

	resp, err := uc.Execute(context.Background(), testRequest("18:00", "20:00"))
	require.NoError(t, err)
	assert.Empty(t, resp.Fields)
}

func TestExecuteValidation(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{name: "missing date", mutate: func(r *Request) { r.Date = time.Time{} }, wantErr: ErrInvalidInput},
		{name: "past date", mutate: func(r *Request) { r.Date = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }, wantErr: ErrInvalidDate},
		{name: "start after end", mutate: func(r *Request) { r.StartTime, r.EndTime = "20:00", "18:00" }, wantErr: ErrInvalidRange},
		{name: "not hour aligned", mutate: func(r *Request) { r.StartTime, r.EndTime = "18:30", "19:30" }, wantErr: ErrInvalidRange},
		{name: "outside operating hours", mutate: func(r *Request) { r.StartTime, r.EndTime = "20:00", "22:00" }, wantErr: ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testRequest("18:00", "20:00")
			tt.mutate(req)

			_, err := uc.Execute(ctx, req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
