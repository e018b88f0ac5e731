package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldbook/FieldBooking-Service/internal/domain"
	"github.com/fieldbook/FieldBooking-Service/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (r *fakeBookingRepo) ListByField(_ context.Context, fieldID int64, date time.Time, activeOnly bool) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.FieldID != fieldID || !b.Date.Equal(date) {
			continue
		}
		if activeOnly && !b.IsActive() {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

type fakeFieldRepo struct {
	fields []*domain.Field
}

func (r *fakeFieldRepo) List(_ context.Context, onlyAvailable bool) ([]*domain.Field, error) {
	var out []*domain.Field
	for _, f := range r.fields {
		if onlyAvailable && !f.IsAvailable {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustRange(t *testing.T, start, end string) domain.TimeRange {
	t.Helper()
	r, err := domain.NewTimeRange(types.TimeString(start), types.TimeString(end))
	require.NoError(t, err)
	return r
}

func TestIsAvailable(t *testing.T) {
	date := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	booked := mustRange(t, "18:00", "20:00")

	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, FieldID: 1, Date: date, Slot: booked, Status: domain.StatusConfirmed},
		{ID: 2, FieldID: 1, Date: date, Slot: mustRange(t, "09:00", "11:00"), Status: domain.StatusCancelled},
	}}
	svc := NewService(repo, &fakeFieldRepo{}, nopLogger{})
	ctx := context.Background()

	tests := []struct {
		name string
		slot domain.TimeRange
		want bool
	}{
		{name: "overlapping slot is busy", slot: mustRange(t, "19:00", "21:00"), want: false},
		{name: "contained slot is busy", slot: mustRange(t, "18:00", "19:00"), want: false},
		{name: "adjacent slot is free", slot: mustRange(t, "20:00", "21:00"), want: true},
		{name: "disjoint slot is free", slot: mustRange(t, "14:00", "16:00"), want: true},
		{name: "cancelled bookings do not block", slot: mustRange(t, "09:00", "11:00"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.IsAvailable(ctx, 1, date, tt.slot)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsAvailableIdempotentRead(t *testing.T) {
	date := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, FieldID: 1, Date: date, Slot: mustRange(t, "18:00", "20:00"), Status: domain.StatusConfirmed},
	}}
	svc := NewService(repo, &fakeFieldRepo{}, nopLogger{})
	ctx := context.Background()
	slot := mustRange(t, "19:00", "21:00")

	first, err := svc.IsAvailable(ctx, 1, date, slot)
	require.NoError(t, err)
	second, err := svc.IsAvailable(ctx, 1, date, slot)
	require.NoError(t, err)

	assert.Equal(t, first, second, "no intervening writes, same answer")
}

func TestAvailableFields(t *testing.T) {
	date := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	slot := mustRange(t, "18:00", "20:00")

	fields := &fakeFieldRepo{fields: []*domain.Field{
		{ID: 1, Name: "Champions Arena", IsAvailable: true},
		{ID: 2, Name: "Victory Field", IsAvailable: true},
		{ID: 3, Name: "Eastside Soccer Park", IsAvailable: false},
	}}
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, FieldID: 1, Date: date, Slot: mustRange(t, "17:00", "19:00"), Status: domain.StatusUnconfirmed},
	}}
	svc := NewService(repo, fields, nopLogger{})

	got, err := svc.AvailableFields(context.Background(), date, slot)
	require.NoError(t, err)

	// Поле 1 занято, поле 3 выключено вручную
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}
