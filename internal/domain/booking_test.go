package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{name: "unconfirmed to confirmed", from: StatusUnconfirmed, to: StatusConfirmed, want: true},
		{name: "unconfirmed to cancelled", from: StatusUnconfirmed, to: StatusCancelled, want: true},
		{name: "confirmed to cancelled", from: StatusConfirmed, to: StatusCancelled, want: true},
		{name: "cancelled is terminal", from: StatusCancelled, to: StatusConfirmed, want: false},
		{name: "cancelled cannot return to unconfirmed", from: StatusCancelled, to: StatusUnconfirmed, want: false},
		{name: "confirmed cannot return to unconfirmed", from: StatusConfirmed, to: StatusUnconfirmed, want: false},
		{name: "no self transition", from: StatusConfirmed, to: StatusConfirmed, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransitionTo(tt.from, tt.to))
		})
	}
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusUnconfirmed))
	assert.True(t, ValidStatus(StatusConfirmed))
	assert.True(t, ValidStatus(StatusCancelled))
	assert.False(t, ValidStatus("pending"))
	assert.False(t, ValidStatus(""))
}

func TestBookingIsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusUnconfirmed}).IsActive())
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
}

func TestBookingCanBeCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusUnconfirmed}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())
}

func TestActiveStatusesMatchIsActive(t *testing.T) {
	// Список для SQL-фильтров обязан совпадать с IsActive
	for _, status := range ActiveStatuses {
		assert.True(t, (&Booking{Status: status}).IsActive(), status)
	}
	assert.NotContains(t, ActiveStatuses, StatusCancelled)
	assert.Len(t, ActiveStatuses, 2)
}

func TestValidPaymentMethod(t *testing.T) {
	assert.True(t, ValidPaymentMethod(PaymentCash))
	assert.True(t, ValidPaymentMethod(PaymentBank))
	assert.False(t, ValidPaymentMethod("card"))
	assert.False(t, ValidPaymentMethod(""))
}

func TestFieldPriceFor(t *testing.T) {
	field := &Field{PricePerHour: 350000}

	slot, err := NewTimeRange("10:00", "12:00")
	assert.NoError(t, err)
	assert.Equal(t, int64(700000), field.PriceFor(slot))

	oneHour, err := NewTimeRange("18:00", "19:00")
	assert.NoError(t, err)
	assert.Equal(t, int64(350000), field.PriceFor(oneHour))
}
