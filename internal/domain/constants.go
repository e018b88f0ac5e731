package domain

import "github.com/fieldbook/FieldBooking-Service/pkg/types"

// DateFormat is the wire representation of a booking date (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// Operating hours: bookable slots run from 09:00 up to 21:00 in whole-hour
// increments. The last slot is 20:00-21:00.
const (
	OpeningTime types.TimeString = "09:00"
	ClosingTime types.TimeString = "21:00"

	SlotIncrementMinutes = 60
	MinutesPerHour       = 60
)

// ActiveStatuses список статусов, участвующих в инварианте непересечения.
// Отменённые бронирования слот не занимают.
var ActiveStatuses = []BookingStatus{
	StatusUnconfirmed,
	StatusConfirmed,
}
