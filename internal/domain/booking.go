package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusUnconfirmed BookingStatus = "unconfirmed"
	StatusConfirmed   BookingStatus = "confirmed"
	StatusCancelled   BookingStatus = "cancelled"
)

// statusTransitions допустимые переходы статусов.
// Cancelled — терминальный статус: из него выхода нет.
var statusTransitions = map[BookingStatus][]BookingStatus{
	StatusUnconfirmed: {StatusConfirmed, StatusCancelled},
	StatusConfirmed:   {StatusCancelled},
	StatusCancelled:   {},
}

// ValidStatus reports whether s is a known booking status.
func ValidStatus(s BookingStatus) bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransitionTo reports whether the status machine allows from -> to.
func CanTransitionTo(from, to BookingStatus) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// PaymentMethod represents how the booking will be paid
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentBank PaymentMethod = "bank"
)

// ValidPaymentMethod reports whether m is a known payment method.
func ValidPaymentMethod(m PaymentMethod) bool {
	return m == PaymentCash || m == PaymentBank
}

// Booking represents a field reservation.
// TotalPrice is fixed at creation time (pricePerHour x whole hours) and is
// never recomputed afterwards.
type Booking struct {
	ID            int64
	Code          string // public reference, e.g. for bank transfer memos
	FieldID       int64
	UserID        int64
	Date          time.Time // calendar day, clock part zeroed
	Slot          TimeRange
	TotalPrice    int64 // minor currency units
	Status        BookingStatus
	PaymentMethod PaymentMethod

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the booking occupies its slot
// (counts toward the no-overlap invariant).
func (b *Booking) IsActive() bool {
	return b.Status == StatusUnconfirmed || b.Status == StatusConfirmed
}

// IsCancelled reports whether the booking has been cancelled.
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled reports whether the booking can still be cancelled.
func (b *Booking) CanBeCancelled() bool {
	return CanTransitionTo(b.Status, StatusCancelled)
}

// BookingsFilter фильтр для админского списка бронирований
type BookingsFilter struct {
	FieldID         *int64         // по полю (опционально)
	Date            *time.Time     // по дате (опционально)
	Status          *BookingStatus // по статусу (опционально)
	IncludeInactive bool           // включать ли отменённые
}
