package models

import (
	"errors"
	"time"

	"github.com/fieldbook/FieldBooking-Service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Actor аутентифицированный инициатор операции.
// Заполняется из JWT в auth middleware — явный контекст вместо
// неявного глобального состояния сессии.
type Actor struct {
	UserID  int64
	IsAdmin bool
}

// Request модели

// ListUserBookingsRequest запрос бронирований пользователя
type ListUserBookingsRequest struct {
	UserID int64
	Status *string
}

// ListBookingsRequest запрос админского списка бронирований
type ListBookingsRequest struct {
	FieldID         *int64
	Date            *time.Time
	Status          *string
	IncludeInactive bool
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		FieldID:         r.FieldID,
		Date:            r.Date,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	Status string
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64  `json:"id"`
	Code          string `json:"code"`
	UserID        int64  `json:"userId"`
	FieldID       int64  `json:"fieldId"`
	Date          string `json:"date"`      // "2025-07-15"
	StartTime     string `json:"startTime"` // "18:00"
	EndTime       string `json:"endTime"`   // "20:00"
	TotalPrice    int64  `json:"totalPrice"`
	Status        string `json:"status"`
	PaymentMethod string `json:"paymentMethod"`
	CreatedAt     string `json:"createdAt"` // RFC3339
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:            b.ID,
		Code:          b.Code,
		UserID:        b.UserID,
		FieldID:       b.FieldID,
		Date:          b.Date.Format(domain.DateFormat),
		StartTime:     b.Slot.Start.String(),
		EndTime:       b.Slot.End.String(),
		TotalPrice:    b.TotalPrice,
		Status:        string(b.Status),
		PaymentMethod: string(b.PaymentMethod),
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !domain.ValidStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
