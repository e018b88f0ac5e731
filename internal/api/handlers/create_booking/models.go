package create_booking

import (
	"time"

	"github.com/fieldbook/FieldBooking-Service/internal/domain"
	createBooking "github.com/fieldbook/FieldBooking-Service/internal/usecase/create_booking"
	"github.com/fieldbook/FieldBooking-Service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	FieldID       int64  `json:"fieldId"`
	Date          string `json:"date"`      // "2025-07-15"
	StartTime     string `json:"startTime"` // "18:00"
	EndTime       string `json:"endTime"`   // "20:00"
	PaymentMethod string `json:"paymentMethod"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64  `json:"id"`
	Code          string `json:"code"`
	UserID        int64  `json:"userId"`
	FieldID       int64  `json:"fieldId"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	TotalPrice    int64  `json:"totalPrice"`
	Status        string `json:"status"`
	PaymentMethod string `json:"paymentMethod"`
	CreatedAt     string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// UserID берется из токена, а не из тела: клиент не бронирует от чужого имени.
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:        userID,
		FieldID:       r.FieldID,
		Date:          date,
		StartTime:     startTime,
		EndTime:       endTime,
		PaymentMethod: r.PaymentMethod,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		Code:          resp.Code,
		UserID:        resp.UserID,
		FieldID:       resp.FieldID,
		Date:          resp.Date.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		EndTime:       resp.EndTime.String(),
		TotalPrice:    resp.TotalPrice,
		Status:        resp.Status,
		PaymentMethod: resp.PaymentMethod,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
