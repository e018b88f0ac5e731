// Package payment_methods отдает статический справочник способов оплаты.
// Обработка платежей не выполняется, справочник только для отображения.
package payment_methods

import (
	"net/http"

	"github.com/fieldbook/FieldBooking-Service/internal/api/handlers"
	"github.com/fieldbook/FieldBooking-Service/internal/domain"
)

type Logger interface {
	Info(format string, v ...interface{})
}

// PaymentMethod HTTP модель способа оплаты
type PaymentMethod struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PaymentMethodsResponse HTTP response model
type PaymentMethodsResponse struct {
	Methods []PaymentMethod `json:"methods"`
}

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/v1/payment-methods
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp := PaymentMethodsResponse{
		Methods: []PaymentMethod{
			{
				ID:          string(domain.PaymentCash),
				Name:        "Наличные",
				Description: "Оплата наличными на месте перед началом игры",
			},
			{
				ID:          string(domain.PaymentBank),
				Name:        "Банковский перевод",
				Description: "Перевод на счёт клуба, в назначении платежа укажите код бронирования",
			},
		},
	}

	h.logger.Info("GET /payment-methods - Payment methods retrieved")
	handlers.RespondJSON(w, http.StatusOK, resp)
}
