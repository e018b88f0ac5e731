package notify

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/fieldbook/FieldBooking-Service/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Service отправляет почтовые уведомления о бронированиях через SendGrid.
// Все отправки best-effort: ошибка логируется и не влияет на запрос.
type Service struct {
	enabled   bool
	apiKey    string
	fromEmail string
	fromName  string
	logger    Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(enabled bool, apiKey, fromEmail, fromName string, logger Logger) *Service {
	if enabled && apiKey == "" {
		logger.Warn("notify: email enabled but sendgrid_api_key is empty, notifications will be skipped")
		enabled = false
	}
	return &Service{
		enabled:   enabled,
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		logger:    logger,
	}
}

// BookingCreated отправляет письмо о созданном бронировании
func (s *Service) BookingCreated(booking *domain.Booking, user *domain.User) {
	subject := fmt.Sprintf("Booking %s received", booking.Code)
	body := fmt.Sprintf(
		"Hello %s,\n\n"+
			"We received your booking %s.\n\n"+
			"Date: %s\n"+
			"Time: %s\n"+
			"Total: %d\n"+
			"Payment: %s\n\n"+
			"The booking is pending confirmation by our staff.\n",
		user.Name, booking.Code,
		booking.Date.Format(domain.DateFormat), booking.Slot,
		booking.TotalPrice, booking.PaymentMethod,
	)
	s.send(user, subject, body)
}

// BookingStatusChanged отправляет письмо о смене статуса бронирования
func (s *Service) BookingStatusChanged(booking *domain.Booking, user *domain.User) {
	subject := fmt.Sprintf("Booking %s is now %s", booking.Code, booking.Status)
	body := fmt.Sprintf(
		"Hello %s,\n\n"+
			"Your booking %s for %s %s is now %s.\n",
		user.Name, booking.Code,
		booking.Date.Format(domain.DateFormat), booking.Slot, booking.Status,
	)
	s.send(user, subject, body)
}

func (s *Service) send(user *domain.User, subject, plainText string) {
	if !s.enabled {
		return
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(user.Name, user.Email)
	message := mail.NewSingleEmail(from, subject, to, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		s.logger.Error("notify: failed to send %q to %s: %v", subject, user.Email, err)
		return
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		s.logger.Error("notify: sendgrid returned status %d for %q to %s", response.StatusCode, subject, user.Email)
		return
	}

	s.logger.Info("notify: sent %q to %s", subject, user.Email)
}
