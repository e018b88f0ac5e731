package list_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fieldbook/FieldBooking-Service/internal/api/handlers"
	"github.com/fieldbook/FieldBooking-Service/internal/api/middleware"
	"github.com/fieldbook/FieldBooking-Service/internal/domain"
	"github.com/fieldbook/FieldBooking-Service/internal/service/bookings"
	"github.com/fieldbook/FieldBooking-Service/internal/service/bookings/models"
	"github.com/fieldbook/FieldBooking-Service/pkg/ptr"
)

const (
	msgInvalidFieldID = "некорректный ID поля"
	msgInvalidDate    = "некорректная дата, ожидается YYYY-MM-DD"
	msgInvalidFilter  = "некорректный фильтр"
	msgForbidden      = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?fieldId=&date=&status=&includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authorization is required")
		return
	}

	query := r.URL.Query()
	serviceReq := &models.ListBookingsRequest{}

	if fieldIDStr := query.Get("fieldId"); fieldIDStr != "" {
		fieldID, err := strconv.ParseInt(fieldIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid field ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFieldID)
			return
		}
		serviceReq.FieldID = ptr.Ptr(fieldID)
	}

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		serviceReq.Date = ptr.Ptr(date)
	}

	if status := query.Get("status"); status != "" {
		serviceReq.Status = ptr.Ptr(status)
	}

	serviceReq.IncludeInactive = query.Get("includeInactive") == "true"

	result, err := h.service.ListAll(r.Context(), serviceReq, actor)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /bookings - Access denied: user_id=%d", actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid filter")
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: count=%d", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
