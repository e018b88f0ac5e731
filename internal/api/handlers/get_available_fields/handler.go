package get_available_fields

import (
	"errors"
	"net/http"
	"time"

	"github.com/fieldbook/FieldBooking-Service/internal/api/handlers"
	"github.com/fieldbook/FieldBooking-Service/internal/domain"
	getAvailableFields "github.com/fieldbook/FieldBooking-Service/internal/usecase/get_available_fields"
	"github.com/fieldbook/FieldBooking-Service/pkg/types"
)

const (
	msgInvalidDate  = "некорректная дата, ожидается YYYY-MM-DD"
	msgInvalidTime  = "некорректное время, ожидается HH:MM"
	msgInvalidRange = "некорректный временной интервал"
	msgDateInPast   = "дата в прошлом"
	msgInvalidInput = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableFieldsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableFieldsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/fields/available?date=YYYY-MM-DD&startTime=HH:MM&endTime=HH:MM
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /fields/available - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	startTime, err := types.NewTimeStringFromString(query.Get("startTime"))
	if err != nil {
		h.logger.Warn("GET /fields/available - Invalid start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	endTime, err := types.NewTimeStringFromString(query.Get("endTime"))
	if err != nil {
		h.logger.Warn("GET /fields/available - Invalid end time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableFields.Request{
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableFields.ErrInvalidRange):
			h.logger.Warn("GET /fields/available - Invalid time range: %s-%s", startTime, endTime)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getAvailableFields.ErrInvalidDate):
			h.logger.Warn("GET /fields/available - Date in past: %s", date.Format(domain.DateFormat))
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableFields.ErrInvalidInput):
			h.logger.Warn("GET /fields/available - Invalid input")
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /fields/available - Failed to get available fields: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /fields/available - Fields retrieved successfully: date=%s, count=%d",
		date.Format(domain.DateFormat), len(result.Fields))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
