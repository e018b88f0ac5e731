// Package fields содержит HTTP обработчики каталога полей.
// Чтение публичное, изменения только для администраторов.
package fields

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fieldbook/FieldBooking-Service/internal/api/handlers"
	"github.com/fieldbook/FieldBooking-Service/internal/api/middleware"
	fieldsService "github.com/fieldbook/FieldBooking-Service/internal/service/fields"
	"github.com/fieldbook/FieldBooking-Service/internal/service/fields/models"
)

const (
	msgInvalidFieldID     = "некорректный ID поля"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidField       = "некорректные данные поля"
	msgNotFound           = "поле не найдено"
	msgForbidden          = "доступ запрещен"
	msgHasBookings        = "поле с бронированиями нельзя удалить"
)

type Handler struct {
	service FieldService
	logger  Logger
}

func NewHandler(service FieldService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/fields
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /fields - Failed to list fields: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /fields - Fields retrieved successfully: count=%d", len(result.Fields))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/fields/{fieldId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	fieldID, ok := h.fieldID(w, r, "GET /fields/{fieldId}")
	if !ok {
		return
	}

	result, err := h.service.GetByID(r.Context(), fieldID)
	if err != nil {
		if errors.Is(err, fieldsService.ErrFieldNotFound) {
			h.logger.Warn("GET /fields/{fieldId} - Field not found: field_id=%d", fieldID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /fields/{fieldId} - Failed to get field: field_id=%d, error=%v", fieldID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /fields/{fieldId} - Field retrieved successfully: field_id=%d", fieldID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/fields
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authorization is required")
		return
	}

	var req models.SaveFieldRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /fields - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req, actor)
	if err != nil {
		switch {
		case errors.Is(err, fieldsService.ErrAccessDenied):
			h.logger.Warn("POST /fields - Access denied: user_id=%d", actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, fieldsService.ErrInvalidInput):
			h.logger.Warn("POST /fields - Invalid field data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidField)

		default:
			h.logger.Error("POST /fields - Failed to create field: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /fields - Field created successfully: field_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PATCH /api/v1/fields/{fieldId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authorization is required")
		return
	}

	fieldID, ok := h.fieldID(w, r, "PATCH /fields/{fieldId}")
	if !ok {
		return
	}

	var req models.SaveFieldRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /fields/{fieldId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), fieldID, &req, actor)
	if err != nil {
		switch {
		case errors.Is(err, fieldsService.ErrFieldNotFound):
			h.logger.Warn("PATCH /fields/{fieldId} - Field not found: field_id=%d", fieldID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, fieldsService.ErrAccessDenied):
			h.logger.Warn("PATCH /fields/{fieldId} - Access denied: field_id=%d, user_id=%d", fieldID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, fieldsService.ErrInvalidInput):
			h.logger.Warn("PATCH /fields/{fieldId} - Invalid field data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidField)

		default:
			h.logger.Error("PATCH /fields/{fieldId} - Failed to update field: field_id=%d, error=%v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /fields/{fieldId} - Field updated successfully: field_id=%d", fieldID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/fields/{fieldId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authorization is required")
		return
	}

	fieldID, ok := h.fieldID(w, r, "DELETE /fields/{fieldId}")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), fieldID, actor); err != nil {
		switch {
		case errors.Is(err, fieldsService.ErrFieldNotFound):
			h.logger.Warn("DELETE /fields/{fieldId} - Field not found: field_id=%d", fieldID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, fieldsService.ErrAccessDenied):
			h.logger.Warn("DELETE /fields/{fieldId} - Access denied: field_id=%d, user_id=%d", fieldID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, fieldsService.ErrFieldHasBookings):
			h.logger.Warn("DELETE /fields/{fieldId} - Field has bookings: field_id=%d", fieldID)
			handlers.RespondConflict(w, msgHasBookings)

		default:
			h.logger.Error("DELETE /fields/{fieldId} - Failed to delete field: field_id=%d, error=%v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /fields/{fieldId} - Field deleted successfully: field_id=%d", fieldID)
	handlers.RespondNoContent(w)
}

func (h *Handler) fieldID(w http.ResponseWriter, r *http.Request, op string) (int64, bool) {
	vars := mux.Vars(r)
	fieldID, err := strconv.ParseInt(vars["fieldId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid field ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return 0, false
	}
	return fieldID, true
}
