package create_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/GCA-LessonService/internal/api/handlers"
	"github.com/m04kA/GCA-LessonService/internal/api/middleware"
	"github.com/m04kA/GCA-LessonService/internal/service/availability"
	"github.com/m04kA/GCA-LessonService/internal/service/availability/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotACoach          = "окна доступности создаёт только тренер"
	msgWindowOverlap      = "окно пересекается с существующим окном"
	msgInvalidWindow      = "некорректные параметры окна доступности"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/availabilities
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /availabilities - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateWindowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availabilities - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrAccessDenied):
			h.logger.Warn("POST /availabilities - Not a coach: user_id=%d", userID)
			handlers.RespondForbidden(w, msgNotACoach)

		case errors.Is(err, availability.ErrWindowOverlap):
			h.logger.Warn("POST /availabilities - Window overlap: user_id=%d, error=%v", userID, err)
			handlers.RespondConflict(w, msgWindowOverlap)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /availabilities - Invalid window: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, availability.ErrStorageUnavailable):
			h.logger.Error("POST /availabilities - Storage unavailable: %v", err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("POST /availabilities - Failed to create window: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availabilities - Window created successfully: window_id=%d, user_id=%d",
		result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
