package update_lesson_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/GCA-LessonService/internal/api/handlers"
	"github.com/m04kA/GCA-LessonService/internal/api/middleware"
	"github.com/m04kA/GCA-LessonService/internal/service/lessons"
	"github.com/m04kA/GCA-LessonService/internal/service/lessons/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidLessonID    = "некорректный ID урока"
	msgInvalidStatus      = "некорректный статус урока"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "урок не найден"
	msgForbidden          = "статусом урока управляет тренер"
	msgInvalidTransition  = "отменённый урок нельзя вернуть в работу"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type Handler struct {
	service LessonService
	logger  Logger
}

func NewHandler(service LessonService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/lessons/{lessonId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	lessonID, err := strconv.ParseInt(vars["lessonId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /lessons/{id}/status - Invalid lesson ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLessonID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /lessons/{id}/status - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /lessons/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := &models.UpdateStatusRequest{
		UserID: userID,
		Status: req.Status,
	}

	if err := h.service.UpdateStatus(r.Context(), lessonID, serviceReq); err != nil {
		switch {
		case errors.Is(err, lessons.ErrLessonNotFound):
			h.logger.Warn("PATCH /lessons/{id}/status - Lesson not found: lesson_id=%d", lessonID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, lessons.ErrAccessDenied):
			h.logger.Warn("PATCH /lessons/{id}/status - Access denied: lesson_id=%d, user_id=%d",
				lessonID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, lessons.ErrInvalidTransition):
			h.logger.Warn("PATCH /lessons/{id}/status - Invalid transition: lesson_id=%d, status=%s",
				lessonID, req.Status)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, lessons.ErrInvalidInput):
			h.logger.Warn("PATCH /lessons/{id}/status - Invalid status: lesson_id=%d, status=%s",
				lessonID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, lessons.ErrStorageUnavailable):
			h.logger.Error("PATCH /lessons/{id}/status - Storage unavailable: %v", err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("PATCH /lessons/{id}/status - Failed to update status: lesson_id=%d, error=%v",
				lessonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /lessons/{id}/status - Status updated successfully: lesson_id=%d, status=%s",
		lessonID, req.Status)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
