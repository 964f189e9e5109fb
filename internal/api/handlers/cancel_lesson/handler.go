package cancel_lesson

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/GCA-LessonService/internal/api/handlers"
	"github.com/m04kA/GCA-LessonService/internal/api/middleware"
	"github.com/m04kA/GCA-LessonService/internal/service/lessons"
)

const (
	msgInvalidLessonID = "некорректный ID урока"
	msgNotFound        = "урок не найден"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgForbidden       = "доступ запрещен"
)

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

// Handle PATCH /api/v1/lessons/{lessonId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	lessonID, err := strconv.ParseInt(vars["lessonId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /lessons/{id}/cancel - Invalid lesson ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLessonID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /lessons/{id}/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Cancel(r.Context(), lessonID, userID); err != nil {
		switch {
		case errors.Is(err, lessons.ErrLessonNotFound):
			h.logger.Warn("PATCH /lessons/{id}/cancel - Lesson not found: lesson_id=%d", lessonID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, lessons.ErrAccessDenied):
			h.logger.Warn("PATCH /lessons/{id}/cancel - Access denied: lesson_id=%d, user_id=%d",
				lessonID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, lessons.ErrStorageUnavailable):
			h.logger.Error("PATCH /lessons/{id}/cancel - Storage unavailable: %v", err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("PATCH /lessons/{id}/cancel - Failed to cancel lesson: lesson_id=%d, error=%v",
				lessonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /lessons/{id}/cancel - Lesson cancelled successfully: lesson_id=%d, user_id=%d",
		lessonID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
