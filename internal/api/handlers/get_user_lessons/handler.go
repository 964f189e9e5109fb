package get_user_lessons

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/GCA-LessonService/internal/api/handlers"
	"github.com/m04kA/GCA-LessonService/internal/api/middleware"
	"github.com/m04kA/GCA-LessonService/internal/domain"
	"github.com/m04kA/GCA-LessonService/internal/service/lessons"
	"github.com/m04kA/GCA-LessonService/internal/service/lessons/models"
)

const (
	msgInvalidUserID  = "некорректный ID пользователя"
	msgInvalidStatus  = "некорректный статус урока"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgForeignLessons = "можно просматривать только свои уроки"
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

// Handle GET /api/v1/users/{userId}/lessons
// Query params: status (optional), date (optional, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	targetUserID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{id}/lessons - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	callerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{id}/lessons - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Чужая история уроков недоступна
	if callerID != targetUserID {
		h.logger.Warn("GET /users/{id}/lessons - Access denied: caller=%d, target=%d", callerID, targetUserID)
		handlers.RespondForbidden(w, msgForeignLessons)
		return
	}

	req := &models.GetUserLessonsRequest{UserID: targetUserID}

	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /users/{id}/lessons - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	result, err := h.service.GetUserLessons(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, lessons.ErrInvalidInput):
			h.logger.Warn("GET /users/{id}/lessons - Invalid status: user_id=%d", targetUserID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, lessons.ErrStorageUnavailable):
			h.logger.Error("GET /users/{id}/lessons - Storage unavailable: %v", err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /users/{id}/lessons - Failed to get lessons: user_id=%d, error=%v",
				targetUserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{id}/lessons - Returned %d lessons: user_id=%d",
		len(result.Lessons), targetUserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
