package reschedule_lesson

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/GCA-LessonService/internal/api/handlers"
	"github.com/m04kA/GCA-LessonService/internal/api/middleware"
	rescheduleLesson "github.com/m04kA/GCA-LessonService/internal/usecase/reschedule_lesson"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidLessonID    = "некорректный ID урока"
	msgInvalidTime        = "некорректный формат времени, ожидается RFC3339"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "урок не найден"
	msgForbidden          = "доступ запрещен"
	msgCannotReschedule   = "урок в этом статусе нельзя перенести"
	msgCoachConflict      = "у тренера уже есть урок в это время"
	msgStudentConflict    = "у ученика уже есть урок в это время"
	msgInvalidTimeRange   = "некорректный временной интервал урока"
)

type Handler struct {
	useCase RescheduleLessonUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleLessonUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/lessons/{lessonId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	lessonID, err := strconv.ParseInt(vars["lessonId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /lessons/{id}/reschedule - Invalid lesson ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLessonID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /lessons/{id}/reschedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req RescheduleLessonRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /lessons/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(lessonID, userID)
	if err != nil {
		h.logger.Warn("PATCH /lessons/{id}/reschedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleLesson.ErrLessonNotFound):
			h.logger.Warn("PATCH /lessons/{id}/reschedule - Lesson not found: lesson_id=%d", lessonID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleLesson.ErrAccessDenied):
			h.logger.Warn("PATCH /lessons/{id}/reschedule - Access denied: lesson_id=%d, user_id=%d",
				lessonID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, rescheduleLesson.ErrCannotReschedule):
			h.logger.Warn("PATCH /lessons/{id}/reschedule - Cannot reschedule: lesson_id=%d", lessonID)
			handlers.RespondConflict(w, msgCannotReschedule)

		case errors.Is(err, rescheduleLesson.ErrCoachTimeConflict):
			h.logger.Warn("PATCH /lessons/{id}/reschedule - Coach time conflict: lesson_id=%d", lessonID)
			handlers.RespondConflict(w, msgCoachConflict)

		case errors.Is(err, rescheduleLesson.ErrStudentTimeConflict):
			h.logger.Warn("PATCH /lessons/{id}/reschedule - Student time conflict: lesson_id=%d", lessonID)
			handlers.RespondConflict(w, msgStudentConflict)

		case errors.Is(err, rescheduleLesson.ErrInvalidTimeRange):
			h.logger.Warn("PATCH /lessons/{id}/reschedule - Invalid time range: lesson_id=%d", lessonID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, rescheduleLesson.ErrInvalidInput):
			h.logger.Warn("PATCH /lessons/{id}/reschedule - Invalid input: lesson_id=%d, error=%v", lessonID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, rescheduleLesson.ErrStorageUnavailable):
			h.logger.Error("PATCH /lessons/{id}/reschedule - Storage unavailable: %v", err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("PATCH /lessons/{id}/reschedule - Failed to reschedule: lesson_id=%d, error=%v",
				lessonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /lessons/{id}/reschedule - Lesson rescheduled successfully: lesson_id=%d, user_id=%d",
		lessonID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
