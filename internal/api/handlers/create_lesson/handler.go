package create_lesson

import (
	"errors"
	"net/http"

	"github.com/m04kA/GCA-LessonService/internal/api/handlers"
	"github.com/m04kA/GCA-LessonService/internal/api/middleware"
	createLesson "github.com/m04kA/GCA-LessonService/internal/usecase/create_lesson"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается RFC3339"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgCoachNotFound      = "тренер не найден"
	msgCoachConflict      = "у тренера уже есть урок в это время"
	msgStudentConflict    = "у вас уже есть урок в это время"
	msgInvalidTimeRange   = "некорректный временной интервал урока"
)

type Handler struct {
	useCase CreateLessonUseCase
	logger  Logger
}

func NewHandler(useCase CreateLessonUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/lessons
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Ученик - аутентифицированный пользователь
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /lessons - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateLessonRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /lessons - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /lessons - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createLesson.ErrCoachTimeConflict):
			h.logger.Warn("POST /lessons - Coach time conflict: user_id=%d, coach_id=%d", userID, req.CoachID)
			handlers.RespondConflict(w, msgCoachConflict)

		case errors.Is(err, createLesson.ErrStudentTimeConflict):
			h.logger.Warn("POST /lessons - Student time conflict: user_id=%d, coach_id=%d", userID, req.CoachID)
			handlers.RespondConflict(w, msgStudentConflict)

		case errors.Is(err, createLesson.ErrCoachNotFound):
			h.logger.Warn("POST /lessons - Coach not found: coach_id=%d", req.CoachID)
			handlers.RespondNotFound(w, msgCoachNotFound)

		case errors.Is(err, createLesson.ErrInvalidTimeRange):
			h.logger.Warn("POST /lessons - Invalid time range: user_id=%d, coach_id=%d", userID, req.CoachID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createLesson.ErrInvalidInput):
			h.logger.Warn("POST /lessons - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createLesson.ErrStorageUnavailable):
			h.logger.Error("POST /lessons - Storage unavailable: %v", err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("POST /lessons - Failed to create lesson: user_id=%d, coach_id=%d, error=%v",
				userID, req.CoachID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /lessons - Lesson created successfully: lesson_id=%d, user_id=%d, coach_id=%d",
		result.ID, userID, req.CoachID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
