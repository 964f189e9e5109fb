package get_coach_availabilities

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/GCA-LessonService/internal/api/handlers"
	"github.com/m04kA/GCA-LessonService/internal/service/availability"
)

const (
	msgInvalidCoachID = "некорректный ID тренера"
	msgCoachNotFound  = "тренер не найден"
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

// Handle GET /api/v1/coaches/{coachId}/availabilities
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	coachID, err := strconv.ParseInt(vars["coachId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /coaches/{id}/availabilities - Invalid coach ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCoachID)
		return
	}

	result, err := h.service.GetCoachWindows(r.Context(), coachID)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrCoachNotFound):
			h.logger.Warn("GET /coaches/{id}/availabilities - Coach not found: coach_id=%d", coachID)
			handlers.RespondNotFound(w, msgCoachNotFound)

		case errors.Is(err, availability.ErrStorageUnavailable):
			h.logger.Error("GET /coaches/{id}/availabilities - Storage unavailable: %v", err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /coaches/{id}/availabilities - Failed to get windows: coach_id=%d, error=%v",
				coachID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /coaches/{id}/availabilities - Returned %d windows: coach_id=%d",
		len(result.Availabilities), coachID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
