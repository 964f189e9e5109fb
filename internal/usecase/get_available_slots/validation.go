package get_available_slots

import (
	"fmt"

	"github.com/m04kA/GCA-LessonService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Возвращает длительность урока, подставляя дефолт при нулевом значении
func validateRequest(req *Request) (int, error) {
	if req.CoachID <= 0 {
		return 0, fmt.Errorf("%w: coachID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return 0, fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = domain.DefaultSlotDurationMinutes
	}

	if duration < domain.MinSlotDurationMinutes || duration > domain.MaxSlotDurationMinutes {
		return 0, fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidDuration, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	return duration, nil
}
