package availability

import (
	"fmt"

	"github.com/m04kA/GCA-LessonService/internal/domain"
	"github.com/m04kA/GCA-LessonService/pkg/types"
)

// buildWindow валидирует поля запроса и собирает доменную модель окна
func buildWindow(coachID int64, dayOfWeek int, startTime, endTime string, timezone *string) (*domain.AvailabilityWindow, error) {
	if dayOfWeek < domain.MinDayOfWeek || dayOfWeek > domain.MaxDayOfWeek {
		return nil, fmt.Errorf("%w: dayOfWeek must be between %d and %d",
			ErrInvalidInput, domain.MinDayOfWeek, domain.MaxDayOfWeek)
	}

	start, err := types.NewTimeStringFromString(startTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	end, err := types.NewTimeStringFromString(endTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	if !start.IsBefore(end) {
		return nil, fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	return &domain.AvailabilityWindow{
		CoachID:   coachID,
		DayOfWeek: dayOfWeek,
		StartTime: start,
		EndTime:   end,
		Timezone:  timezone,
	}, nil
}

// findConflict ищет первое окно тренера, пересекающееся с кандидатом
// Само обновляемое окно (совпадающий ID) из проверки исключается
func findConflict(candidate *domain.AvailabilityWindow, existing []*domain.AvailabilityWindow) *domain.AvailabilityWindow {
	for _, window := range existing {
		if window.ID == candidate.ID {
			continue
		}
		if candidate.OverlapsWindow(window) {
			return window
		}
	}
	return nil
}
