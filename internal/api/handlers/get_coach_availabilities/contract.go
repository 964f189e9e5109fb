package get_coach_availabilities

import (
	"context"

	"github.com/m04kA/GCA-LessonService/internal/service/availability/models"
)

type AvailabilityService interface {
	GetCoachWindows(ctx context.Context, coachID int64) (*models.WindowListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
