package update_availability

import (
	"context"

	"github.com/m04kA/GCA-LessonService/internal/service/availability/models"
)

type AvailabilityService interface {
	Update(ctx context.Context, windowID int64, userID int64, req *models.UpdateWindowRequest) (*models.WindowResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
