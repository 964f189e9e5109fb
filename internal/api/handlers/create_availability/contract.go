package create_availability

import (
	"context"

	"github.com/m04kA/GCA-LessonService/internal/service/availability/models"
)

type AvailabilityService interface {
	Create(ctx context.Context, userID int64, req *models.CreateWindowRequest) (*models.WindowResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
