package update_lesson_status

import (
	"context"

	"github.com/m04kA/GCA-LessonService/internal/service/lessons/models"
)

type LessonService interface {
	UpdateStatus(ctx context.Context, lessonID int64, req *models.UpdateStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
