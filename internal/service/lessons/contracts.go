package lessons

import (
	"context"
	"time"

	"github.com/m04kA/GCA-LessonService/internal/domain"
)

// LessonRepository интерфейс репозитория уроков
type LessonRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Lesson, error)
	GetByUserID(ctx context.Context, filter domain.UserLessonsFilter) ([]*domain.Lesson, error)
	UpdateTime(ctx context.Context, id int64, start, end time.Time) (*domain.Lesson, error)
	UpdateStatus(ctx context.Context, id int64, status domain.LessonStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
