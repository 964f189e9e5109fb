package reschedule_lesson

import (
	"context"
	"time"

	"github.com/m04kA/GCA-LessonService/internal/domain"
)

// LessonRepository интерфейс репозитория уроков
type LessonRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Lesson, error)
	GetActiveByFilter(ctx context.Context, filter domain.ActiveLessonsFilter) ([]*domain.Lesson, error)
	UpdateTime(ctx context.Context, id int64, start, end time.Time) (*domain.Lesson, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
