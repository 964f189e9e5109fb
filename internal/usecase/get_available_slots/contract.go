package get_available_slots

import (
	"context"

	"github.com/m04kA/GCA-LessonService/internal/domain"
	"github.com/m04kA/GCA-LessonService/internal/integrations/profileservice"
)

// AvailabilityRepository интерфейс репозитория окон доступности
type AvailabilityRepository interface {
	GetByCoachAndDay(ctx context.Context, coachID int64, dayOfWeek int) ([]*domain.AvailabilityWindow, error)
}

// LessonRepository интерфейс репозитория уроков
type LessonRepository interface {
	GetActiveByFilter(ctx context.Context, filter domain.ActiveLessonsFilter) ([]*domain.Lesson, error)
}

// ProfileServiceClient интерфейс клиента для ProfileService
type ProfileServiceClient interface {
	GetCoach(ctx context.Context, coachID int64) (*profileservice.Coach, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
