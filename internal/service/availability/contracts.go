package availability

import (
	"context"

	"github.com/m04kA/GCA-LessonService/internal/domain"
	"github.com/m04kA/GCA-LessonService/internal/integrations/profileservice"
)

// WindowRepository интерфейс репозитория окон доступности
type WindowRepository interface {
	Create(ctx context.Context, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error)
	GetByID(ctx context.Context, id int64) (*domain.AvailabilityWindow, error)
	GetByCoachAndDay(ctx context.Context, coachID int64, dayOfWeek int) ([]*domain.AvailabilityWindow, error)
	GetByCoach(ctx context.Context, coachID int64) ([]*domain.AvailabilityWindow, error)
	Update(ctx context.Context, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error)
	Delete(ctx context.Context, id int64) error
}

// ProfileServiceClient интерфейс клиента для ProfileService
type ProfileServiceClient interface {
	GetCoach(ctx context.Context, coachID int64) (*profileservice.Coach, error)
	GetCoachByUserID(ctx context.Context, userID int64) (*profileservice.Coach, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
