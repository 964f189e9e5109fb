package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/GCA-LessonService/internal/domain"
	profileClient "github.com/m04kA/GCA-LessonService/internal/integrations/profileservice"
)

// UseCase use case для получения доступных слотов тренера
type UseCase struct {
	availabilityRepo AvailabilityRepository
	lessonRepo       LessonRepository
	profileClient    ProfileServiceClient
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	lessonRepo LessonRepository,
	profileClient ProfileServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		lessonRepo:       lessonRepo,
		profileClient:    profileClient,
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: coach=%d, date=%s, duration=%d",
		req.CoachID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 1. Валидация входных данных
	duration, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование тренера
	if _, err := uc.profileClient.GetCoach(ctx, req.CoachID); err != nil {
		if errors.Is(err, profileClient.ErrCoachNotFound) {
			uc.logger.Warn("GetAvailableSlots: coach id=%d not found", req.CoachID)
			return nil, ErrCoachNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get coach id=%d: %v", req.CoachID, err)
		return nil, fmt.Errorf("%w: failed to get coach: %v", ErrInternal, err)
	}

	// 3. Нормализуем дату к началу суток UTC, день недели считаем от неё же
	day := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, time.UTC)
	dayOfWeek := int(day.Weekday())

	// 4. Получаем окна доступности тренера на этот день недели
	windows, err := uc.availabilityRepo.GetByCoachAndDay(ctx, req.CoachID, dayOfWeek)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get windows for coach=%d: %v", req.CoachID, err)
		return nil, fmt.Errorf("%w: failed to get availability windows: %v", ErrStorageUnavailable, err)
	}

	// Нет окон - пустой список слотов, не ошибка
	if len(windows) == 0 {
		uc.logger.Info("GetAvailableSlots: coach=%d has no windows on day=%d", req.CoachID, dayOfWeek)
		return &Response{
			CoachID:         req.CoachID,
			Date:            day,
			DurationMinutes: duration,
			Slots:           []Slot{},
		}, nil
	}

	// 5. Получаем активные уроки тренера, пересекающиеся с этими сутками
	filter := domain.ActiveLessonsFilter{
		CoachID: &req.CoachID,
		From:    day,
		To:      day.AddDate(0, 0, 1),
	}

	lessons, err := uc.lessonRepo.GetActiveByFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get lessons for coach=%d: %v", req.CoachID, err)
		return nil, fmt.Errorf("%w: failed to get lessons: %v", ErrStorageUnavailable, err)
	}

	// 6. Генерируем слоты по окнам с учётом занятых интервалов
	slots := generateSlots(day, windows, duration, lessons)

	uc.logger.Info("GetAvailableSlots: generated %d slots for coach=%d, date=%s",
		len(slots), req.CoachID, day.Format(domain.DateFormat))

	return &Response{
		CoachID:         req.CoachID,
		Date:            day,
		DurationMinutes: duration,
		Slots:           slots,
	}, nil
}
