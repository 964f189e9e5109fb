package lessons

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/GCA-LessonService/internal/domain"
	lessonRepo "github.com/m04kA/GCA-LessonService/internal/infra/storage/lesson"
	"github.com/m04kA/GCA-LessonService/internal/service/lessons/models"
)

// Service сервис для работы с уроками
type Service struct {
	lessonRepo LessonRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса уроков
func NewService(lessonRepo LessonRepository, logger Logger) *Service {
	return &Service{
		lessonRepo: lessonRepo,
		logger:     logger,
	}
}

// GetByID получает урок по ID
// Урок видят только его участники - тренер и ученик
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.LessonResponse, error) {
	s.logger.Info("GetByID: fetching lesson id=%d for user=%d", id, userID)

	lesson, err := s.lessonRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, lessonRepo.ErrLessonNotFound) {
			s.logger.Warn("GetByID: lesson id=%d not found", id)
			return nil, ErrLessonNotFound
		}
		s.logger.Error("GetByID: repository error for lesson id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrStorageUnavailable, err)
	}

	if !lesson.HasParticipant(userID) {
		s.logger.Warn("GetByID: access denied for user=%d to lesson id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched lesson id=%d", id)
	return models.FromDomainLesson(lesson), nil
}

// GetUserLessons получает уроки пользователя, где он тренер или ученик
// Опционально фильтрует по статусу и календарной дате
func (s *Service) GetUserLessons(ctx context.Context, req *models.GetUserLessonsRequest) (*models.LessonListResponse, error) {
	s.logger.Info("GetUserLessons: fetching lessons for user=%d, status=%v", req.UserID, req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetUserLessons: invalid status=%s for user=%d", *req.Status, req.UserID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	lessons, err := s.lessonRepo.GetByUserID(ctx, filter)
	if err != nil {
		s.logger.Error("GetUserLessons: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserLessons - repository error: %v", ErrStorageUnavailable, err)
	}

	s.logger.Info("GetUserLessons: successfully fetched %d lessons for user=%d", len(lessons), req.UserID)
	return models.FromDomainLessonList(lessons), nil
}

// Cancel отменяет урок
// Отменить урок может любой из его участников - тренер или ученик,
// независимо от текущего статуса
// Повторная отмена уже отменённого урока не является ошибкой
func (s *Service) Cancel(ctx context.Context, lessonID int64, userID int64) error {
	s.logger.Info("Cancel: cancelling lesson id=%d by user=%d", lessonID, userID)

	lesson, err := s.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		if errors.Is(err, lessonRepo.ErrLessonNotFound) {
			s.logger.Warn("Cancel: lesson id=%d not found", lessonID)
			return ErrLessonNotFound
		}
		s.logger.Error("Cancel: repository error for lesson id=%d: %v", lessonID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrStorageUnavailable, err)
	}

	if !lesson.HasParticipant(userID) {
		s.logger.Warn("Cancel: access denied for user=%d to lesson id=%d", userID, lessonID)
		return ErrAccessDenied
	}

	// Повторная отмена - идемпотентный no-op
	if lesson.IsCancelled() {
		s.logger.Info("Cancel: lesson id=%d already cancelled", lessonID)
		return nil
	}

	if err := s.lessonRepo.UpdateStatus(ctx, lessonID, domain.StatusCancelled); err != nil {
		if errors.Is(err, lessonRepo.ErrLessonNotFound) {
			s.logger.Warn("Cancel: lesson id=%d not found during cancellation", lessonID)
			return ErrLessonNotFound
		}
		s.logger.Error("Cancel: repository error for lesson id=%d: %v", lessonID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrStorageUnavailable, err)
	}

	s.logger.Info("Cancel: successfully cancelled lesson id=%d", lessonID)
	return nil
}

// UpdateStatus обновляет статус урока
// Доступно только тренеру урока
// Отменённый урок вернуть в работу нельзя - только новая запись
func (s *Service) UpdateStatus(ctx context.Context, lessonID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating lesson id=%d to status=%s by user=%d",
		lessonID, req.Status, req.UserID)

	lesson, err := s.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		if errors.Is(err, lessonRepo.ErrLessonNotFound) {
			s.logger.Warn("UpdateStatus: lesson id=%d not found", lessonID)
			return ErrLessonNotFound
		}
		s.logger.Error("UpdateStatus: repository error for lesson id=%d: %v", lessonID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrStorageUnavailable, err)
	}

	// Статусом урока управляет только тренер
	if lesson.CoachID != req.UserID {
		s.logger.Warn("UpdateStatus: access denied for user=%d to lesson id=%d", req.UserID, lessonID)
		return ErrAccessDenied
	}

	newStatus, err := models.ToDomainLessonStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for lesson id=%d", req.Status, lessonID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if lesson.IsCancelled() && newStatus != domain.StatusCancelled {
		s.logger.Warn("UpdateStatus: lesson id=%d is cancelled, transition to %s rejected", lessonID, newStatus)
		return ErrInvalidTransition
	}

	if err := s.lessonRepo.UpdateStatus(ctx, lessonID, newStatus); err != nil {
		if errors.Is(err, lessonRepo.ErrLessonNotFound) {
			s.logger.Warn("UpdateStatus: lesson id=%d not found during update", lessonID)
			return ErrLessonNotFound
		}
		s.logger.Error("UpdateStatus: repository error for lesson id=%d: %v", lessonID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrStorageUnavailable, err)
	}

	s.logger.Info("UpdateStatus: successfully updated lesson id=%d to status=%s", lessonID, newStatus)
	return nil
}
