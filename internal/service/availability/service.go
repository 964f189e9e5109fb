package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/GCA-LessonService/internal/domain"
	windowRepo "github.com/m04kA/GCA-LessonService/internal/infra/storage/availability"
	profileClient "github.com/m04kA/GCA-LessonService/internal/integrations/profileservice"
	"github.com/m04kA/GCA-LessonService/internal/service/availability/models"
)

// Service сервис для работы с окнами доступности тренеров
type Service struct {
	windowRepo    WindowRepository
	profileClient ProfileServiceClient
	logger        Logger
}

// NewService создает новый экземпляр сервиса окон доступности
func NewService(
	windowRepo WindowRepository,
	profileClient ProfileServiceClient,
	logger Logger,
) *Service {
	return &Service{
		windowRepo:    windowRepo,
		profileClient: profileClient,
		logger:        logger,
	}
}

// Create создает новое окно доступности
// Окно создает тренер от своего имени - coach_id определяется по userID
// Пересечение с существующим окном тренера в тот же день недели запрещено
func (s *Service) Create(ctx context.Context, userID int64, req *models.CreateWindowRequest) (*models.WindowResponse, error) {
	s.logger.Info("Create: creating availability window for user=%d, day=%d %s-%s",
		userID, req.DayOfWeek, req.StartTime, req.EndTime)

	coach, err := s.resolveCoach(ctx, userID)
	if err != nil {
		return nil, err
	}

	window, err := buildWindow(coach.ID, req.DayOfWeek, req.StartTime, req.EndTime, req.Timezone)
	if err != nil {
		s.logger.Warn("Create: invalid window for coach=%d: %v", coach.ID, err)
		return nil, err
	}

	if err := s.checkOverlap(ctx, window); err != nil {
		return nil, err
	}

	created, err := s.windowRepo.Create(ctx, window)
	if err != nil {
		s.logger.Error("Create: repository error for coach=%d: %v", coach.ID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrStorageUnavailable, err)
	}

	s.logger.Info("Create: successfully created window id=%d for coach=%d", created.ID, coach.ID)
	return models.FromDomainWindow(created), nil
}

// Update обновляет окно доступности
// Доступно только тренеру-владельцу окна
func (s *Service) Update(ctx context.Context, windowID int64, userID int64, req *models.UpdateWindowRequest) (*models.WindowResponse, error) {
	s.logger.Info("Update: updating window id=%d by user=%d", windowID, userID)

	existing, err := s.getOwnedWindow(ctx, windowID, userID)
	if err != nil {
		return nil, err
	}

	window, err := buildWindow(existing.CoachID, req.DayOfWeek, req.StartTime, req.EndTime, req.Timezone)
	if err != nil {
		s.logger.Warn("Update: invalid window id=%d: %v", windowID, err)
		return nil, err
	}
	window.ID = existing.ID

	if err := s.checkOverlap(ctx, window); err != nil {
		return nil, err
	}

	updated, err := s.windowRepo.Update(ctx, window)
	if err != nil {
		if errors.Is(err, windowRepo.ErrWindowNotFound) {
			s.logger.Warn("Update: window id=%d not found during update", windowID)
			return nil, ErrWindowNotFound
		}
		s.logger.Error("Update: repository error for window id=%d: %v", windowID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrStorageUnavailable, err)
	}

	s.logger.Info("Update: successfully updated window id=%d", windowID)
	return models.FromDomainWindow(updated), nil
}

// Delete удаляет окно доступности
// Доступно только тренеру-владельцу окна
// Ранее созданные уроки при удалении окна не затрагиваются
func (s *Service) Delete(ctx context.Context, windowID int64, userID int64) error {
	s.logger.Info("Delete: deleting window id=%d by user=%d", windowID, userID)

	if _, err := s.getOwnedWindow(ctx, windowID, userID); err != nil {
		return err
	}

	if err := s.windowRepo.Delete(ctx, windowID); err != nil {
		if errors.Is(err, windowRepo.ErrWindowNotFound) {
			s.logger.Warn("Delete: window id=%d not found during delete", windowID)
			return ErrWindowNotFound
		}
		s.logger.Error("Delete: repository error for window id=%d: %v", windowID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrStorageUnavailable, err)
	}

	s.logger.Info("Delete: successfully deleted window id=%d", windowID)
	return nil
}

// GetCoachWindows получает расписание доступности тренера
// Публичная операция - доступна без авторизации
func (s *Service) GetCoachWindows(ctx context.Context, coachID int64) (*models.WindowListResponse, error) {
	s.logger.Info("GetCoachWindows: fetching windows for coach=%d", coachID)

	if _, err := s.profileClient.GetCoach(ctx, coachID); err != nil {
		if errors.Is(err, profileClient.ErrCoachNotFound) {
			s.logger.Warn("GetCoachWindows: coach=%d not found", coachID)
			return nil, ErrCoachNotFound
		}
		s.logger.Error("GetCoachWindows: failed to get coach=%d: %v", coachID, err)
		return nil, fmt.Errorf("%w: GetCoachWindows - failed to get coach: %v", ErrInternal, err)
	}

	windows, err := s.windowRepo.GetByCoach(ctx, coachID)
	if err != nil {
		s.logger.Error("GetCoachWindows: repository error for coach=%d: %v", coachID, err)
		return nil, fmt.Errorf("%w: GetCoachWindows - repository error: %v", ErrStorageUnavailable, err)
	}

	s.logger.Info("GetCoachWindows: successfully fetched %d windows for coach=%d", len(windows), coachID)
	return models.FromDomainWindowList(windows), nil
}

// Вспомогательные методы

// resolveCoach определяет профиль тренера по ID пользователя
func (s *Service) resolveCoach(ctx context.Context, userID int64) (*profileClient.Coach, error) {
	coach, err := s.profileClient.GetCoachByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profileClient.ErrCoachNotFound) {
			s.logger.Warn("resolveCoach: user=%d is not a coach", userID)
			return nil, ErrAccessDenied
		}
		s.logger.Error("resolveCoach: failed to resolve coach for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: resolveCoach - failed to resolve coach: %v", ErrInternal, err)
	}
	return coach, nil
}

// getOwnedWindow получает окно и проверяет, что им владеет тренер пользователя
func (s *Service) getOwnedWindow(ctx context.Context, windowID int64, userID int64) (*domain.AvailabilityWindow, error) {
	window, err := s.windowRepo.GetByID(ctx, windowID)
	if err != nil {
		if errors.Is(err, windowRepo.ErrWindowNotFound) {
			s.logger.Warn("getOwnedWindow: window id=%d not found", windowID)
			return nil, ErrWindowNotFound
		}
		s.logger.Error("getOwnedWindow: repository error for window id=%d: %v", windowID, err)
		return nil, fmt.Errorf("%w: getOwnedWindow - repository error: %v", ErrStorageUnavailable, err)
	}

	coach, err := s.resolveCoach(ctx, userID)
	if err != nil {
		return nil, err
	}

	if window.CoachID != coach.ID {
		s.logger.Warn("getOwnedWindow: access denied for user=%d to window id=%d", userID, windowID)
		return nil, ErrAccessDenied
	}

	return window, nil
}

// checkOverlap проверяет пересечение кандидата с окнами тренера в тот же день
func (s *Service) checkOverlap(ctx context.Context, window *domain.AvailabilityWindow) error {
	existing, err := s.windowRepo.GetByCoachAndDay(ctx, window.CoachID, window.DayOfWeek)
	if err != nil {
		s.logger.Error("checkOverlap: repository error for coach=%d: %v", window.CoachID, err)
		return fmt.Errorf("%w: checkOverlap - repository error: %v", ErrStorageUnavailable, err)
	}

	if conflict := findConflict(window, existing); conflict != nil {
		s.logger.Warn("checkOverlap: window %s-%s overlaps window id=%d (%s-%s) for coach=%d",
			window.StartTime, window.EndTime, conflict.ID, conflict.StartTime, conflict.EndTime, window.CoachID)
		return fmt.Errorf("%w: conflicts with window %s-%s", ErrWindowOverlap, conflict.StartTime, conflict.EndTime)
	}

	return nil
}
