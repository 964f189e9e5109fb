package create_lesson

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/GCA-LessonService/internal/domain"
	profileClient "github.com/m04kA/GCA-LessonService/internal/integrations/profileservice"
)

// UseCase use case для создания урока
type UseCase struct {
	lessonRepo    LessonRepository
	profileClient ProfileServiceClient
	txManager     TransactionManager
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	lessonRepo LessonRepository,
	profileClient ProfileServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		lessonRepo:    lessonRepo,
		profileClient: profileClient,
		txManager:     txManager,
		logger:        logger,
	}
}

// Execute выполняет use case создания урока
// Проверка конфликтов и вставка выполняются в сериализуемой транзакции
// с блокировкой уроков участников, чтобы закрыть гонку двух одновременных записей
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateLesson: student=%d, coach=%d, start=%s, end=%s",
		req.StudentID, req.CoachID, req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateLesson: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем интервал к UTC
	start := req.StartTime.UTC()
	end := req.EndTime.UTC()

	// 3. Проверяем существование тренера
	if _, err := uc.profileClient.GetCoach(ctx, req.CoachID); err != nil {
		if errors.Is(err, profileClient.ErrCoachNotFound) {
			uc.logger.Warn("CreateLesson: coach id=%d not found", req.CoachID)
			return nil, ErrCoachNotFound
		}
		uc.logger.Error("CreateLesson: failed to get coach id=%d: %v", req.CoachID, err)
		return nil, fmt.Errorf("%w: failed to get coach: %v", ErrInternal, err)
	}

	var result *domain.Lesson

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		from, to := dayRange(start, end)

		// 4.1. Блокируем и проверяем активные уроки тренера
		coachLessons, err := uc.lessonRepo.GetActiveByFilter(txCtx, domain.ActiveLessonsFilter{
			CoachID: &req.CoachID,
			From:    from,
			To:      to,
		})
		if err != nil {
			uc.logger.Error("CreateLesson: failed to get coach lessons: %v", err)
			return fmt.Errorf("%w: failed to get coach lessons: %v", ErrStorageUnavailable, err)
		}

		if conflict := findConflictingLesson(start, end, coachLessons, 0); conflict != nil {
			uc.logger.Warn("CreateLesson: coach=%d has conflicting lesson id=%d (%s - %s)",
				req.CoachID, conflict.ID, conflict.StartTime, conflict.EndTime)
			return fmt.Errorf("%w: lesson %s - %s", ErrCoachTimeConflict,
				conflict.StartTime.Format("15:04"), conflict.EndTime.Format("15:04"))
		}

		// 4.2. Блокируем и проверяем активные уроки ученика
		studentLessons, err := uc.lessonRepo.GetActiveByFilter(txCtx, domain.ActiveLessonsFilter{
			StudentID: &req.StudentID,
			From:      from,
			To:        to,
		})
		if err != nil {
			uc.logger.Error("CreateLesson: failed to get student lessons: %v", err)
			return fmt.Errorf("%w: failed to get student lessons: %v", ErrStorageUnavailable, err)
		}

		if conflict := findConflictingLesson(start, end, studentLessons, 0); conflict != nil {
			uc.logger.Warn("CreateLesson: student=%d has conflicting lesson id=%d (%s - %s)",
				req.StudentID, conflict.ID, conflict.StartTime, conflict.EndTime)
			return fmt.Errorf("%w: lesson %s - %s", ErrStudentTimeConflict,
				conflict.StartTime.Format("15:04"), conflict.EndTime.Format("15:04"))
		}

		// 4.3. Создаем урок со статусом pending
		lesson := &domain.Lesson{
			CoachID:   req.CoachID,
			StudentID: req.StudentID,
			StartTime: start,
			EndTime:   end,
			Status:    domain.StatusPending,
		}

		created, err := uc.lessonRepo.Create(txCtx, lesson)
		if err != nil {
			uc.logger.Error("CreateLesson: failed to create lesson: %v", err)
			return fmt.Errorf("%w: failed to create lesson: %v", ErrStorageUnavailable, err)
		}

		result = created
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrCoachTimeConflict),
			errors.Is(err, ErrStudentTimeConflict),
			errors.Is(err, ErrStorageUnavailable):
			return nil, err
		default:
			// Сбой begin/commit или исчерпаны повторы сериализации
			uc.logger.Error("CreateLesson: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: transaction failed: %v", ErrStorageUnavailable, err)
		}
	}

	uc.logger.Info("CreateLesson: successfully created lesson id=%d", result.ID)

	return &Response{
		ID:        result.ID,
		CoachID:   result.CoachID,
		StudentID: result.StudentID,
		StartTime: result.StartTime,
		EndTime:   result.EndTime,
		Status:    string(result.Status),
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}, nil
}
