package reschedule_lesson

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/GCA-LessonService/internal/domain"
	lessonRepo "github.com/m04kA/GCA-LessonService/internal/infra/storage/lesson"
)

// UseCase use case для переноса урока
type UseCase struct {
	lessonRepo LessonRepository
	txManager  TransactionManager
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	lessonRepo LessonRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		lessonRepo: lessonRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// Execute выполняет use case переноса урока
// Проверка конфликтов и обновление времени выполняются в сериализуемой транзакции,
// переносимый урок из проверки конфликтов исключается по своему ID
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleLesson: lesson=%d, user=%d, start=%s, end=%s",
		req.LessonID, req.UserID, req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleLesson: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем интервал к UTC
	start := req.StartTime.UTC()
	end := req.EndTime.UTC()

	var result *domain.Lesson

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем урок
		lesson, err := uc.lessonRepo.GetByID(txCtx, req.LessonID)
		if err != nil {
			if errors.Is(err, lessonRepo.ErrLessonNotFound) {
				uc.logger.Warn("RescheduleLesson: lesson id=%d not found", req.LessonID)
				return ErrLessonNotFound
			}
			uc.logger.Error("RescheduleLesson: failed to get lesson id=%d: %v", req.LessonID, err)
			return fmt.Errorf("%w: failed to get lesson: %v", ErrStorageUnavailable, err)
		}

		// 3.2. Переносить урок могут только его участники
		if !lesson.HasParticipant(req.UserID) {
			uc.logger.Warn("RescheduleLesson: access denied for user=%d to lesson id=%d",
				req.UserID, req.LessonID)
			return ErrAccessDenied
		}

		// 3.3. Отменённый или завершённый урок не переносится
		if !lesson.CanBeRescheduled() {
			uc.logger.Warn("RescheduleLesson: lesson id=%d cannot be rescheduled, status=%s",
				req.LessonID, lesson.Status)
			return ErrCannotReschedule
		}

		from, to := dayRange(start, end)

		// 3.4. Блокируем и проверяем активные уроки тренера
		coachLessons, err := uc.lessonRepo.GetActiveByFilter(txCtx, domain.ActiveLessonsFilter{
			CoachID: &lesson.CoachID,
			From:    from,
			To:      to,
		})
		if err != nil {
			uc.logger.Error("RescheduleLesson: failed to get coach lessons: %v", err)
			return fmt.Errorf("%w: failed to get coach lessons: %v", ErrStorageUnavailable, err)
		}

		if conflict := findConflictingLesson(start, end, coachLessons, lesson.ID); conflict != nil {
			uc.logger.Warn("RescheduleLesson: coach=%d has conflicting lesson id=%d (%s - %s)",
				lesson.CoachID, conflict.ID, conflict.StartTime, conflict.EndTime)
			return fmt.Errorf("%w: lesson %s - %s", ErrCoachTimeConflict,
				conflict.StartTime.Format("15:04"), conflict.EndTime.Format("15:04"))
		}

		// 3.5. Блокируем и проверяем активные уроки ученика
		studentLessons, err := uc.lessonRepo.GetActiveByFilter(txCtx, domain.ActiveLessonsFilter{
			StudentID: &lesson.StudentID,
			From:      from,
			To:        to,
		})
		if err != nil {
			uc.logger.Error("RescheduleLesson: failed to get student lessons: %v", err)
			return fmt.Errorf("%w: failed to get student lessons: %v", ErrStorageUnavailable, err)
		}

		if conflict := findConflictingLesson(start, end, studentLessons, lesson.ID); conflict != nil {
			uc.logger.Warn("RescheduleLesson: student=%d has conflicting lesson id=%d (%s - %s)",
				lesson.StudentID, conflict.ID, conflict.StartTime, conflict.EndTime)
			return fmt.Errorf("%w: lesson %s - %s", ErrStudentTimeConflict,
				conflict.StartTime.Format("15:04"), conflict.EndTime.Format("15:04"))
		}

		// 3.6. Обновляем время урока
		updated, err := uc.lessonRepo.UpdateTime(txCtx, lesson.ID, start, end)
		if err != nil {
			if errors.Is(err, lessonRepo.ErrLessonNotFound) {
				return ErrLessonNotFound
			}
			uc.logger.Error("RescheduleLesson: failed to update lesson id=%d: %v", lesson.ID, err)
			return fmt.Errorf("%w: failed to update lesson: %v", ErrStorageUnavailable, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrLessonNotFound),
			errors.Is(err, ErrAccessDenied),
			errors.Is(err, ErrCannotReschedule),
			errors.Is(err, ErrCoachTimeConflict),
			errors.Is(err, ErrStudentTimeConflict),
			errors.Is(err, ErrStorageUnavailable):
			return nil, err
		default:
			// Сбой begin/commit или исчерпаны повторы сериализации
			uc.logger.Error("RescheduleLesson: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: transaction failed: %v", ErrStorageUnavailable, err)
		}
	}

	uc.logger.Info("RescheduleLesson: successfully rescheduled lesson id=%d", result.ID)

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
