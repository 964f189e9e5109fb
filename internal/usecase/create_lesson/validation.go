package create_lesson

import (
	"fmt"
	"time"

	"github.com/m04kA/GCA-LessonService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StudentID <= 0 {
		return fmt.Errorf("%w: studentID must be positive", ErrInvalidInput)
	}

	if req.CoachID <= 0 {
		return fmt.Errorf("%w: coachID must be positive", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if !req.StartTime.Before(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidTimeRange)
	}

	duration := int(req.EndTime.Sub(req.StartTime) / time.Minute)
	if duration < domain.MinSlotDurationMinutes || duration > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: lesson duration must be between %d and %d minutes",
			ErrInvalidTimeRange, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	return nil
}

// findConflictingLesson ищет первый активный урок, пересекающийся с интервалом
// Урок с ID excludeID из проверки исключается (используется при переносе)
// Граничащие интервалы пересечением не считаются
func findConflictingLesson(start, end time.Time, lessons []*domain.Lesson, excludeID int64) *domain.Lesson {
	for _, lesson := range lessons {
		if lesson.ID == excludeID {
			continue
		}
		if !lesson.IsActive() {
			continue
		}
		if domain.Overlaps(start, end, lesson.StartTime, lesson.EndTime) {
			return lesson
		}
	}
	return nil
}

// dayRange возвращает границы суток UTC, целиком накрывающие интервал урока
// Широкий диапазон блокировки сериализует конкурирующие записи участника на день
func dayRange(start, end time.Time) (time.Time, time.Time) {
	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return from, to
}
