package domain

import "time"

// LessonStatus represents the status of a lesson
type LessonStatus string

const (
	StatusPending   LessonStatus = "pending"
	StatusConfirmed LessonStatus = "confirmed"
	StatusCancelled LessonStatus = "cancelled"
	StatusCompleted LessonStatus = "completed"
)

// Lesson represents a scheduled lesson between a coach and a student.
// Start and end are absolute timestamps stored in UTC.
type Lesson struct {
	ID        int64
	CoachID   int64
	StudentID int64
	StartTime time.Time
	EndTime   time.Time
	Status    LessonStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the lesson participates in conflict checks.
// Only cancelled lessons free up their time range.
func (l *Lesson) IsActive() bool {
	return l.Status != StatusCancelled
}

// IsCancelled returns true if the lesson has been cancelled
func (l *Lesson) IsCancelled() bool {
	return l.Status == StatusCancelled
}

// CanBeRescheduled returns true if the lesson time can still be changed
func (l *Lesson) CanBeRescheduled() bool {
	return l.Status == StatusPending || l.Status == StatusConfirmed
}

// HasParticipant returns true if userID is the coach or the student
func (l *Lesson) HasParticipant(userID int64) bool {
	return l.CoachID == userID || l.StudentID == userID
}

// ValidStatus возвращает true для известного статуса урока
func ValidStatus(s LessonStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// ActiveLessonsFilter фильтр активных уроков участника за период
// Ровно одно из полей CoachID/StudentID должно быть задано
type ActiveLessonsFilter struct {
	CoachID   *int64
	StudentID *int64
	From      time.Time // Начало периода (включительно)
	To        time.Time // Конец периода (исключительно)
}

// UserLessonsFilter фильтр уроков пользователя (как тренера или ученика)
type UserLessonsFilter struct {
	UserID int64
	Status *LessonStatus // Фильтр по статусу (опционально)
	Date   *time.Time    // Фильтр по календарной дате UTC (опционально)
}
