package models

import (
	"errors"
	"time"

	"github.com/m04kA/GCA-LessonService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid lesson status")
)

// Request модели

// GetUserLessonsRequest запрос на получение уроков пользователя
type GetUserLessonsRequest struct {
	UserID int64      `json:"userId"`
	Status *string    `json:"status,omitempty"` // Фильтр по статусу (опционально)
	Date   *time.Time `json:"date,omitempty"`   // Фильтр по календарной дате (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetUserLessonsRequest) ToDomainFilter() (domain.UserLessonsFilter, error) {
	filter := domain.UserLessonsFilter{
		UserID: r.UserID,
		Date:   r.Date,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainLessonStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateStatusRequest запрос на обновление статуса урока
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

// Response модели

// LessonResponse ответ с данными урока
type LessonResponse struct {
	ID        int64     `json:"id"`
	CoachID   int64     `json:"coachId"`
	StudentID int64     `json:"studentId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LessonListResponse ответ со списком уроков
type LessonListResponse struct {
	Lessons []LessonResponse `json:"lessons"`
}

// Методы конвертации

// FromDomainLesson конвертирует domain модель в DTO
func FromDomainLesson(l *domain.Lesson) *LessonResponse {
	if l == nil {
		return nil
	}

	return &LessonResponse{
		ID:        l.ID,
		CoachID:   l.CoachID,
		StudentID: l.StudentID,
		StartTime: l.StartTime,
		EndTime:   l.EndTime,
		Status:    string(l.Status),
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

// FromDomainLessonList конвертирует список domain моделей в DTO
func FromDomainLessonList(lessons []*domain.Lesson) *LessonListResponse {
	if lessons == nil {
		return &LessonListResponse{
			Lessons: []LessonResponse{},
		}
	}

	resp := &LessonListResponse{
		Lessons: make([]LessonResponse, len(lessons)),
	}

	for i, lesson := range lessons {
		if lessonResp := FromDomainLesson(lesson); lessonResp != nil {
			resp.Lessons[i] = *lessonResp
		}
	}

	return resp
}

// ToDomainLessonStatus конвертирует строку в domain.LessonStatus с валидацией
func ToDomainLessonStatus(status string) (domain.LessonStatus, error) {
	s := domain.LessonStatus(status)
	if !domain.ValidStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
