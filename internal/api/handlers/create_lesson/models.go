package create_lesson

import (
	"time"

	"github.com/m04kA/GCA-LessonService/internal/domain"
	createLesson "github.com/m04kA/GCA-LessonService/internal/usecase/create_lesson"
)

// CreateLessonRequest HTTP request model
// Конец урока задаётся либо явно endTime, либо длительностью durationMinutes
type CreateLessonRequest struct {
	CoachID         int64   `json:"coachId"`
	StartTime       string  `json:"startTime"`                 // RFC3339, "2025-10-13T14:00:00Z"
	EndTime         *string `json:"endTime,omitempty"`         // RFC3339
	DurationMinutes *int    `json:"durationMinutes,omitempty"` // Вместо endTime
}

// LessonResponse HTTP response model
type LessonResponse struct {
	ID        int64  `json:"id"`
	CoachID   int64  `json:"coachId"`
	StudentID int64  `json:"studentId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateLessonRequest) ToUseCaseRequest(studentID int64) (*createLesson.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	var endTime time.Time
	switch {
	case r.EndTime != nil:
		endTime, err = time.Parse(time.RFC3339, *r.EndTime)
		if err != nil {
			return nil, err
		}
	case r.DurationMinutes != nil:
		endTime = startTime.Add(time.Duration(*r.DurationMinutes) * time.Minute)
	default:
		endTime = startTime.Add(time.Duration(domain.DefaultSlotDurationMinutes) * time.Minute)
	}

	return &createLesson.Request{
		StudentID: studentID,
		CoachID:   r.CoachID,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createLesson.Response) *LessonResponse {
	return &LessonResponse{
		ID:        resp.ID,
		CoachID:   resp.CoachID,
		StudentID: resp.StudentID,
		StartTime: resp.StartTime.Format(time.RFC3339),
		EndTime:   resp.EndTime.Format(time.RFC3339),
		Status:    resp.Status,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
