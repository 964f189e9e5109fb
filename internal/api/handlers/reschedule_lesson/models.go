package reschedule_lesson

import (
	"time"

	rescheduleLesson "github.com/m04kA/GCA-LessonService/internal/usecase/reschedule_lesson"
)

// RescheduleLessonRequest HTTP request model
type RescheduleLessonRequest struct {
	StartTime string `json:"startTime"` // RFC3339
	EndTime   string `json:"endTime"`   // RFC3339
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
func (r *RescheduleLessonRequest) ToUseCaseRequest(lessonID, userID int64) (*rescheduleLesson.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleLesson.Request{
		LessonID:  lessonID,
		UserID:    userID,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleLesson.Response) *LessonResponse {
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
