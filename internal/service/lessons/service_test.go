package lessons

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GCA-LessonService/internal/domain"
	lessonRepo "github.com/m04kA/GCA-LessonService/internal/infra/storage/lesson"
	"github.com/m04kA/GCA-LessonService/internal/service/lessons/models"
	"github.com/m04kA/GCA-LessonService/pkg/ptr"
)

type stubLessonRepo struct {
	lessons map[int64]*domain.Lesson

	statusUpdates map[int64]domain.LessonStatus
}

func newStubLessonRepo(lessons ...*domain.Lesson) *stubLessonRepo {
	repo := &stubLessonRepo{
		lessons:       make(map[int64]*domain.Lesson),
		statusUpdates: make(map[int64]domain.LessonStatus),
	}
	for _, l := range lessons {
		repo.lessons[l.ID] = l
	}
	return repo
}

func (s *stubLessonRepo) GetByID(_ context.Context, id int64) (*domain.Lesson, error) {
	l, ok := s.lessons[id]
	if !ok {
		return nil, lessonRepo.ErrLessonNotFound
	}
	return l, nil
}

func (s *stubLessonRepo) GetByUserID(_ context.Context, filter domain.UserLessonsFilter) ([]*domain.Lesson, error) {
	out := make([]*domain.Lesson, 0)
	for _, l := range s.lessons {
		if !l.HasParticipant(filter.UserID) {
			continue
		}
		if filter.Status != nil && l.Status != *filter.Status {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (s *stubLessonRepo) UpdateTime(_ context.Context, id int64, start, end time.Time) (*domain.Lesson, error) {
	l, ok := s.lessons[id]
	if !ok {
		return nil, lessonRepo.ErrLessonNotFound
	}
	l.StartTime = start
	l.EndTime = end
	return l, nil
}

func (s *stubLessonRepo) UpdateStatus(_ context.Context, id int64, status domain.LessonStatus) error {
	l, ok := s.lessons[id]
	if !ok {
		return lessonRepo.ErrLessonNotFound
	}
	l.Status = status
	s.statusUpdates[id] = status
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testLesson(id int64, status domain.LessonStatus) *domain.Lesson {
	start := time.Date(2025, 10, 13, 14, 0, 0, 0, time.UTC)
	return &domain.Lesson{
		ID:        id,
		CoachID:   10,
		StudentID: 20,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Status:    status,
	}
}

func TestGetByID_ParticipantsOnly(t *testing.T) {
	svc := NewService(newStubLessonRepo(testLesson(1, domain.StatusPending)), nopLogger{})

	// Тренер и ученик видят урок
	for _, userID := range []int64{10, 20} {
		resp, err := svc.GetByID(context.Background(), 1, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
	}

	// Посторонний - нет
	_, err := svc.GetByID(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(newStubLessonRepo(), nopLogger{})

	_, err := svc.GetByID(context.Background(), 404, 10)

	assert.ErrorIs(t, err, ErrLessonNotFound)
}

func TestGetUserLessons_FiltersByStatus(t *testing.T) {
	repo := newStubLessonRepo(
		testLesson(1, domain.StatusPending),
		testLesson(2, domain.StatusCancelled),
	)
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetUserLessons(context.Background(), &models.GetUserLessonsRequest{
		UserID: 20,
		Status: ptr.Ptr("cancelled"),
	})

	require.NoError(t, err)
	require.Len(t, resp.Lessons, 1)
	assert.Equal(t, int64(2), resp.Lessons[0].ID)
}

func TestGetUserLessons_InvalidStatus(t *testing.T) {
	svc := NewService(newStubLessonRepo(), nopLogger{})

	_, err := svc.GetUserLessons(context.Background(), &models.GetUserLessonsRequest{
		UserID: 20,
		Status: ptr.Ptr("unknown"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel_ByParticipant(t *testing.T) {
	repo := newStubLessonRepo(testLesson(1, domain.StatusConfirmed))
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 1, 20)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, repo.statusUpdates[1])
}

func TestCancel_SecondCancelIsNoOp(t *testing.T) {
	repo := newStubLessonRepo(testLesson(1, domain.StatusCancelled))
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 1, 20)

	require.NoError(t, err)
	// Повторного обновления статуса не было
	assert.Empty(t, repo.statusUpdates)
}

func TestCancel_CompletedLessonCancelled(t *testing.T) {
	repo := newStubLessonRepo(testLesson(1, domain.StatusCompleted))
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 1, 10)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, repo.statusUpdates[1])
}

func TestCancel_NonParticipantDenied(t *testing.T) {
	repo := newStubLessonRepo(testLesson(1, domain.StatusPending))
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 1, 99)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatus_CoachConfirms(t *testing.T) {
	repo := newStubLessonRepo(testLesson(1, domain.StatusPending))
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: 10,
		Status: "confirmed",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, repo.statusUpdates[1])
}

func TestUpdateStatus_StudentDenied(t *testing.T) {
	repo := newStubLessonRepo(testLesson(1, domain.StatusPending))
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: 20,
		Status: "confirmed",
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatus_CancelledLessonCannotBeRevived(t *testing.T) {
	repo := newStubLessonRepo(testLesson(1, domain.StatusCancelled))
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: 10,
		Status: "confirmed",
	})

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	repo := newStubLessonRepo(testLesson(1, domain.StatusPending))
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: 10,
		Status: "done",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
