package create_lesson

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GCA-LessonService/internal/domain"
	"github.com/m04kA/GCA-LessonService/internal/integrations/profileservice"
)

var testDay = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

func at(hhmm string) time.Time {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		panic(err)
	}
	return time.Date(testDay.Year(), testDay.Month(), testDay.Day(),
		t.Hour(), t.Minute(), 0, 0, time.UTC)
}

type stubLessonRepo struct {
	coachLessons   []*domain.Lesson
	studentLessons []*domain.Lesson
	getErr         error

	created *domain.Lesson
}

func (s *stubLessonRepo) Create(_ context.Context, lesson *domain.Lesson) (*domain.Lesson, error) {
	lesson.ID = 42
	lesson.CreatedAt = time.Now()
	lesson.UpdatedAt = lesson.CreatedAt
	s.created = lesson
	return lesson, nil
}

func (s *stubLessonRepo) GetActiveByFilter(_ context.Context, filter domain.ActiveLessonsFilter) ([]*domain.Lesson, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if filter.CoachID != nil {
		return s.coachLessons, nil
	}
	return s.studentLessons, nil
}

type stubProfileClient struct {
	err error
}

func (s *stubProfileClient) GetCoach(_ context.Context, coachID int64) (*profileservice.Coach, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &profileservice.Coach{ID: coachID}, nil
}

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func activeLesson(id int64, start, end string) *domain.Lesson {
	return &domain.Lesson{
		ID:        id,
		CoachID:   10,
		StudentID: 20,
		StartTime: at(start),
		EndTime:   at(end),
		Status:    domain.StatusConfirmed,
	}
}

func newTestUseCase(repo *stubLessonRepo, profile *stubProfileClient) *UseCase {
	return NewUseCase(repo, profile, stubTxManager{}, nopLogger{})
}

func TestExecute_CreatesPendingLesson(t *testing.T) {
	repo := &stubLessonRepo{}
	uc := newTestUseCase(repo, &stubProfileClient{})

	resp, err := uc.Execute(context.Background(), &Request{
		StudentID: 20,
		CoachID:   10,
		StartTime: at("14:00"),
		EndTime:   at("15:00"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	require.NotNil(t, repo.created)
	assert.Equal(t, at("14:00"), repo.created.StartTime)
}

func TestExecute_CoachConflictOnOverlap(t *testing.T) {
	// Активный урок 14:30-15:30 пересекается с запросом 14:00-15:00
	repo := &stubLessonRepo{
		coachLessons: []*domain.Lesson{activeLesson(1, "14:30", "15:30")},
	}
	uc := newTestUseCase(repo, &stubProfileClient{})

	_, err := uc.Execute(context.Background(), &Request{
		StudentID: 20,
		CoachID:   10,
		StartTime: at("14:00"),
		EndTime:   at("15:00"),
	})

	assert.ErrorIs(t, err, ErrCoachTimeConflict)
	assert.Nil(t, repo.created)
}

func TestExecute_CoachConflictOnIdenticalInterval(t *testing.T) {
	repo := &stubLessonRepo{
		coachLessons: []*domain.Lesson{activeLesson(1, "14:00", "15:00")},
	}
	uc := newTestUseCase(repo, &stubProfileClient{})

	_, err := uc.Execute(context.Background(), &Request{
		StudentID: 20,
		CoachID:   10,
		StartTime: at("14:00"),
		EndTime:   at("15:00"),
	})

	assert.ErrorIs(t, err, ErrCoachTimeConflict)
}

func TestExecute_StudentConflict(t *testing.T) {
	repo := &stubLessonRepo{
		studentLessons: []*domain.Lesson{activeLesson(2, "14:00", "15:00")},
	}
	uc := newTestUseCase(repo, &stubProfileClient{})

	_, err := uc.Execute(context.Background(), &Request{
		StudentID: 20,
		CoachID:   10,
		StartTime: at("14:30"),
		EndTime:   at("15:30"),
	})

	assert.ErrorIs(t, err, ErrStudentTimeConflict)
}

func TestExecute_BackToBackAccepted(t *testing.T) {
	// Урок 13:00-14:00 граничит с запросом 14:00-15:00 - конфликта нет
	repo := &stubLessonRepo{
		coachLessons: []*domain.Lesson{activeLesson(1, "13:00", "14:00")},
	}
	uc := newTestUseCase(repo, &stubProfileClient{})

	resp, err := uc.Execute(context.Background(), &Request{
		StudentID: 20,
		CoachID:   10,
		StartTime: at("14:00"),
		EndTime:   at("15:00"),
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
}

func TestExecute_CancelledLessonDoesNotBlock(t *testing.T) {
	cancelled := activeLesson(1, "14:00", "15:00")
	cancelled.Status = domain.StatusCancelled

	repo := &stubLessonRepo{coachLessons: []*domain.Lesson{cancelled}}
	uc := newTestUseCase(repo, &stubProfileClient{})

	resp, err := uc.Execute(context.Background(), &Request{
		StudentID: 20,
		CoachID:   10,
		StartTime: at("14:00"),
		EndTime:   at("15:00"),
	})

	require.NoError(t, err)
	assert.NotNil(t, resp)
}

func TestExecute_CoachNotFound(t *testing.T) {
	uc := newTestUseCase(&stubLessonRepo{}, &stubProfileClient{err: profileservice.ErrCoachNotFound})

	_, err := uc.Execute(context.Background(), &Request{
		StudentID: 20,
		CoachID:   10,
		StartTime: at("14:00"),
		EndTime:   at("15:00"),
	})

	assert.ErrorIs(t, err, ErrCoachNotFound)
}

func TestExecute_InvalidTimeRange(t *testing.T) {
	uc := newTestUseCase(&stubLessonRepo{}, &stubProfileClient{})

	_, err := uc.Execute(context.Background(), &Request{
		StudentID: 20,
		CoachID:   10,
		StartTime: at("15:00"),
		EndTime:   at("14:00"),
	})

	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestExecute_RepositoryFailure(t *testing.T) {
	repo := &stubLessonRepo{getErr: errors.New("connection refused")}
	uc := newTestUseCase(repo, &stubProfileClient{})

	_, err := uc.Execute(context.Background(), &Request{
		StudentID: 20,
		CoachID:   10,
		StartTime: at("14:00"),
		EndTime:   at("15:00"),
	})

	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.Nil(t, repo.created)
}
