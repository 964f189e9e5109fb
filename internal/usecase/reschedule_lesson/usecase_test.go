package reschedule_lesson

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GCA-LessonService/internal/domain"
	lessonRepo "github.com/m04kA/GCA-LessonService/internal/infra/storage/lesson"
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
	lesson       *domain.Lesson
	coachLessons []*domain.Lesson

	updatedStart time.Time
	updatedEnd   time.Time
}

func (s *stubLessonRepo) GetByID(_ context.Context, id int64) (*domain.Lesson, error) {
	if s.lesson == nil || s.lesson.ID != id {
		return nil, lessonRepo.ErrLessonNotFound
	}
	return s.lesson, nil
}

func (s *stubLessonRepo) GetActiveByFilter(_ context.Context, filter domain.ActiveLessonsFilter) ([]*domain.Lesson, error) {
	if filter.CoachID != nil {
		return s.coachLessons, nil
	}
	return nil, nil
}

func (s *stubLessonRepo) UpdateTime(_ context.Context, id int64, start, end time.Time) (*domain.Lesson, error) {
	s.updatedStart = start
	s.updatedEnd = end
	updated := *s.lesson
	updated.StartTime = start
	updated.EndTime = end
	return &updated, nil
}

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testLesson(status domain.LessonStatus) *domain.Lesson {
	return &domain.Lesson{
		ID:        5,
		CoachID:   10,
		StudentID: 20,
		StartTime: at("09:00"),
		EndTime:   at("10:00"),
		Status:    status,
	}
}

func newTestUseCase(repo *stubLessonRepo) *UseCase {
	return NewUseCase(repo, stubTxManager{}, nopLogger{})
}

func TestExecute_ReschedulesLesson(t *testing.T) {
	repo := &stubLessonRepo{lesson: testLesson(domain.StatusConfirmed)}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		LessonID:  5,
		UserID:    20,
		StartTime: at("14:00"),
		EndTime:   at("15:00"),
	})

	require.NoError(t, err)
	assert.Equal(t, at("14:00"), resp.StartTime)
	assert.Equal(t, at("14:00"), repo.updatedStart)
	assert.Equal(t, at("15:00"), repo.updatedEnd)
}

func TestExecute_OwnIntervalExcludedFromConflictCheck(t *testing.T) {
	// Единственный занятый интервал - сам переносимый урок, сдвиг на полчаса разрешён
	lesson := testLesson(domain.StatusConfirmed)
	repo := &stubLessonRepo{
		lesson:       lesson,
		coachLessons: []*domain.Lesson{lesson},
	}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		LessonID:  5,
		UserID:    20,
		StartTime: at("09:30"),
		EndTime:   at("10:30"),
	})

	require.NoError(t, err)
}

func TestExecute_CoachConflictWithAnotherLesson(t *testing.T) {
	other := &domain.Lesson{
		ID:        6,
		CoachID:   10,
		StudentID: 30,
		StartTime: at("14:30"),
		EndTime:   at("15:30"),
		Status:    domain.StatusPending,
	}
	repo := &stubLessonRepo{
		lesson:       testLesson(domain.StatusConfirmed),
		coachLessons: []*domain.Lesson{other},
	}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		LessonID:  5,
		UserID:    20,
		StartTime: at("14:00"),
		EndTime:   at("15:00"),
	})

	assert.ErrorIs(t, err, ErrCoachTimeConflict)
}

func TestExecute_CancelledLessonCannotBeRescheduled(t *testing.T) {
	repo := &stubLessonRepo{lesson: testLesson(domain.StatusCancelled)}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		LessonID:  5,
		UserID:    20,
		StartTime: at("14:00"),
		EndTime:   at("15:00"),
	})

	assert.ErrorIs(t, err, ErrCannotReschedule)
}

func TestExecute_NonParticipantDenied(t *testing.T) {
	repo := &stubLessonRepo{lesson: testLesson(domain.StatusConfirmed)}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		LessonID:  5,
		UserID:    99,
		StartTime: at("14:00"),
		EndTime:   at("15:00"),
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_LessonNotFound(t *testing.T) {
	repo := &stubLessonRepo{}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		LessonID:  5,
		UserID:    20,
		StartTime: at("14:00"),
		EndTime:   at("15:00"),
	})

	assert.ErrorIs(t, err, ErrLessonNotFound)
}
