package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GCA-LessonService/internal/domain"
	windowRepo "github.com/m04kA/GCA-LessonService/internal/infra/storage/availability"
	"github.com/m04kA/GCA-LessonService/internal/integrations/profileservice"
	"github.com/m04kA/GCA-LessonService/internal/service/availability/models"
)

type stubWindowRepo struct {
	windows map[int64]*domain.AvailabilityWindow

	deleted []int64
}

func newStubWindowRepo(windows ...*domain.AvailabilityWindow) *stubWindowRepo {
	repo := &stubWindowRepo{windows: make(map[int64]*domain.AvailabilityWindow)}
	for _, w := range windows {
		repo.windows[w.ID] = w
	}
	return repo
}

func (s *stubWindowRepo) Create(_ context.Context, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error) {
	window.ID = int64(len(s.windows) + 1)
	s.windows[window.ID] = window
	return window, nil
}

func (s *stubWindowRepo) GetByID(_ context.Context, id int64) (*domain.AvailabilityWindow, error) {
	w, ok := s.windows[id]
	if !ok {
		return nil, windowRepo.ErrWindowNotFound
	}
	return w, nil
}

func (s *stubWindowRepo) GetByCoachAndDay(_ context.Context, coachID int64, dayOfWeek int) ([]*domain.AvailabilityWindow, error) {
	out := make([]*domain.AvailabilityWindow, 0)
	for _, w := range s.windows {
		if w.CoachID == coachID && w.DayOfWeek == dayOfWeek {
			out = append(out, w)
		}
	}
	return out, nil
}

func (s *stubWindowRepo) GetByCoach(_ context.Context, coachID int64) ([]*domain.AvailabilityWindow, error) {
	out := make([]*domain.AvailabilityWindow, 0)
	for _, w := range s.windows {
		if w.CoachID == coachID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (s *stubWindowRepo) Update(_ context.Context, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error) {
	if _, ok := s.windows[window.ID]; !ok {
		return nil, windowRepo.ErrWindowNotFound
	}
	s.windows[window.ID] = window
	return window, nil
}

func (s *stubWindowRepo) Delete(_ context.Context, id int64) error {
	if _, ok := s.windows[id]; !ok {
		return windowRepo.ErrWindowNotFound
	}
	delete(s.windows, id)
	s.deleted = append(s.deleted, id)
	return nil
}

type stubProfileClient struct {
	coachesByUser map[int64]*profileservice.Coach
	coaches       map[int64]*profileservice.Coach
}

func (s *stubProfileClient) GetCoach(_ context.Context, coachID int64) (*profileservice.Coach, error) {
	c, ok := s.coaches[coachID]
	if !ok {
		return nil, profileservice.ErrCoachNotFound
	}
	return c, nil
}

func (s *stubProfileClient) GetCoachByUserID(_ context.Context, userID int64) (*profileservice.Coach, error) {
	c, ok := s.coachesByUser[userID]
	if !ok {
		return nil, profileservice.ErrCoachNotFound
	}
	return c, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *stubWindowRepo, profile *stubProfileClient) *Service {
	return NewService(repo, profile, nopLogger{})
}

func coachProfile() *stubProfileClient {
	coach := &profileservice.Coach{ID: 10, UserID: 100}
	return &stubProfileClient{
		coaches:       map[int64]*profileservice.Coach{10: coach},
		coachesByUser: map[int64]*profileservice.Coach{100: coach},
	}
}

func TestCreate_Success(t *testing.T) {
	svc := newTestService(newStubWindowRepo(), coachProfile())

	resp, err := svc.Create(context.Background(), 100, &models.CreateWindowRequest{
		DayOfWeek: 1,
		StartTime: "09:00",
		EndTime:   "11:00",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.CoachID)
	assert.Equal(t, "09:00:00", resp.StartTime)
}

func TestCreate_NonCoachDenied(t *testing.T) {
	svc := newTestService(newStubWindowRepo(), coachProfile())

	_, err := svc.Create(context.Background(), 999, &models.CreateWindowRequest{
		DayOfWeek: 1,
		StartTime: "09:00",
		EndTime:   "11:00",
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCreate_OverlapRejected(t *testing.T) {
	existing := window(t, 1, 1, "09:00", "11:00")
	svc := newTestService(newStubWindowRepo(existing), coachProfile())

	_, err := svc.Create(context.Background(), 100, &models.CreateWindowRequest{
		DayOfWeek: 1,
		StartTime: "10:00",
		EndTime:   "12:00",
	})

	assert.ErrorIs(t, err, ErrWindowOverlap)
}

func TestCreate_SameTimeDifferentDayAllowed(t *testing.T) {
	existing := window(t, 1, 1, "09:00", "11:00")
	svc := newTestService(newStubWindowRepo(existing), coachProfile())

	_, err := svc.Create(context.Background(), 100, &models.CreateWindowRequest{
		DayOfWeek: 2,
		StartTime: "09:00",
		EndTime:   "11:00",
	})

	assert.NoError(t, err)
}

func TestUpdate_ExpandOwnWindow(t *testing.T) {
	existing := window(t, 1, 1, "09:00", "11:00")
	svc := newTestService(newStubWindowRepo(existing), coachProfile())

	resp, err := svc.Update(context.Background(), 1, 100, &models.UpdateWindowRequest{
		DayOfWeek: 1,
		StartTime: "09:00",
		EndTime:   "12:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "12:00:00", resp.EndTime)
}

func TestUpdate_ForeignWindowDenied(t *testing.T) {
	foreign := window(t, 1, 1, "09:00", "11:00")
	foreign.CoachID = 99
	svc := newTestService(newStubWindowRepo(foreign), coachProfile())

	_, err := svc.Update(context.Background(), 1, 100, &models.UpdateWindowRequest{
		DayOfWeek: 1,
		StartTime: "09:00",
		EndTime:   "12:00",
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestDelete_Success(t *testing.T) {
	existing := window(t, 1, 1, "09:00", "11:00")
	repo := newStubWindowRepo(existing)
	svc := newTestService(repo, coachProfile())

	err := svc.Delete(context.Background(), 1, 100)

	require.NoError(t, err)
	assert.Equal(t, []int64{1}, repo.deleted)
}

func TestDelete_NotFound(t *testing.T) {
	svc := newTestService(newStubWindowRepo(), coachProfile())

	err := svc.Delete(context.Background(), 404, 100)

	assert.ErrorIs(t, err, ErrWindowNotFound)
}

func TestGetCoachWindows_UnknownCoach(t *testing.T) {
	svc := newTestService(newStubWindowRepo(), coachProfile())

	_, err := svc.GetCoachWindows(context.Background(), 404)

	assert.ErrorIs(t, err, ErrCoachNotFound)
}

func TestGetCoachWindows_ReturnsWindows(t *testing.T) {
	svc := newTestService(newStubWindowRepo(window(t, 1, 1, "09:00", "11:00")), coachProfile())

	resp, err := svc.GetCoachWindows(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, resp.Availabilities, 1)
	assert.Equal(t, int64(1), resp.Availabilities[0].ID)
}
