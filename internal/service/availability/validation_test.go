package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GCA-LessonService/internal/domain"
	"github.com/m04kA/GCA-LessonService/pkg/types"
)

func mustTimeString(t *testing.T, v string) types.TimeString {
	ts, err := types.NewTimeStringFromString(v)
	require.NoError(t, err)
	return ts
}

func window(t *testing.T, id int64, day int, start, end string) *domain.AvailabilityWindow {
	return &domain.AvailabilityWindow{
		ID:        id,
		CoachID:   10,
		DayOfWeek: day,
		StartTime: mustTimeString(t, start),
		EndTime:   mustTimeString(t, end),
	}
}

func TestBuildWindow_Valid(t *testing.T) {
	w, err := buildWindow(10, 1, "09:00", "11:00", nil)

	require.NoError(t, err)
	assert.Equal(t, int64(10), w.CoachID)
	assert.Equal(t, 1, w.DayOfWeek)
	assert.Equal(t, "09:00:00", w.StartTime.String())
	assert.Equal(t, "11:00:00", w.EndTime.String())
}

func TestBuildWindow_InvalidDayOfWeek(t *testing.T) {
	_, err := buildWindow(10, 7, "09:00", "11:00", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = buildWindow(10, -1, "09:00", "11:00", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBuildWindow_StartMustBeBeforeEnd(t *testing.T) {
	_, err := buildWindow(10, 1, "11:00", "09:00", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = buildWindow(10, 1, "09:00", "09:00", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBuildWindow_InvalidTimeFormat(t *testing.T) {
	_, err := buildWindow(10, 1, "9 am", "11:00", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFindConflict_OverlappingWindow(t *testing.T) {
	existing := []*domain.AvailabilityWindow{
		window(t, 1, 1, "09:00", "11:00"),
		window(t, 2, 1, "14:00", "16:00"),
	}
	candidate := window(t, 0, 1, "10:00", "12:00")

	conflict := findConflict(candidate, existing)

	require.NotNil(t, conflict)
	assert.Equal(t, int64(1), conflict.ID)
}

func TestFindConflict_TouchingWindowsDoNotConflict(t *testing.T) {
	existing := []*domain.AvailabilityWindow{window(t, 1, 1, "09:00", "11:00")}
	candidate := window(t, 0, 1, "11:00", "13:00")

	assert.Nil(t, findConflict(candidate, existing))
}

func TestFindConflict_UpdatedWindowExcludesItself(t *testing.T) {
	// Окно id=1 обновляется с расширением границ - с самим собой не конфликтует
	existing := []*domain.AvailabilityWindow{window(t, 1, 1, "09:00", "11:00")}
	candidate := window(t, 1, 1, "09:00", "12:00")

	assert.Nil(t, findConflict(candidate, existing))
}
