package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GCA-LessonService/pkg/types"
)

func testWindow(t *testing.T, day int, start, end string) *AvailabilityWindow {
	t.Helper()
	startTS, err := types.NewTimeStringFromString(start)
	require.NoError(t, err)
	endTS, err := types.NewTimeStringFromString(end)
	require.NoError(t, err)
	return &AvailabilityWindow{CoachID: 10, DayOfWeek: day, StartTime: startTS, EndTime: endTS}
}

func TestAvailabilityWindow_Interval(t *testing.T) {
	w := testWindow(t, 1, "09:00", "12:30")
	date := time.Date(2025, time.October, 13, 0, 0, 0, 0, time.UTC)

	start, end := w.Interval(date)

	assert.Equal(t, time.Date(2025, time.October, 13, 9, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.October, 13, 12, 30, 0, 0, time.UTC), end)
}

func TestAvailabilityWindow_OverlapsWindow(t *testing.T) {
	base := testWindow(t, 1, "09:00", "12:00")

	assert.True(t, base.OverlapsWindow(testWindow(t, 1, "11:00", "14:00")))
	assert.True(t, base.OverlapsWindow(testWindow(t, 1, "10:00", "11:00")))
	assert.True(t, base.OverlapsWindow(testWindow(t, 1, "09:00", "12:00")))

	// Соприкасающиеся окна не пересекаются
	assert.False(t, base.OverlapsWindow(testWindow(t, 1, "12:00", "14:00")))

	// Другой день недели
	assert.False(t, base.OverlapsWindow(testWindow(t, 2, "09:00", "12:00")))
}
