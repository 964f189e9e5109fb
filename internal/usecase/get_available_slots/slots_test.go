package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GCA-LessonService/internal/domain"
	"github.com/m04kA/GCA-LessonService/pkg/types"
)

// Понедельник 2025-10-13
var testDate = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

func mustTimeString(hhmm string) types.TimeString {
	ts, err := types.NewTimeStringFromString(hhmm)
	if err != nil {
		panic(err)
	}
	return ts
}

func testWindow(start, end string) *domain.AvailabilityWindow {
	return &domain.AvailabilityWindow{
		ID:        1,
		CoachID:   10,
		DayOfWeek: 1,
		StartTime: mustTimeString(start),
		EndTime:   mustTimeString(end),
	}
}

func testLesson(start, end string, status domain.LessonStatus) *domain.Lesson {
	return &domain.Lesson{
		ID:        100,
		CoachID:   10,
		StudentID: 20,
		StartTime: atTestDate(start),
		EndTime:   atTestDate(end),
		Status:    status,
	}
}

func atTestDate(hhmm string) time.Time {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		panic(err)
	}
	return time.Date(testDate.Year(), testDate.Month(), testDate.Day(),
		t.Hour(), t.Minute(), 0, 0, time.UTC)
}

func TestGenerateSlots_WindowWithoutLessons(t *testing.T) {
	// Окно 09:00-11:00, урок 60 минут - старты 09:00, 09:30, 10:00
	windows := []*domain.AvailabilityWindow{testWindow("09:00", "11:00")}

	slots := generateSlots(testDate, windows, 60, nil)

	require.Len(t, slots, 3)
	assert.Equal(t, atTestDate("09:00"), slots[0].StartTime)
	assert.Equal(t, atTestDate("09:30"), slots[1].StartTime)
	assert.Equal(t, atTestDate("10:00"), slots[2].StartTime)
	assert.Equal(t, atTestDate("11:00"), slots[2].EndTime)

	for _, slot := range slots {
		assert.Equal(t, 60, slot.DurationMinutes)
	}
}

func TestGenerateSlots_LessonBlocksOverlappingCandidates(t *testing.T) {
	// Урок 09:30-10:30 пересекается со всеми тремя кандидатами в окне 09:00-11:00
	windows := []*domain.AvailabilityWindow{testWindow("09:00", "11:00")}
	lessons := []*domain.Lesson{testLesson("09:30", "10:30", domain.StatusConfirmed)}

	slots := generateSlots(testDate, windows, 60, lessons)

	assert.Empty(t, slots)
}

func TestGenerateSlots_CancelledLessonDoesNotBlock(t *testing.T) {
	windows := []*domain.AvailabilityWindow{testWindow("09:00", "11:00")}
	lessons := []*domain.Lesson{testLesson("09:30", "10:30", domain.StatusCancelled)}

	slots := generateSlots(testDate, windows, 60, lessons)

	require.Len(t, slots, 3)
}

func TestGenerateSlots_BackToBackLessonDoesNotBlock(t *testing.T) {
	// Урок заканчивается ровно в 09:00 - слот 09:00 доступен
	windows := []*domain.AvailabilityWindow{testWindow("09:00", "10:00")}
	lessons := []*domain.Lesson{testLesson("08:00", "09:00", domain.StatusConfirmed)}

	slots := generateSlots(testDate, windows, 60, lessons)

	require.Len(t, slots, 1)
	assert.Equal(t, atTestDate("09:00"), slots[0].StartTime)
}

func TestGenerateSlots_ShortDurationUsesFixedGridStep(t *testing.T) {
	// Длительность 30 минут, окно 09:00-10:30 - старты 09:00, 09:30, 10:00
	windows := []*domain.AvailabilityWindow{testWindow("09:00", "10:30")}

	slots := generateSlots(testDate, windows, 30, nil)

	require.Len(t, slots, 3)
	assert.Equal(t, atTestDate("10:00"), slots[2].StartTime)
}

func TestGenerateSlots_CandidateMustFitInsideWindow(t *testing.T) {
	// Урок 60 минут в окне 09:00-09:30 не помещается
	windows := []*domain.AvailabilityWindow{testWindow("09:00", "09:30")}

	slots := generateSlots(testDate, windows, 60, nil)

	assert.Empty(t, slots)
}

func TestGenerateSlots_MultipleWindowsSortedByStart(t *testing.T) {
	// Окна подаются в обратном порядке - результат отсортирован по началу
	windows := []*domain.AvailabilityWindow{
		testWindow("14:00", "15:00"),
		testWindow("09:00", "10:00"),
	}

	slots := generateSlots(testDate, windows, 60, nil)

	require.Len(t, slots, 2)
	assert.Equal(t, atTestDate("09:00"), slots[0].StartTime)
	assert.Equal(t, atTestDate("14:00"), slots[1].StartTime)
}

func TestGenerateSlots_PartialOverlapBlocksOnlyTouchedCandidates(t *testing.T) {
	// Урок 10:00-11:00 в окне 09:00-12:00, длительность 60:
	// кандидаты 09:00 (свободен), 09:30/10:00/10:30 (пересекаются), 11:00 (свободен)
	windows := []*domain.AvailabilityWindow{testWindow("09:00", "12:00")}
	lessons := []*domain.Lesson{testLesson("10:00", "11:00", domain.StatusPending)}

	slots := generateSlots(testDate, windows, 60, lessons)

	require.Len(t, slots, 2)
	assert.Equal(t, atTestDate("09:00"), slots[0].StartTime)
	assert.Equal(t, atTestDate("11:00"), slots[1].StartTime)
}
