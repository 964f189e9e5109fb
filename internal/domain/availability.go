package domain

import (
	"time"

	"github.com/m04kA/GCA-LessonService/pkg/types"
)

// AvailabilityWindow represents a recurring weekly interval during which
// a coach is bookable. The window repeats every week on DayOfWeek.
//
// Timezone is an advisory label carried for clients; it is never used in
// scheduling computation. Day-of-week matching and slot generation treat
// dates and times as UTC throughout.
type AvailabilityWindow struct {
	ID        int64
	CoachID   int64
	DayOfWeek int // 0 = Sunday .. 6 = Saturday
	StartTime types.TimeString
	EndTime   types.TimeString
	Timezone  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// windowRefDate фиксированная дата для сравнения окон одного дня недели
// одним и тем же предикатом Overlaps, что и абсолютные интервалы уроков
var windowRefDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Interval returns the window bounds anchored to the given calendar date (UTC)
func (w *AvailabilityWindow) Interval(date time.Time) (start, end time.Time) {
	return w.StartTime.AtDate(date), w.EndTime.AtDate(date)
}

// OverlapsWindow reports whether two same-day windows overlap as half-open
// intervals. Windows on different days never overlap.
func (w *AvailabilityWindow) OverlapsWindow(other *AvailabilityWindow) bool {
	if w.DayOfWeek != other.DayOfWeek {
		return false
	}
	aStart, aEnd := w.Interval(windowRefDate)
	bStart, bEnd := other.Interval(windowRefDate)
	return Overlaps(aStart, aEnd, bStart, bEnd)
}
