package domain

import "time"

// Overlaps reports whether two half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect.
//
// This is the single source of truth for "do these two time ranges
// conflict": availability windows, generated slots and lesson intervals
// are all compared through it. Strict inequalities make touching
// intervals legal - a lesson ending at 10:00 does not conflict with one
// starting at 10:00.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
