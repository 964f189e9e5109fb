package domain

import "time"

// TimeSlot represents a bookable time slot derived from a coach's
// availability windows minus existing active lessons. Slots are computed
// on demand and never persisted; a returned slot is advisory and is not
// a reservation.
type TimeSlot struct {
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
}
