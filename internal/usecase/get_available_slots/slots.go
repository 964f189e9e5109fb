package get_available_slots

import (
	"sort"
	"time"

	"github.com/m04kA/GCA-LessonService/internal/domain"
)

// generateSlots генерирует доступные слоты на дату по окнам доступности тренера
//
// Для каждого окна кандидаты начинаются от начала окна и идут с фиксированным
// шагом сетки 30 минут независимо от длительности урока. Кандидат попадает в
// результат, если он целиком помещается в окно и не пересекается ни с одним
// активным уроком. Результат по всем окнам объединяется и сортируется по
// времени начала.
func generateSlots(
	date time.Time,
	windows []*domain.AvailabilityWindow,
	durationMinutes int,
	activeLessons []*domain.Lesson,
) []Slot {
	duration := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(domain.SlotStepMinutes) * time.Minute

	slots := make([]Slot, 0)

	for _, window := range windows {
		windowStart, windowEnd := window.Interval(date)

		for candidate := windowStart; !candidate.Add(duration).After(windowEnd); candidate = candidate.Add(step) {
			candidateEnd := candidate.Add(duration)

			if overlapsAnyLesson(candidate, candidateEnd, activeLessons) {
				continue
			}

			slots = append(slots, Slot{
				StartTime:       candidate,
				EndTime:         candidateEnd,
				DurationMinutes: durationMinutes,
			})
		}
	}

	sort.Slice(slots, func(i, j int) bool {
		return slots[i].StartTime.Before(slots[j].StartTime)
	})

	return slots
}

// overlapsAnyLesson проверяет пересечение кандидата с активными уроками
// Граничащие интервалы пересечением не считаются - урок, заканчивающийся
// ровно в начале кандидата, слот не блокирует
func overlapsAnyLesson(start, end time.Time, lessons []*domain.Lesson) bool {
	for _, lesson := range lessons {
		// Отменённые уроки слоты не блокируют
		if !lesson.IsActive() {
			continue
		}
		if domain.Overlaps(start, end, lesson.StartTime, lesson.EndTime) {
			return true
		}
	}
	return false
}
