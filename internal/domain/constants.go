package domain

// Slot generation defaults
const (
	// SlotStepMinutes фиксированный шаг сетки генерации слотов
	// Не зависит от запрошенной длительности: слоты длиннее шага
	// пересекаются между собой, клиент выбирает один из них
	SlotStepMinutes = 30

	DefaultSlotDurationMinutes = 60
)

// Business validation constants
const (
	MinSlotDurationMinutes = 15
	MaxSlotDurationMinutes = 480 // 8 hours

	MinDayOfWeek = 0 // Sunday
	MaxDayOfWeek = 6 // Saturday
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses список статусов уроков, участвующих в проверках пересечений
// Отменённый урок освобождает свой интервал
var ActiveStatuses = []LessonStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
