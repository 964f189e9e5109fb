package get_available_slots

import (
	"time"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	CoachID         int64     // ID тренера
	Date            time.Time // Дата для получения слотов (без времени)
	DurationMinutes int       // Длительность урока в минутах (0 - длительность по умолчанию)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	CoachID         int64     // ID тренера
	Date            time.Time // Дата, на которую запрашивались слоты
	DurationMinutes int       // Использованная длительность урока
	Slots           []Slot    // Список доступных слотов, отсортирован по времени начала
}

// Slot модель временного слота
type Slot struct {
	StartTime       time.Time // Время начала слота (UTC)
	EndTime         time.Time // Время конца слота (UTC)
	DurationMinutes int       // Длительность слота в минутах
}
