package create_lesson

import (
	"time"
)

// Request модель запроса на создание урока
type Request struct {
	StudentID int64     // ID ученика (инициатор записи)
	CoachID   int64     // ID тренера
	StartTime time.Time // Время начала урока
	EndTime   time.Time // Время конца урока
}

// Response модель ответа с созданным уроком
type Response struct {
	ID        int64     // ID созданного урока
	CoachID   int64     // ID тренера
	StudentID int64     // ID ученика
	StartTime time.Time // Время начала (UTC)
	EndTime   time.Time // Время конца (UTC)
	Status    string    // Статус урока

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
