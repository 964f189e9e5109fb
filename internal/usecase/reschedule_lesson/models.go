package reschedule_lesson

import (
	"time"
)

// Request модель запроса на перенос урока
type Request struct {
	LessonID  int64     // ID переносимого урока
	UserID    int64     // ID инициатора переноса (участник урока)
	StartTime time.Time // Новое время начала
	EndTime   time.Time // Новое время конца
}

// Response модель ответа с перенесённым уроком
type Response struct {
	ID        int64     // ID урока
	CoachID   int64     // ID тренера
	StudentID int64     // ID ученика
	StartTime time.Time // Новое время начала (UTC)
	EndTime   time.Time // Новое время конца (UTC)
	Status    string    // Статус урока

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
