package reschedule_lesson

import "errors"

var (
	// ErrLessonNotFound возвращается, когда урок не найден
	ErrLessonNotFound = errors.New("reschedule_lesson: lesson not found")

	// ErrAccessDenied возвращается, когда пользователь не участник урока
	ErrAccessDenied = errors.New("reschedule_lesson: access denied")

	// ErrCannotReschedule возвращается, когда статус урока не допускает перенос
	ErrCannotReschedule = errors.New("reschedule_lesson: lesson cannot be rescheduled")

	// ErrCoachTimeConflict возвращается, когда время пересекается с активным уроком тренера
	ErrCoachTimeConflict = errors.New("reschedule_lesson: coach has a conflicting lesson")

	// ErrStudentTimeConflict возвращается, когда время пересекается с активным уроком ученика
	ErrStudentTimeConflict = errors.New("reschedule_lesson: student has a conflicting lesson")

	// ErrInvalidTimeRange возвращается при некорректном временном интервале
	ErrInvalidTimeRange = errors.New("reschedule_lesson: invalid time range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_lesson: invalid input data")

	// ErrStorageUnavailable возвращается при сбое хранилища или транзакции,
	// запись не выполнена и запрос можно повторить
	ErrStorageUnavailable = errors.New("reschedule_lesson: storage unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_lesson: internal error")
)
