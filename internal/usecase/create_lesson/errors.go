package create_lesson

import "errors"

var (
	// ErrCoachNotFound возвращается, когда тренер не найден
	ErrCoachNotFound = errors.New("create_lesson: coach not found")

	// ErrCoachTimeConflict возвращается, когда время пересекается с активным уроком тренера
	ErrCoachTimeConflict = errors.New("create_lesson: coach has a conflicting lesson")

	// ErrStudentTimeConflict возвращается, когда время пересекается с активным уроком ученика
	ErrStudentTimeConflict = errors.New("create_lesson: student has a conflicting lesson")

	// ErrInvalidTimeRange возвращается при некорректном временном интервале
	ErrInvalidTimeRange = errors.New("create_lesson: invalid time range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_lesson: invalid input data")

	// ErrStorageUnavailable возвращается при сбое хранилища или транзакции,
	// запись не выполнена и запрос можно повторить
	ErrStorageUnavailable = errors.New("create_lesson: storage unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_lesson: internal error")
)
