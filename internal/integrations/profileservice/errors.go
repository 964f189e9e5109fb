package profileservice

import "errors"

var (
	// ErrCoachNotFound возвращается, когда тренер не найден в ProfileService
	ErrCoachNotFound = errors.New("coach not found")

	// ErrUserNotFound возвращается, когда пользователь не найден в ProfileService
	ErrUserNotFound = errors.New("user not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("profileservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("profileservice client: invalid response")
)
