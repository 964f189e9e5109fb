package profileservice

// Coach модель тренера из ProfileService
type Coach struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"user_id"`
	DisplayName string  `json:"display_name"`
	Bio         *string `json:"bio,omitempty"`
	IsActive    bool    `json:"is_active"`
}

// User модель пользователя из ProfileService
type User struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}

// ErrorResponse модель ошибки от ProfileService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
