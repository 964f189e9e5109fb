package cancel_lesson

import (
	"context"
)

type LessonService interface {
	Cancel(ctx context.Context, lessonID int64, userID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
