package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString represents a wall-clock time of day in "HH:MM:SS" format.
// It maps directly to the PostgreSQL TIME type and is comparable without
// any date or timezone context.
type TimeString string

const (
	timeLayout      = "15:04:05"
	timeLayoutShort = "15:04"
)

var (
	// ErrInvalidTimeFormat возвращается при некорректном формате времени
	ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM:SS")

	// ErrTimeOutOfDay возвращается, когда результат операции выходит за пределы суток
	ErrTimeOutOfDay = errors.New("time is out of day bounds")
)

// NewTimeString создает TimeString из time.Time (берёт только время)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString парсит строку "HH:MM:SS" (или "HH:MM") в TimeString
// Значение нормализуется до секундной точности
func NewTimeStringFromString(s string) (TimeString, error) {
	if t, err := time.Parse(timeLayout, s); err == nil {
		return NewTimeString(t), nil
	}
	if t, err := time.Parse(timeLayoutShort, s); err == nil {
		return NewTimeString(t), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
}

// String возвращает строковое представление "HH:MM:SS"
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что значение является корректным временем суток
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return nil
}

// seconds возвращает смещение от полуночи в секундах
// Для невалидных значений возвращает 0 - валидация выполняется при создании
func (t TimeString) seconds() int {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0
	}
	return parsed.Hour()*3600 + parsed.Minute()*60 + parsed.Second()
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.seconds() < other.seconds()
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.seconds() > other.seconds()
}

// AddMinutes возвращает время, сдвинутое на minutes вперёд
// Результат обязан оставаться валидным временем суток (не позже 23:59:59) -
// интервалы расписания не пересекают полночь
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total := t.seconds() + minutes*60
	if total < 0 || total >= 24*3600 {
		return "", fmt.Errorf("%w: %s + %d minutes", ErrTimeOutOfDay, t, minutes)
	}
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return TimeString(fmt.Sprintf("%02d:%02d:%02d", h, m, s)), nil
}

// AtDate совмещает время суток с календарной датой в UTC
// Используется, чтобы сравнивать окна расписания и абсолютные метки времени
// одним и тем же предикатом пересечения интервалов
func (t TimeString) AtDate(date time.Time) time.Time {
	sec := t.seconds()
	return time.Date(date.Year(), date.Month(), date.Day(),
		sec/3600, (sec%3600)/60, sec%60, 0, time.UTC)
}

// Scan реализует sql.Scanner
// Драйвер pq возвращает TIME колонки как time.Time или []byte
func (t *TimeString) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T into TimeString", ErrInvalidTimeFormat, value)
	}
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}
