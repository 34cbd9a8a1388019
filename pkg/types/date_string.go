package types

import (
	"errors"
	"time"
)

// DateFormat формат даты в API (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// ErrInvalidDateString возвращается при некорректном формате даты
var ErrInvalidDateString = errors.New("invalid date string format, expected YYYY-MM-DD")

// DateString строковое представление календарной даты без времени ("2025-12-24")
// Используется на границе API; внутри домена даты хранятся как time.Time (UTC, полночь)
type DateString string

// NewDateString создает DateString из time.Time
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(DateFormat))
}

// NewDateStringFromString парсит и валидирует строку даты
func NewDateStringFromString(s string) (DateString, error) {
	if _, err := time.Parse(DateFormat, s); err != nil {
		return "", ErrInvalidDateString
	}
	return DateString(s), nil
}

// Validate проверяет формат даты
func (d DateString) Validate() error {
	if _, err := time.Parse(DateFormat, string(d)); err != nil {
		return ErrInvalidDateString
	}
	return nil
}

// IsZero возвращает true для пустой строки
func (d DateString) IsZero() bool {
	return d == ""
}

// String возвращает строковое представление
func (d DateString) String() string {
	return string(d)
}

// Time возвращает дату как time.Time (UTC, полночь)
func (d DateString) Time() (time.Time, error) {
	t, err := time.Parse(DateFormat, string(d))
	if err != nil {
		return time.Time{}, ErrInvalidDateString
	}
	return t.UTC(), nil
}
