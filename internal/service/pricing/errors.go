package pricing

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidRange возвращается для пустого или перевернутого диапазона дат
	ErrInvalidRange = errors.New("pricing: invalid date range")

	// ErrInvalidRoomCount возвращается для неположительного количества номеров
	ErrInvalidRoomCount = errors.New("pricing: room count must be positive")

	// ErrRoomTypeNotFound возвращается, когда тип номера не найден
	ErrRoomTypeNotFound = errors.New("pricing: room type not found")

	// ErrDateBlocked возвращается, когда продажа на одну из дат запрещена
	// календарным правилом. Запрос отклоняется целиком с указанием даты.
	ErrDateBlocked = errors.New("pricing: date is blocked for sale")

	// ErrNoDepositBand возвращается, когда для группового бронирования нет
	// депозитной полосы — ошибка конфигурации, не молчаливый дефолт
	ErrNoDepositBand = errors.New("pricing: no deposit band configured for room count")

	// ErrDepositConfig возвращается, когда таблица депозитных полос не
	// образует разбиение группового диапазона (дыра или пересечение)
	ErrDepositConfig = errors.New("pricing: invalid deposit band configuration")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("pricing: internal error")
)

// DateBlockedError несет конкретную заблокированную дату
type DateBlockedError struct {
	Day time.Time
}

// Error возвращает текст ошибки
func (e *DateBlockedError) Error() string {
	return fmt.Sprintf("date %s is blocked for sale", e.Day.Format("2006-01-02"))
}

// Unwrap поддерживает errors.Is(err, ErrDateBlocked)
func (e *DateBlockedError) Unwrap() error {
	return ErrDateBlocked
}
