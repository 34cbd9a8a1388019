package calendaradmin

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("calendaradmin: invalid input data")

	// ErrOverrideNotFound возвращается, когда календарное правило не найдено
	ErrOverrideNotFound = errors.New("calendaradmin: override not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("calendaradmin: internal error")
)
