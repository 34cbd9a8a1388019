package availability

import "errors"

var (
	// ErrInvalidRange возвращается при некорректном интервале дат
	ErrInvalidRange = errors.New("availability: invalid date range")

	// ErrRoomTypeNotFound возвращается, когда тип номера не найден
	ErrRoomTypeNotFound = errors.New("availability: room type not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability: internal error")
)
