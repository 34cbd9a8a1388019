package roomtypeadmin

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("roomtypeadmin: invalid input data")

	// ErrRoomTypeNotFound возвращается, когда тип номера не найден
	ErrRoomTypeNotFound = errors.New("roomtypeadmin: room type not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("roomtypeadmin: internal error")
)
