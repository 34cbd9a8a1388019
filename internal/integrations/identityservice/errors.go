package identityservice

import "errors"

var (
	// ErrGuestNotFound возвращается, когда гость не найден в IdentityService
	ErrGuestNotFound = errors.New("identityservice client: guest not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("identityservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("identityservice client: invalid response")
)
