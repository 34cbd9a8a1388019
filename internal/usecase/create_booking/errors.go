package create_booking

import "errors"

var (
	// ErrGuestNotFound возвращается, когда гость не найден в IdentityService
	ErrGuestNotFound = errors.New("create_booking: guest not found")

	// ErrRoomTypeNotFound возвращается, когда тип номера не найден
	ErrRoomTypeNotFound = errors.New("create_booking: room type not found")

	// ErrTooFarInAdvance возвращается, когда заезд дальше окна бронирования гостя
	ErrTooFarInAdvance = errors.New("create_booking: booking is too far in advance")

	// ErrInsufficientNotice возвращается, когда до заезда меньше минимального срока
	ErrInsufficientNotice = errors.New("create_booking: insufficient notice before arrival")

	// ErrDateBlocked возвращается, когда одна из дат проживания заблокирована
	// календарным правилом; запрос отклоняется целиком
	ErrDateBlocked = errors.New("create_booking: date is blocked for sale")

	// ErrInsufficientInventory возвращается, когда на одну из дат не хватает номеров
	ErrInsufficientInventory = errors.New("create_booking: not enough rooms available")

	// ErrBeyondHorizon возвращается, когда проживание выходит за горизонт инвентаря
	ErrBeyondHorizon = errors.New("create_booking: stay is beyond the inventory horizon")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
