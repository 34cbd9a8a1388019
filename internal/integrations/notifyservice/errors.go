package notifyservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notifyservice client: internal error")

	// ErrDeliveryFailed возвращается, когда NotifyService не принял событие
	// Сбой доставки логируется вызывающей стороной и никогда не влияет
	// на состояние бронирования.
	ErrDeliveryFailed = errors.New("notifyservice client: event delivery failed")
)
