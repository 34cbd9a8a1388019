package domain

import "time"

// PaymentStatus статус платежа
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentSucceeded PaymentStatus = "succeeded"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// PaymentMethod способ оплаты
type PaymentMethod string

const (
	PaymentOnline  PaymentMethod = "online"
	PaymentOffline PaymentMethod = "offline"
)

// Payment платеж по бронированию
// На одно бронирование может приходиться несколько платежей (повторы,
// частичные и офлайн-платежи); оплаченная сумма — сумма успешных платежей.
type Payment struct {
	ID        int64
	BookingID int64
	Amount    int64
	Status    PaymentStatus
	Method    PaymentMethod

	// ExternalRef идентификатор операции на стороне платежного провайдера
	ExternalRef *string

	CreatedAt time.Time
}
