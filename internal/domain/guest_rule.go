package domain

import "time"

// GuestBookingRule окно бронирования для классификации гостя
// Инвариант конфигурации: MinDaysNotice <= MaxDaysAdvance.
type GuestBookingRule struct {
	ID             int64
	Classification string

	// MaxDaysAdvance максимум календарных дней от запроса до заезда
	MaxDaysAdvance int

	// MinDaysNotice минимум календарных дней от запроса до заезда
	MinDaysNotice int

	CreatedAt time.Time
	UpdatedAt time.Time
}
