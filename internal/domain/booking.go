package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusProvisional BookingStatus = "provisional"
	StatusConfirmed   BookingStatus = "confirmed"
	StatusCheckedIn   BookingStatus = "checked_in"
	StatusCheckedOut  BookingStatus = "checked_out"
	StatusCompleted   BookingStatus = "completed"
	StatusCancelled   BookingStatus = "cancelled"
)

// allowedTransitions таблица допустимых переходов статусов
// PROVISIONAL — начальный статус; COMPLETED и CANCELLED — терминальные.
var allowedTransitions = map[BookingStatus][]BookingStatus{
	StatusProvisional: {StatusConfirmed, StatusCancelled},
	StatusConfirmed:   {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn:   {StatusCheckedOut},
	StatusCheckedOut:  {StatusCompleted},
	StatusCompleted:   {},
	StatusCancelled:   {},
}

// CanTransition проверяет допустимость перехода между статусами
func CanTransition(from, to BookingStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidStatus возвращает true для известного статуса
func ValidStatus(s BookingStatus) bool {
	_, ok := allowedTransitions[s]
	return ok
}

// Booking агрегат бронирования
// Инвентарь резервируется один раз при создании (PROVISIONAL) и освобождается
// один раз при отмене; payments и audit-записи ссылаются на бронирование
// только по id.
type Booking struct {
	ID        int64
	Reference uuid.UUID
	GuestID   int64

	RoomTypeID  int64
	StayRange   DateRange // полуоткрытый интервал [StartDate, EndDate)
	RoomsBooked int

	// TotalPrice итоговая цена в минорных единицах; неизменна после CONFIRMED
	TotalPrice int64

	// DepositRequired требуемый депозит в минорных единицах (0 = полная оплата)
	DepositRequired int64

	Status BookingStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanTransitionTo проверяет допустимость перехода из текущего статуса
func (b *Booking) CanTransitionTo(to BookingStatus) bool {
	return CanTransition(b.Status, to)
}

// CanBeCancelled возвращает true, если бронирование можно отменить
func (b *Booking) CanBeCancelled() bool {
	return b.CanTransitionTo(StatusCancelled)
}

// IsTerminal возвращает true для терминального статуса
func (b *Booking) IsTerminal() bool {
	return len(allowedTransitions[b.Status]) == 0
}

// HoldsInventory возвращает true, пока за бронированием числится
// зарезервированный инвентарь
func (b *Booking) HoldsInventory() bool {
	return b.Status != StatusCancelled
}

// RequiredPayment сумма, необходимая для подтверждения: депозит, если он
// требуется, иначе полная стоимость
func (b *Booking) RequiredPayment() int64 {
	if b.DepositRequired > 0 {
		return b.DepositRequired
	}
	return b.TotalPrice
}
