package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType тип доменного события
type EventType string

const (
	EventBookingCreated   EventType = "BOOKING_CREATED"
	EventBookingConfirmed EventType = "BOOKING_CONFIRMED"
	EventBookingCancelled EventType = "BOOKING_CANCELLED"
)

// Event доменное событие для внешних подписчиков
// Сбои доставки никогда не влияют на состояние бронирования.
type Event struct {
	ID         uuid.UUID     `json:"id"`
	Type       EventType     `json:"type"`
	BookingID  int64         `json:"bookingId"`
	GuestID    int64         `json:"guestId"`
	Status     BookingStatus `json:"status"`
	OccurredAt time.Time     `json:"occurredAt"`
}

// NewEvent создает доменное событие
func NewEvent(eventType EventType, booking *Booking, now time.Time) Event {
	return Event{
		ID:         uuid.New(),
		Type:       eventType,
		BookingID:  booking.ID,
		GuestID:    booking.GuestID,
		Status:     booking.Status,
		OccurredAt: now,
	}
}
