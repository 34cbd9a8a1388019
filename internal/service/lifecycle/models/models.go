package models

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// BookingResponse бронирование в ответе API
type BookingResponse struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`
	GuestID   int64  `json:"guestId"`

	RoomTypeID  int64            `json:"roomTypeId"`
	StartDate   types.DateString `json:"startDate"`
	EndDate     types.DateString `json:"endDate"`
	RoomsBooked int              `json:"roomsBooked"`

	TotalPrice      int64 `json:"totalPrice"`
	DepositRequired int64 `json:"depositRequired"`

	Status string `json:"status"`

	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PaymentResponse платеж в ответе API
type PaymentResponse struct {
	ID          int64     `json:"id"`
	BookingID   int64     `json:"bookingId"`
	Amount      int64     `json:"amount"`
	Status      string    `json:"status"`
	Method      string    `json:"method"`
	ExternalRef *string   `json:"externalRef,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PaymentOutcomeResult результат обработки платежного колбэка
type PaymentOutcomeResult struct {
	Booking   *BookingResponse `json:"booking"`
	Confirmed bool             `json:"confirmed"`
}

// FromDomainBooking конвертирует доменную модель в ответ API
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                 b.ID,
		Reference:          b.Reference.String(),
		GuestID:            b.GuestID,
		RoomTypeID:         b.RoomTypeID,
		StartDate:          types.NewDateString(b.StayRange.Start),
		EndDate:            types.NewDateString(b.StayRange.End),
		RoomsBooked:        b.RoomsBooked,
		TotalPrice:         b.TotalPrice,
		DepositRequired:    b.DepositRequired,
		Status:             string(b.Status),
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// FromDomainBookings конвертирует список доменных моделей в ответ API
func FromDomainBookings(bookings []*domain.Booking) []*BookingResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return result
}

// FromDomainPayments конвертирует список платежей в ответ API
func FromDomainPayments(payments []*domain.Payment) []*PaymentResponse {
	result := make([]*PaymentResponse, 0, len(payments))
	for _, p := range payments {
		result = append(result, &PaymentResponse{
			ID:          p.ID,
			BookingID:   p.BookingID,
			Amount:      p.Amount,
			Status:      string(p.Status),
			Method:      string(p.Method),
			ExternalRef: p.ExternalRef,
			CreatedAt:   p.CreatedAt,
		})
	}
	return result
}
