package get_guest_bookings

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/lifecycle/models"
)

type BookingService interface {
	GetGuestBookings(ctx context.Context, guestID int64, status *string) ([]*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
