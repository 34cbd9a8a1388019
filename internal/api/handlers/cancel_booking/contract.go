package cancel_booking

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/lifecycle/models"
)

type BookingService interface {
	Cancel(ctx context.Context, bookingID int64, actor, reason string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
