package transition_booking

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/lifecycle/models"
)

type BookingService interface {
	CheckIn(ctx context.Context, bookingID int64, actor string) (*models.BookingResponse, error)
	CheckOut(ctx context.Context, bookingID int64, actor string) (*models.BookingResponse, error)
	Complete(ctx context.Context, bookingID int64, actor string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
