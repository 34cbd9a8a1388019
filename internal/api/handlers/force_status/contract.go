package force_status

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/lifecycle/models"
)

type BookingService interface {
	ForceStatus(ctx context.Context, bookingID int64, to string, actor, reason string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
