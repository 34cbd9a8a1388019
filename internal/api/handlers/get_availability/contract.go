package get_availability

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/service/availability"
)

type AvailabilityService interface {
	ForRange(ctx context.Context, roomTypeID int64, rng domain.DateRange) ([]availability.DayAvailability, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
