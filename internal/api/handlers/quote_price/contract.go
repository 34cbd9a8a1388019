package quote_price

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

type PricingService interface {
	Quote(ctx context.Context, roomTypeID int64, rng domain.DateRange, rooms int) (*domain.PriceBreakdown, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
