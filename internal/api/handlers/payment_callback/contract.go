package payment_callback

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/lifecycle/models"
)

type BookingService interface {
	HandlePaymentOutcome(ctx context.Context, bookingID, amount int64, succeeded bool, externalRef *string) (*models.PaymentOutcomeResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
