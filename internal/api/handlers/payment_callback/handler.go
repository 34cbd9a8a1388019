package payment_callback

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/lifecycle"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidOutcome     = "некорректный исход платежа, ожидается succeeded или failed"
	msgNotFound           = "бронирование не найдено"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/callback
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PaymentCallbackRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/callback - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Outcome != outcomeSucceeded && req.Outcome != outcomeFailed {
		h.logger.Warn("POST /payments/callback - Invalid outcome: %q", req.Outcome)
		handlers.RespondBadRequest(w, msgInvalidOutcome)
		return
	}

	result, err := h.service.HandlePaymentOutcome(
		r.Context(), req.BookingID, req.Amount, req.Outcome == outcomeSucceeded, req.ExternalRef)
	if err != nil {
		switch {
		case errors.Is(err, lifecycle.ErrBookingNotFound):
			h.logger.Warn("POST /payments/callback - Booking not found: booking_id=%d", req.BookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, lifecycle.ErrInvalidInput):
			h.logger.Warn("POST /payments/callback - Invalid input: booking_id=%d, error=%v", req.BookingID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /payments/callback - Failed to process payment: booking_id=%d, error=%v",
				req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/callback - Payment processed: booking_id=%d, confirmed=%t",
		req.BookingID, result.Confirmed)
	handlers.RespondJSON(w, http.StatusOK, result)
}
