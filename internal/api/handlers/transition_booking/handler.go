package transition_booking

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelService/internal/service/lifecycle"
	"github.com/m04kA/SMC-HotelService/internal/service/lifecycle/models"
)

const (
	msgInvalidBookingID  = "некорректный ID бронирования"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgNotFound          = "бронирование не найдено"
	msgInvalidTransition = "переход недопустим из текущего статуса"
)

// Handler обслуживает операционные переходы статусов: заезд, выезд, завершение
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

// HandleCheckIn POST /api/v1/bookings/{bookingId}/check-in
func (h *Handler) HandleCheckIn(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "POST /bookings/{id}/check-in", h.service.CheckIn)
}

// HandleCheckOut POST /api/v1/bookings/{bookingId}/check-out
func (h *Handler) HandleCheckOut(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "POST /bookings/{id}/check-out", h.service.CheckOut)
}

// HandleComplete POST /api/v1/bookings/{bookingId}/complete
func (h *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "POST /bookings/{id}/complete", h.service.Complete)
}

func (h *Handler) handle(
	w http.ResponseWriter,
	r *http.Request,
	route string,
	op func(ctx context.Context, bookingID int64, actor string) (*models.BookingResponse, error),
) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid booking ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing user ID", route)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	actor := fmt.Sprintf("staff:%d", userID)
	booking, err := op(r.Context(), bookingID, actor)
	if err != nil {
		switch {
		case errors.Is(err, lifecycle.ErrBookingNotFound):
			h.logger.Warn("%s - Booking not found: booking_id=%d", route, bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, lifecycle.ErrInvalidTransition):
			h.logger.Warn("%s - Invalid transition: booking_id=%d, error=%v", route, bookingID, err)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("%s - Failed: booking_id=%d, error=%v", route, bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Transition applied: booking_id=%d, status=%s", route, bookingID, booking.Status)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
