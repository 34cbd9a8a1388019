package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-HotelService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgGuestNotFound         = "гость не найден"
	msgRoomTypeNotFound      = "тип номера не найден"
	msgTooFarInAdvance       = "дата заезда слишком далеко в будущем"
	msgInsufficientNotice    = "до заезда осталось слишком мало дней"
	msgDateBlocked           = "одна из дат проживания закрыта для продажи"
	msgInsufficientInventory = "недостаточно свободных номеров на выбранные даты"
	msgBeyondHorizon         = "даты проживания за пределами горизонта бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	guestID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(guestID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: guest_id=%d, error=%v", guestID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrGuestNotFound):
			h.logger.Warn("POST /bookings - Guest not found: guest_id=%d", guestID)
			handlers.RespondNotFound(w, msgGuestNotFound)

		case errors.Is(err, createBooking.ErrRoomTypeNotFound):
			h.logger.Warn("POST /bookings - Room type not found: guest_id=%d, room_type_id=%d", guestID, req.RoomTypeID)
			handlers.RespondNotFound(w, msgRoomTypeNotFound)

		case errors.Is(err, createBooking.ErrTooFarInAdvance):
			h.logger.Warn("POST /bookings - Too far in advance: guest_id=%d", guestID)
			handlers.RespondBadRequest(w, msgTooFarInAdvance)

		case errors.Is(err, createBooking.ErrInsufficientNotice):
			h.logger.Warn("POST /bookings - Insufficient notice: guest_id=%d", guestID)
			handlers.RespondBadRequest(w, msgInsufficientNotice)

		case errors.Is(err, createBooking.ErrDateBlocked):
			h.logger.Warn("POST /bookings - Date blocked: guest_id=%d, room_type_id=%d", guestID, req.RoomTypeID)
			handlers.RespondConflict(w, msgDateBlocked)

		case errors.Is(err, createBooking.ErrInsufficientInventory):
			h.logger.Warn("POST /bookings - Insufficient inventory: guest_id=%d, room_type_id=%d", guestID, req.RoomTypeID)
			handlers.RespondConflict(w, msgInsufficientInventory)

		case errors.Is(err, createBooking.ErrBeyondHorizon):
			h.logger.Warn("POST /bookings - Beyond horizon: guest_id=%d, room_type_id=%d", guestID, req.RoomTypeID)
			handlers.RespondBadRequest(w, msgBeyondHorizon)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: guest_id=%d, error=%v", guestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, guest_id=%d", result.ID, guestID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
