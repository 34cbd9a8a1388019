package quote_price

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/pricing"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange       = "некорректный диапазон дат"
	msgInvalidRooms       = "количество номеров должно быть положительным"
	msgRoomTypeNotFound   = "тип номера не найден"
	msgDateBlocked        = "одна из дат проживания закрыта для продажи"
)

type Handler struct {
	service PricingService
	logger  Logger
}

func NewHandler(service PricingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	rng, err := req.ParseRange()
	if err != nil {
		h.logger.Warn("POST /quotes - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	breakdown, err := h.service.Quote(r.Context(), req.RoomTypeID, rng, req.Rooms)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrInvalidRange):
			h.logger.Warn("POST /quotes - Invalid range: room_type_id=%d", req.RoomTypeID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, pricing.ErrInvalidRoomCount):
			h.logger.Warn("POST /quotes - Invalid room count: rooms=%d", req.Rooms)
			handlers.RespondBadRequest(w, msgInvalidRooms)

		case errors.Is(err, pricing.ErrRoomTypeNotFound):
			h.logger.Warn("POST /quotes - Room type not found: room_type_id=%d", req.RoomTypeID)
			handlers.RespondNotFound(w, msgRoomTypeNotFound)

		case errors.Is(err, pricing.ErrDateBlocked):
			h.logger.Warn("POST /quotes - Date blocked: room_type_id=%d, error=%v", req.RoomTypeID, err)
			handlers.RespondConflict(w, msgDateBlocked)

		default:
			h.logger.Error("POST /quotes - Failed to quote: room_type_id=%d, error=%v", req.RoomTypeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromBreakdown(&req, rng, breakdown))
}
