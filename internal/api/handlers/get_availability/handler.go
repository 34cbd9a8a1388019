package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/service/availability"
)

const (
	msgInvalidRoomTypeID = "некорректный ID типа номера"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange      = "некорректный диапазон дат"
	msgRoomTypeNotFound  = "тип номера не найден"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/room-types/{roomTypeId}/availability?start_date=...&end_date=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomTypeID, err := strconv.ParseInt(vars["roomTypeId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /room-types/{id}/availability - Invalid room type ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomTypeID)
		return
	}

	query := r.URL.Query()
	startDate, err := time.Parse(domain.DateFormat, query.Get("start_date"))
	if err != nil {
		h.logger.Warn("GET /room-types/{id}/availability - Invalid start_date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	endDate, err := time.Parse(domain.DateFormat, query.Get("end_date"))
	if err != nil {
		h.logger.Warn("GET /room-types/{id}/availability - Invalid end_date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	rng := domain.NewDateRange(startDate.UTC(), endDate.UTC())

	days, err := h.service.ForRange(r.Context(), roomTypeID, rng)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidRange):
			h.logger.Warn("GET /room-types/{id}/availability - Invalid range: room_type_id=%d", roomTypeID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, availability.ErrRoomTypeNotFound):
			h.logger.Warn("GET /room-types/{id}/availability - Room type not found: room_type_id=%d", roomTypeID)
			handlers.RespondNotFound(w, msgRoomTypeNotFound)

		default:
			h.logger.Error("GET /room-types/{id}/availability - Failed to get availability: room_type_id=%d, error=%v",
				roomTypeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResult(roomTypeID, days))
}
