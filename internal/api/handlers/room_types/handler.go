package room_types

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelService/internal/service/roomtypeadmin"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRoomTypeID  = "некорректный ID типа номера"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "тип номера не найден"
)

type Handler struct {
	service RoomTypeAdminService
	logger  Logger
}

func NewHandler(service RoomTypeAdminService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/room-types
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /room-types - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req RoomTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /room-types - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actor := fmt.Sprintf("admin:%d", userID)
	saved, err := h.service.Create(r.Context(), req.ToDomain(0), actor)
	if err != nil {
		switch {
		case errors.Is(err, roomtypeadmin.ErrInvalidInput):
			h.logger.Warn("POST /room-types - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /room-types - Failed to create room type: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /room-types - Room type created: id=%d, name=%q, actor=%s", saved.ID, saved.Name, actor)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(saved))
}

// HandleUpdate PUT /api/v1/room-types/{roomTypeId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomTypeID, err := strconv.ParseInt(vars["roomTypeId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /room-types/{id} - Invalid room type ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomTypeID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /room-types/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req RoomTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /room-types/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actor := fmt.Sprintf("admin:%d", userID)
	saved, err := h.service.Update(r.Context(), req.ToDomain(roomTypeID), actor)
	if err != nil {
		switch {
		case errors.Is(err, roomtypeadmin.ErrInvalidInput):
			h.logger.Warn("PUT /room-types/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, roomtypeadmin.ErrRoomTypeNotFound):
			h.logger.Warn("PUT /room-types/{id} - Room type not found: id=%d", roomTypeID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /room-types/{id} - Failed to update room type: id=%d, error=%v", roomTypeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /room-types/{id} - Room type updated: id=%d, actor=%s", saved.ID, actor)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(saved))
}
