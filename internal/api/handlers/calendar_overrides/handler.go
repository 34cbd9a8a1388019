package calendar_overrides

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/service/calendaradmin"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidOverrideID  = "некорректный ID календарного правила"
	msgInvalidRoomTypeID  = "некорректный ID типа номера"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "календарное правило не найдено"
)

type Handler struct {
	service CalendarAdminService
	logger  Logger
}

func NewHandler(service CalendarAdminService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleUpsert PUT /api/v1/calendar-overrides
func (h *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /calendar-overrides - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpsertOverrideRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /calendar-overrides - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	override, err := req.ToDomain()
	if err != nil {
		h.logger.Warn("PUT /calendar-overrides - Failed to parse day: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	actor := fmt.Sprintf("admin:%d", userID)
	saved, err := h.service.Upsert(r.Context(), override, actor)
	if err != nil {
		switch {
		case errors.Is(err, calendaradmin.ErrInvalidInput):
			h.logger.Warn("PUT /calendar-overrides - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /calendar-overrides - Failed to save override: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /calendar-overrides - Override saved: id=%d, day=%s, actor=%s",
		saved.ID, saved.Day.Format(domain.DateFormat), actor)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(saved))
}

// HandleDelete DELETE /api/v1/calendar-overrides/{overrideId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	overrideID, err := strconv.ParseInt(vars["overrideId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /calendar-overrides/{id} - Invalid override ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOverrideID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /calendar-overrides/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	actor := fmt.Sprintf("admin:%d", userID)
	if err := h.service.Delete(r.Context(), overrideID, actor); err != nil {
		switch {
		case errors.Is(err, calendaradmin.ErrOverrideNotFound):
			h.logger.Warn("DELETE /calendar-overrides/{id} - Override not found: id=%d", overrideID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /calendar-overrides/{id} - Failed to delete override: id=%d, error=%v",
				overrideID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /calendar-overrides/{id} - Override deleted: id=%d, actor=%s", overrideID, actor)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// HandleList GET /api/v1/calendar-overrides?room_type_id=...&start_date=...&end_date=...
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	roomTypeID, err := strconv.ParseInt(query.Get("room_type_id"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /calendar-overrides - Invalid room_type_id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomTypeID)
		return
	}

	startDate, err := time.Parse(domain.DateFormat, query.Get("start_date"))
	if err != nil {
		h.logger.Warn("GET /calendar-overrides - Invalid start_date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	endDate, err := time.Parse(domain.DateFormat, query.Get("end_date"))
	if err != nil {
		h.logger.Warn("GET /calendar-overrides - Invalid end_date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	rng := domain.NewDateRange(startDate.UTC(), endDate.UTC())
	overrides, err := h.service.ListForRange(r.Context(), roomTypeID, rng)
	if err != nil {
		switch {
		case errors.Is(err, calendaradmin.ErrInvalidInput):
			h.logger.Warn("GET /calendar-overrides - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /calendar-overrides - Failed to list overrides: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainList(overrides))
}
