package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.GuestID <= 0 {
		return fmt.Errorf("%w: guestID must be positive", ErrInvalidInput)
	}

	if req.RoomTypeID <= 0 {
		return fmt.Errorf("%w: roomTypeID must be positive", ErrInvalidInput)
	}

	if req.Rooms <= 0 {
		return fmt.Errorf("%w: rooms must be positive", ErrInvalidInput)
	}

	if req.Rooms > domain.MaxRoomsPerBooking {
		return fmt.Errorf("%w: rooms must not exceed %d", ErrInvalidInput, domain.MaxRoomsPerBooking)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}
	if err := req.StartDate.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startDate format: %v", ErrInvalidInput, err)
	}

	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}
	if err := req.EndDate.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endDate format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateRange проверяет диапазон проживания относительно текущей даты
func validateRange(rng domain.DateRange, now time.Time) error {
	if !rng.IsValid() {
		return fmt.Errorf("%w: endDate must be after startDate", ErrInvalidInput)
	}

	// Заезд в прошлом недопустим; заезд сегодня допустим
	if domain.DaysBetween(now, rng.Start) < 0 {
		return fmt.Errorf("%w: startDate is in the past", ErrInvalidInput)
	}

	return nil
}
