package get_availability

import (
	"github.com/m04kA/SMC-HotelService/internal/service/availability"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// DayAvailabilityResponse доступность одного дня
type DayAvailabilityResponse struct {
	Date           types.DateString `json:"date"`
	AvailableRooms int              `json:"availableRooms"`
	Blocked        bool             `json:"blocked"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	RoomTypeID int64                     `json:"roomTypeId"`
	Days       []DayAvailabilityResponse `json:"days"`
}

// FromServiceResult конвертирует результат сервиса в HTTP response
func FromServiceResult(roomTypeID int64, days []availability.DayAvailability) *AvailabilityResponse {
	result := make([]DayAvailabilityResponse, 0, len(days))
	for _, day := range days {
		result = append(result, DayAvailabilityResponse{
			Date:           types.NewDateString(day.Day),
			AvailableRooms: day.AvailableRooms,
			Blocked:        day.Blocked,
		})
	}
	return &AvailabilityResponse{RoomTypeID: roomTypeID, Days: result}
}
