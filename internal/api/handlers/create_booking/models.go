package create_booking

import (
	createBooking "github.com/m04kA/SMC-HotelService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomTypeID int64  `json:"roomTypeId"`
	StartDate  string `json:"startDate"` // "2025-12-24"
	EndDate    string `json:"endDate"`   // "2025-12-27"
	Rooms      int    `json:"rooms"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(guestID int64) (*createBooking.Request, error) {
	startDate, err := types.NewDateStringFromString(r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := types.NewDateStringFromString(r.EndDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		GuestID:    guestID,
		RoomTypeID: r.RoomTypeID,
		StartDate:  startDate,
		EndDate:    endDate,
		Rooms:      r.Rooms,
	}, nil
}
