package room_types

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// RoomTypeRequest HTTP request model
type RoomTypeRequest struct {
	Name       string `json:"name"`
	BaseRate   int64  `json:"baseRate"`
	TotalRooms int    `json:"totalRooms"`
}

// RoomTypeResponse HTTP response model
type RoomTypeResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	BaseRate   int64     `json:"baseRate"`
	TotalRooms int       `json:"totalRooms"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ToDomain конвертирует HTTP запрос в доменную модель
func (r *RoomTypeRequest) ToDomain(id int64) *domain.RoomType {
	return &domain.RoomType{
		ID:         id,
		Name:       r.Name,
		BaseRate:   r.BaseRate,
		TotalRooms: r.TotalRooms,
	}
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(rt *domain.RoomType) *RoomTypeResponse {
	return &RoomTypeResponse{
		ID:         rt.ID,
		Name:       rt.Name,
		BaseRate:   rt.BaseRate,
		TotalRooms: rt.TotalRooms,
		CreatedAt:  rt.CreatedAt,
		UpdatedAt:  rt.UpdatedAt,
	}
}
