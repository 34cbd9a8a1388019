package create_booking

import (
	"time"

	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	GuestID    int64            // ID гостя (из заголовка аутентификации)
	RoomTypeID int64            // ID типа номера
	StartDate  types.DateString // Дата заезда (YYYY-MM-DD)
	EndDate    types.DateString // Дата выезда, не входит в проживание
	Rooms      int              // Количество номеров
}

// NightPrice цена одной ночи в ответе
type NightPrice struct {
	Date    types.DateString `json:"date"`
	PerRoom int64            `json:"perRoom"`
	Amount  int64            `json:"amount"`
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`
	GuestID   int64  `json:"guestId"`

	RoomTypeID int64            `json:"roomTypeId"`
	StartDate  types.DateString `json:"startDate"`
	EndDate    types.DateString `json:"endDate"`
	Rooms      int              `json:"rooms"`

	Status string `json:"status"`

	// Детализация цены на момент создания
	PerNight        []NightPrice `json:"perNight"`
	Subtotal        int64        `json:"subtotal"`
	DepositRequired int64        `json:"depositRequired"`
	TotalPrice      int64        `json:"totalPrice"`

	CreatedAt time.Time `json:"createdAt"`
}
