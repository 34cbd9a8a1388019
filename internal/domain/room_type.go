package domain

import "time"

// RoomType категория продаваемых номеров
type RoomType struct {
	ID   int64
	Name string

	// BaseRate базовая цена за ночь в минорных единицах валюты
	BaseRate int64

	// TotalRooms физическое количество номеров этого типа —
	// потолок доступности на любую дату
	TotalRooms int

	CreatedAt time.Time
	UpdatedAt time.Time
}
