package domain

import "time"

// InventoryDay счетчик доступных номеров на одну дату
// Одна строка на пару (тип номера, дата). Изменяется только атомарными
// операциями резервирования/освобождения, никогда через read-then-write.
type InventoryDay struct {
	RoomTypeID     int64
	Day            time.Time
	AvailableRooms int
}
