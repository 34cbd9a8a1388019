package domain

import "time"

// DepositType способ расчета депозита
type DepositType string

const (
	DepositPercent DepositType = "percent"
	DepositFixed   DepositType = "fixed"
)

// DepositPolicy полоса депозитной политики для групповых бронирований
// Полосы [MinRooms, MaxRooms] упорядочены и не пересекаются; для любого
// количества номеров >= GroupBookingThreshold должна существовать ровно одна
// подходящая полоса — это конфигурационный инвариант.
type DepositPolicy struct {
	ID       int64
	MinRooms int
	MaxRooms int
	Type     DepositType

	// Value процент (для percent) или сумма в минорных единицах (для fixed)
	Value int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Matches возвращает true, если количество номеров попадает в полосу
func (p *DepositPolicy) Matches(rooms int) bool {
	return rooms >= p.MinRooms && rooms <= p.MaxRooms
}
