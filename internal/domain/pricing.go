package domain

import "time"

// NightRate цена одного номера за одну ночь после применения календарных правил
type NightRate struct {
	Day time.Time

	// PerRoom цена за номер в минорных единицах (после округления)
	PerRoom int64

	// Amount цена за все номера бронирования за эту ночь
	Amount int64
}

// PriceBreakdown детализация цены бронирования
type PriceBreakdown struct {
	PerNight []NightRate

	// Subtotal сумма по ночам в минорных единицах
	Subtotal int64

	// DepositRequired требуемый депозит; 0 — депозит не нужен
	DepositRequired int64

	// Total итоговая цена; налоги и сборы — забота внешнего слоя
	Total int64
}
