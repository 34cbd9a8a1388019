package quote_price

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	RoomTypeID int64  `json:"roomTypeId"`
	StartDate  string `json:"startDate"` // "2025-12-24"
	EndDate    string `json:"endDate"`   // "2025-12-27"
	Rooms      int    `json:"rooms"`
}

// NightPriceResponse цена одной ночи
type NightPriceResponse struct {
	Date    types.DateString `json:"date"`
	PerRoom int64            `json:"perRoom"`
	Amount  int64            `json:"amount"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	RoomTypeID      int64                `json:"roomTypeId"`
	StartDate       types.DateString     `json:"startDate"`
	EndDate         types.DateString     `json:"endDate"`
	Rooms           int                  `json:"rooms"`
	PerNight        []NightPriceResponse `json:"perNight"`
	Subtotal        int64                `json:"subtotal"`
	DepositRequired int64                `json:"depositRequired"`
	Total           int64                `json:"total"`
}

// ParseRange парсит и валидирует диапазон дат запроса
func (r *QuoteRequest) ParseRange() (domain.DateRange, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return domain.DateRange{}, err
	}
	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return domain.DateRange{}, err
	}
	return domain.NewDateRange(startDate.UTC(), endDate.UTC()), nil
}

// FromBreakdown конвертирует детализацию цены в HTTP response
func FromBreakdown(req *QuoteRequest, rng domain.DateRange, breakdown *domain.PriceBreakdown) *QuoteResponse {
	perNight := make([]NightPriceResponse, 0, len(breakdown.PerNight))
	for _, night := range breakdown.PerNight {
		perNight = append(perNight, NightPriceResponse{
			Date:    types.NewDateString(night.Day),
			PerRoom: night.PerRoom,
			Amount:  night.Amount,
		})
	}

	return &QuoteResponse{
		RoomTypeID:      req.RoomTypeID,
		StartDate:       types.NewDateString(rng.Start),
		EndDate:         types.NewDateString(rng.End),
		Rooms:           req.Rooms,
		PerNight:        perNight,
		Subtotal:        breakdown.Subtotal,
		DepositRequired: breakdown.DepositRequired,
		Total:           breakdown.Total,
	}
}
