package calendar_overrides

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// UpsertOverrideRequest HTTP request model
type UpsertOverrideRequest struct {
	Day        string   `json:"day"` // "2025-12-31"
	RoomTypeID *int64   `json:"roomTypeId,omitempty"`
	RuleKind   string   `json:"ruleKind"` // "blocked" | "rate_override"
	RateMode   *string  `json:"rateMode,omitempty"`
	RateValue  *float64 `json:"rateValue,omitempty"`
}

// OverrideResponse HTTP response model
type OverrideResponse struct {
	ID         int64            `json:"id"`
	Day        types.DateString `json:"day"`
	RoomTypeID *int64           `json:"roomTypeId,omitempty"`
	RuleKind   string           `json:"ruleKind"`
	RateMode   *string          `json:"rateMode,omitempty"`
	RateValue  *float64         `json:"rateValue,omitempty"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

// ToDomain конвертирует HTTP запрос в доменную модель
func (r *UpsertOverrideRequest) ToDomain() (*domain.CalendarOverride, error) {
	day, err := time.Parse(domain.DateFormat, r.Day)
	if err != nil {
		return nil, err
	}

	override := &domain.CalendarOverride{
		Day:        day.UTC(),
		RoomTypeID: r.RoomTypeID,
		RuleKind:   domain.OverrideRuleKind(r.RuleKind),
		RateValue:  r.RateValue,
	}
	if r.RateMode != nil {
		mode := domain.RateMode(*r.RateMode)
		override.RateMode = &mode
	}
	return override, nil
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(o *domain.CalendarOverride) *OverrideResponse {
	resp := &OverrideResponse{
		ID:         o.ID,
		Day:        types.NewDateString(o.Day),
		RoomTypeID: o.RoomTypeID,
		RuleKind:   string(o.RuleKind),
		RateValue:  o.RateValue,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
	if o.RateMode != nil {
		mode := string(*o.RateMode)
		resp.RateMode = &mode
	}
	return resp
}

// FromDomainList конвертирует список доменных моделей в HTTP response
func FromDomainList(overrides []*domain.CalendarOverride) []*OverrideResponse {
	result := make([]*OverrideResponse, 0, len(overrides))
	for _, o := range overrides {
		result = append(result, FromDomain(o))
	}
	return result
}
