package guest_rules

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// UpsertRuleRequest HTTP request model
type UpsertRuleRequest struct {
	Classification string `json:"classification"` // "standard" | "priority" | "organizational"
	MaxDaysAdvance int    `json:"maxDaysAdvance"`
	MinDaysNotice  int    `json:"minDaysNotice"`
}

// RuleResponse HTTP response model
type RuleResponse struct {
	ID             int64     `json:"id"`
	Classification string    `json:"classification"`
	MaxDaysAdvance int       `json:"maxDaysAdvance"`
	MinDaysNotice  int       `json:"minDaysNotice"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ToDomain конвертирует HTTP запрос в доменную модель
func (r *UpsertRuleRequest) ToDomain() *domain.GuestBookingRule {
	return &domain.GuestBookingRule{
		Classification: r.Classification,
		MaxDaysAdvance: r.MaxDaysAdvance,
		MinDaysNotice:  r.MinDaysNotice,
	}
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(rule *domain.GuestBookingRule) *RuleResponse {
	return &RuleResponse{
		ID:             rule.ID,
		Classification: rule.Classification,
		MaxDaysAdvance: rule.MaxDaysAdvance,
		MinDaysNotice:  rule.MinDaysNotice,
		CreatedAt:      rule.CreatedAt,
		UpdatedAt:      rule.UpdatedAt,
	}
}
