package guest_rules

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

type RulesService interface {
	UpsertRule(ctx context.Context, rule *domain.GuestBookingRule, actor string) (*domain.GuestBookingRule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
