package rules

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// GuestRuleRepository интерфейс хранилища правил бронирования
type GuestRuleRepository interface {
	GetByClassification(ctx context.Context, classification string) (*domain.GuestBookingRule, error)
	Upsert(ctx context.Context, rule *domain.GuestBookingRule) (*domain.GuestBookingRule, error)
}

// AuditLog интерфейс журнала аудита
type AuditLog interface {
	Append(ctx context.Context, entry *domain.AuditEntry) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
