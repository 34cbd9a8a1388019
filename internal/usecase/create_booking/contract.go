package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/integrations/identityservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// InventoryLedger интерфейс реестра инвентаря
type InventoryLedger interface {
	Reserve(ctx context.Context, roomTypeID int64, rng domain.DateRange, count int) error
}

// PricingService интерфейс ценового движка
type PricingService interface {
	Quote(ctx context.Context, roomTypeID int64, rng domain.DateRange, rooms int) (*domain.PriceBreakdown, error)
}

// RulesValidator интерфейс валидатора правил бронирования
type RulesValidator interface {
	Validate(ctx context.Context, classification string, requestDate, startDate time.Time) error
}

// IdentityServiceClient интерфейс клиента для IdentityService
type IdentityServiceClient interface {
	GetGuest(ctx context.Context, guestID int64) (*identityservice.Guest, error)
}

// AuditLog интерфейс журнала аудита
type AuditLog interface {
	Append(ctx context.Context, entry *domain.AuditEntry) error
}

// EventPublisher интерфейс публикации доменных событий
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
