package lifecycle

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByGuestID(ctx context.Context, guestID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	UpdateStatusCAS(ctx context.Context, id int64, from, to domain.BookingStatus) error
	CancelCAS(ctx context.Context, id int64, from domain.BookingStatus, reason string) error
}

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	SumSucceededByBooking(ctx context.Context, bookingID int64) (int64, error)
	GetByBookingID(ctx context.Context, bookingID int64) ([]*domain.Payment, error)
}

// InventoryLedger интерфейс реестра инвентаря
// Сервису жизненного цикла нужна только обратная операция: инвентарь
// резервируется один раз при создании бронирования (usecase create_booking)
// и освобождается один раз при отмене. Возвращаемые даты — дни, на которых
// реестр зафиксировал нарушение инварианта учета; они записываются в аудит.
type InventoryLedger interface {
	Release(ctx context.Context, roomTypeID int64, rng domain.DateRange, count int) ([]time.Time, error)
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
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
