package availability

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// InventoryLedger интерфейс чтения доступности из реестра инвентаря
type InventoryLedger interface {
	AvailabilityForRange(ctx context.Context, roomTypeID int64, rng domain.DateRange) ([]domain.InventoryDay, error)
}

// CalendarStore интерфейс чтения календарных правил
type CalendarStore interface {
	ListForRange(ctx context.Context, roomTypeID int64, rng domain.DateRange) ([]*domain.CalendarOverride, error)
}

// RoomTypeRepository интерфейс хранилища типов номеров
type RoomTypeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.RoomType, error)
}

// TransactionManager интерфейс менеджера транзакций
// Предпросмотр читает инвентарь и календарь одной read-only транзакцией,
// чтобы не отдавать снимок из двух разных моментов времени.
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
