package calendaradmin

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// CalendarStore интерфейс хранилища календарных правил
type CalendarStore interface {
	Upsert(ctx context.Context, override *domain.CalendarOverride) (*domain.CalendarOverride, error)
	Delete(ctx context.Context, id int64) error
	ListForRange(ctx context.Context, roomTypeID int64, rng domain.DateRange) ([]*domain.CalendarOverride, error)
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
