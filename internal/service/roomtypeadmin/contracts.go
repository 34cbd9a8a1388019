package roomtypeadmin

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// RoomTypeRepository интерфейс хранилища типов номеров
type RoomTypeRepository interface {
	Create(ctx context.Context, roomType *domain.RoomType) (*domain.RoomType, error)
	Update(ctx context.Context, roomType *domain.RoomType) error
	GetByID(ctx context.Context, id int64) (*domain.RoomType, error)
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
