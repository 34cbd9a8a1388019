package pricing

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// RoomTypeRepository интерфейс репозитория типов номеров
type RoomTypeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.RoomType, error)
}

// CalendarStore интерфейс хранилища календарных правил
type CalendarStore interface {
	EffectiveModifier(ctx context.Context, roomTypeID int64, day time.Time) (domain.RateModifier, error)
}

// DepositPolicyRepository интерфейс таблицы депозитных политик
type DepositPolicyRepository interface {
	FindBand(ctx context.Context, rooms int) (*domain.DepositPolicy, error)
	ListAll(ctx context.Context) ([]*domain.DepositPolicy, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
