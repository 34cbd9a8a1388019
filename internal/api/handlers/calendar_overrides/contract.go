package calendar_overrides

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

type CalendarAdminService interface {
	Upsert(ctx context.Context, override *domain.CalendarOverride, actor string) (*domain.CalendarOverride, error)
	Delete(ctx context.Context, id int64, actor string) error
	ListForRange(ctx context.Context, roomTypeID int64, rng domain.DateRange) ([]*domain.CalendarOverride, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
