package room_types

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

type RoomTypeAdminService interface {
	Create(ctx context.Context, roomType *domain.RoomType, actor string) (*domain.RoomType, error)
	Update(ctx context.Context, roomType *domain.RoomType, actor string) (*domain.RoomType, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
