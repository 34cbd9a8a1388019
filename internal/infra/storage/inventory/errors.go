package inventory

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInsufficientInventory возвращается, когда на одну из дат диапазона
	// не хватает свободных номеров
	ErrInsufficientInventory = errors.New("inventory.repository: insufficient inventory")

	// ErrBeyondHorizon возвращается для дат за пределами горизонта бронирования
	ErrBeyondHorizon = errors.New("inventory.repository: date beyond inventory horizon")

	// ErrEmptyRange возвращается для пустого диапазона дат
	ErrEmptyRange = errors.New("inventory.repository: empty date range")

	// ErrInvalidCount возвращается для неположительного количества номеров
	ErrInvalidCount = errors.New("inventory.repository: count must be positive")

	// ErrRoomTypeNotFound возвращается, когда тип номера не существует
	ErrRoomTypeNotFound = errors.New("inventory.repository: room type not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("inventory.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("inventory.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("inventory.repository: failed to scan row")
)

// InsufficientInventoryError несет первую дату диапазона, на которую
// не хватило номеров
type InsufficientInventoryError struct {
	RoomTypeID int64
	Day        time.Time
}

// Error возвращает текст ошибки
func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("insufficient inventory for room type %d on %s",
		e.RoomTypeID, e.Day.Format("2006-01-02"))
}

// Unwrap поддерживает errors.Is(err, ErrInsufficientInventory)
func (e *InsufficientInventoryError) Unwrap() error {
	return ErrInsufficientInventory
}
