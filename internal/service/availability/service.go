package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/infra/storage/roomtype"
)

// DayAvailability доступность одного дня
type DayAvailability struct {
	Day            time.Time
	AvailableRooms int

	// Blocked — продажа на дату запрещена календарным правилом;
	// физическая доступность при этом не обнуляется
	Blocked bool
}

// Service предпросмотр доступности (read-only)
//
// Снимок без резервирования: между предпросмотром и созданием бронирования
// доступность может измениться, гарантию дает только атомарное
// резервирование.
type Service struct {
	inventory    InventoryLedger
	calendar     CalendarStore
	roomTypeRepo RoomTypeRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает сервис предпросмотра доступности
func NewService(inventory InventoryLedger, calendar CalendarStore, roomTypeRepo RoomTypeRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		inventory:    inventory,
		calendar:     calendar,
		roomTypeRepo: roomTypeRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// ForRange возвращает подневную доступность типа номера на диапазон дат
//
// Все чтения выполняются одной read-only транзакцией: снимок инвентаря и
// календаря согласован на один момент времени.
func (s *Service) ForRange(ctx context.Context, roomTypeID int64, rng domain.DateRange) ([]DayAvailability, error) {
	if !rng.IsValid() {
		return nil, ErrInvalidRange
	}

	var result []DayAvailability
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		if _, err := s.roomTypeRepo.GetByID(txCtx, roomTypeID); err != nil {
			if errors.Is(err, roomtype.ErrRoomTypeNotFound) {
				return fmt.Errorf("%w: id %d", ErrRoomTypeNotFound, roomTypeID)
			}
			s.logger.Error("ForRange: failed to get room type id=%d: %v", roomTypeID, err)
			return fmt.Errorf("%w: ForRange - get room type: %v", ErrInternal, err)
		}

		days, err := s.inventory.AvailabilityForRange(txCtx, roomTypeID, rng)
		if err != nil {
			s.logger.Error("ForRange: failed to read inventory room_type=%d: %v", roomTypeID, err)
			return fmt.Errorf("%w: ForRange - read inventory: %v", ErrInternal, err)
		}

		blocked, err := s.blockedDays(txCtx, roomTypeID, rng)
		if err != nil {
			return err
		}

		result = make([]DayAvailability, 0, len(days))
		for _, day := range days {
			result = append(result, DayAvailability{
				Day:            day.Day,
				AvailableRooms: day.AvailableRooms,
				Blocked:        blocked[day.Day.Format(domain.DateFormat)],
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// blockedDays возвращает множество заблокированных дат диапазона
func (s *Service) blockedDays(ctx context.Context, roomTypeID int64, rng domain.DateRange) (map[string]bool, error) {
	overrides, err := s.calendar.ListForRange(ctx, roomTypeID, rng)
	if err != nil {
		s.logger.Error("blockedDays: failed to list overrides room_type=%d: %v", roomTypeID, err)
		return nil, fmt.Errorf("%w: blockedDays - list overrides: %v", ErrInternal, err)
	}

	// Правило для конкретного типа имеет приоритет над общим (room_type_id IS NULL)
	type dayRule struct {
		blocked  bool
		specific bool
	}
	rules := make(map[string]dayRule, len(overrides))
	for _, o := range overrides {
		key := o.Day.Format(domain.DateFormat)
		specific := o.RoomTypeID != nil
		if existing, ok := rules[key]; ok && existing.specific && !specific {
			continue
		}
		rules[key] = dayRule{blocked: o.RuleKind == domain.RuleKindBlocked, specific: specific}
	}

	blocked := make(map[string]bool, len(rules))
	for key, rule := range rules {
		if rule.blocked {
			blocked[key] = true
		}
	}
	return blocked, nil
}
