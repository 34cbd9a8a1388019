package pricing

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/infra/storage/depositpolicy"
	"github.com/m04kA/SMC-HotelService/internal/infra/storage/roomtype"
)

// Service ценовой движок (Pricing Engine)
//
// Складывает базовую цену типа номера с календарными правилами по каждой
// ночи и применяет депозитную политику. Детерминирован: при неизменных
// правилах одинаковый вход дает одинаковый результат.
type Service struct {
	roomTypeRepo RoomTypeRepository
	calendar     CalendarStore
	depositRepo  DepositPolicyRepository
	logger       Logger
}

// NewService создает ценовой движок
func NewService(
	roomTypeRepo RoomTypeRepository,
	calendar CalendarStore,
	depositRepo DepositPolicyRepository,
	logger Logger,
) *Service {
	return &Service{
		roomTypeRepo: roomTypeRepo,
		calendar:     calendar,
		depositRepo:  depositRepo,
		logger:       logger,
	}
}

// Quote рассчитывает детализацию цены бронирования
//
// По каждой ночи полуоткрытого диапазона: базовая цена без правила, округление
// half-up для множителя, замена (не умножение) для фиксированной цены.
// Заблокированная дата отклоняет запрос целиком с указанием даты.
// Округление выполняется по ночам до суммирования, поэтому итог не зависит
// от порядка сложения.
func (s *Service) Quote(ctx context.Context, roomTypeID int64, rng domain.DateRange, rooms int) (*domain.PriceBreakdown, error) {
	if !rng.IsValid() {
		return nil, ErrInvalidRange
	}
	if rooms <= 0 {
		return nil, ErrInvalidRoomCount
	}

	roomType, err := s.roomTypeRepo.GetByID(ctx, roomTypeID)
	if err != nil {
		if errors.Is(err, roomtype.ErrRoomTypeNotFound) {
			s.logger.Warn("Quote: room type id=%d not found", roomTypeID)
			return nil, ErrRoomTypeNotFound
		}
		s.logger.Error("Quote: failed to get room type id=%d: %v", roomTypeID, err)
		return nil, fmt.Errorf("%w: Quote - get room type: %v", ErrInternal, err)
	}

	perNight := make([]domain.NightRate, 0, rng.Nights())
	var subtotal int64

	for _, day := range rng.Dates() {
		modifier, err := s.calendar.EffectiveModifier(ctx, roomTypeID, day)
		if err != nil {
			s.logger.Error("Quote: failed to get modifier for room_type=%d day=%s: %v",
				roomTypeID, day.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: Quote - get modifier: %v", ErrInternal, err)
		}

		perRoom, err := nightRate(roomType.BaseRate, modifier)
		if err != nil {
			var blocked *DateBlockedError
			if errors.As(err, &blocked) {
				blocked.Day = day
				s.logger.Warn("Quote: date %s is blocked for room_type=%d",
					day.Format(domain.DateFormat), roomTypeID)
				return nil, blocked
			}
			return nil, err
		}

		amount := perRoom * int64(rooms)
		perNight = append(perNight, domain.NightRate{Day: day, PerRoom: perRoom, Amount: amount})
		subtotal += amount
	}

	deposit, err := s.depositFor(ctx, rooms, subtotal)
	if err != nil {
		return nil, err
	}

	return &domain.PriceBreakdown{
		PerNight:        perNight,
		Subtotal:        subtotal,
		DepositRequired: deposit,
		Total:           subtotal, // налоги и сборы — забота внешнего слоя
	}, nil
}

// ValidateDepositBands проверяет, что депозитные полосы образуют разбиение
// диапазона [GroupBookingThreshold, MaxRoomsPerBooking] без дыр и пересечений
//
// Вызывается на старте сервиса: сломанная таблица полос — это отказ в каждом
// групповом Quote, и обнаружить его нужно до первого запроса.
func (s *Service) ValidateDepositBands(ctx context.Context) error {
	bands, err := s.depositRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("%w: ValidateDepositBands - list bands: %v", ErrInternal, err)
	}

	// ListAll возвращает полосы по возрастанию min_rooms
	next := domain.GroupBookingThreshold
	for _, band := range bands {
		if band.MinRooms > band.MaxRooms {
			return fmt.Errorf("%w: band [%d, %d] is inverted", ErrDepositConfig, band.MinRooms, band.MaxRooms)
		}
		if band.MaxRooms < domain.GroupBookingThreshold {
			continue
		}
		if band.MinRooms > next {
			return fmt.Errorf("%w: no band covers %d rooms", ErrDepositConfig, next)
		}
		if band.MinRooms < next && next > domain.GroupBookingThreshold {
			return fmt.Errorf("%w: bands overlap at %d rooms", ErrDepositConfig, band.MinRooms)
		}
		next = band.MaxRooms + 1
	}

	if next <= domain.MaxRoomsPerBooking {
		return fmt.Errorf("%w: no band covers %d rooms", ErrDepositConfig, next)
	}

	return nil
}

// depositFor возвращает требуемый депозит для количества номеров и суммы
//
// Ниже группового порога депозит не требуется. На пороге и выше ищется
// единственная подходящая полоса; её отсутствие — ошибка конфигурации,
// которая возвращается наверх, а не заменяется дефолтом.
func (s *Service) depositFor(ctx context.Context, rooms int, total int64) (int64, error) {
	if rooms < domain.GroupBookingThreshold {
		return 0, nil
	}

	band, err := s.depositRepo.FindBand(ctx, rooms)
	if err != nil {
		if errors.Is(err, depositpolicy.ErrBandNotFound) {
			s.logger.Error("depositFor: no deposit band configured for rooms=%d", rooms)
			return 0, fmt.Errorf("%w: rooms=%d", ErrNoDepositBand, rooms)
		}
		s.logger.Error("depositFor: failed to find band for rooms=%d: %v", rooms, err)
		return 0, fmt.Errorf("%w: depositFor - find band: %v", ErrInternal, err)
	}

	switch band.Type {
	case domain.DepositPercent:
		return roundHalfUp(float64(total) * float64(band.Value) / 100), nil
	case domain.DepositFixed:
		if band.Value > total {
			return total, nil
		}
		return band.Value, nil
	default:
		return 0, fmt.Errorf("%w: unknown deposit type %q", ErrInternal, band.Type)
	}
}

// nightRate возвращает цену номера за ночь после применения модификатора
func nightRate(baseRate int64, modifier domain.RateModifier) (int64, error) {
	switch modifier.Kind {
	case domain.ModifierNone:
		return baseRate, nil
	case domain.ModifierMultiplier:
		return roundHalfUp(float64(baseRate) * modifier.Value), nil
	case domain.ModifierFixed:
		// Фиксированная цена заменяет базовую, не умножает
		return roundHalfUp(modifier.Value), nil
	case domain.ModifierBlocked:
		return 0, &DateBlockedError{}
	default:
		return 0, fmt.Errorf("%w: unknown modifier kind %q", ErrInternal, modifier.Kind)
	}
}

// roundHalfUp округляет неотрицательное значение до целого half-up
func roundHalfUp(x float64) int64 {
	return int64(math.Floor(x + 0.5))
}
