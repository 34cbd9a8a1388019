package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	inventoryRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/inventory"
	identityClient "github.com/m04kA/SMC-HotelService/internal/integrations/identityservice"
	"github.com/m04kA/SMC-HotelService/internal/service/pricing"
	"github.com/m04kA/SMC-HotelService/internal/service/rules"
	"github.com/m04kA/SMC-HotelService/pkg/ptr"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// UseCase use case для создания бронирования
//
// Расчет цены, резервирование инвентаря, вставка бронирования и запись в
// аудит выполняются в одной сериализуемой транзакции: либо все вместе, либо
// ничего. Доменное событие BOOKING_CREATED публикуется после коммита.
type UseCase struct {
	bookingRepo  BookingRepository
	inventory    InventoryLedger
	pricing      PricingService
	rules        RulesValidator
	identity     IdentityServiceClient
	audit        AuditLog
	events       EventPublisher
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	inventory InventoryLedger,
	pricingService PricingService,
	rulesValidator RulesValidator,
	identity IdentityServiceClient,
	audit AuditLog,
	events EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		inventory:    inventory,
		pricing:      pricingService,
		rules:        rulesValidator,
		identity:     identity,
		audit:        audit,
		events:       events,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: guest=%d, roomType=%d, dates=%s..%s, rooms=%d",
		req.GuestID, req.RoomTypeID, req.StartDate, req.EndDate, req.Rooms)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	startDate, err := req.StartDate.Time()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startDate: %v", ErrInvalidInput, err)
	}
	endDate, err := req.EndDate.Time()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endDate: %v", ErrInvalidInput, err)
	}
	rng := domain.NewDateRange(startDate, endDate)

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация диапазона проживания
	if err := validateRange(rng, now); err != nil {
		uc.logger.Warn("CreateBooking: range validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем гостя и его классификацию
	guest, err := uc.identity.GetGuest(ctx, req.GuestID)
	if err != nil {
		if errors.Is(err, identityClient.ErrGuestNotFound) {
			uc.logger.Warn("CreateBooking: guest id=%d not found", req.GuestID)
			return nil, ErrGuestNotFound
		}
		uc.logger.Error("CreateBooking: failed to get guest id=%d: %v", req.GuestID, err)
		return nil, fmt.Errorf("%w: failed to get guest: %v", ErrInternal, err)
	}

	// 5. Проверяем окно бронирования для классификации гостя
	if err := uc.rules.Validate(ctx, guest.Classification, now, rng.Start); err != nil {
		switch {
		case errors.Is(err, rules.ErrTooFarInAdvance):
			uc.logger.Warn("CreateBooking: guest=%d booking too far in advance", req.GuestID)
			return nil, fmt.Errorf("%w: %v", ErrTooFarInAdvance, err)
		case errors.Is(err, rules.ErrInsufficientNotice):
			uc.logger.Warn("CreateBooking: guest=%d insufficient notice", req.GuestID)
			return nil, fmt.Errorf("%w: %v", ErrInsufficientNotice, err)
		}
		uc.logger.Error("CreateBooking: rules validation failed for guest=%d: %v", req.GuestID, err)
		return nil, fmt.Errorf("%w: rules validation: %v", ErrInternal, err)
	}

	// Переменные для хранения результата
	var (
		result *domain.Booking
		quote  *domain.PriceBreakdown
	)

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Рассчитываем цену по календарным правилам
		quote, err = uc.pricing.Quote(txCtx, req.RoomTypeID, rng, req.Rooms)
		if err != nil {
			return mapPricingError(err)
		}

		// 6.2. Резервируем инвентарь условным декрементом по каждой дате
		if err := uc.inventory.Reserve(txCtx, req.RoomTypeID, rng, req.Rooms); err != nil {
			return mapInventoryError(err)
		}

		// 6.3. Создаем бронирование в статусе PROVISIONAL
		booking := &domain.Booking{
			Reference:       uuid.New(),
			GuestID:         req.GuestID,
			RoomTypeID:      req.RoomTypeID,
			StayRange:       rng,
			RoomsBooked:     req.Rooms,
			TotalPrice:      quote.Total,
			DepositRequired: quote.DepositRequired,
			Status:          domain.StatusProvisional,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
		result = created

		// 6.4. Записываем создание в журнал аудита
		return uc.audit.Append(txCtx, &domain.AuditEntry{
			Actor:       fmt.Sprintf("guest:%d", req.GuestID),
			Action:      domain.AuditActionBookingCreated,
			BookingID:   ptr.Ptr(created.ID),
			StatusAfter: ptr.Ptr(domain.StatusProvisional),
			Metadata: map[string]interface{}{
				"roomTypeId":      req.RoomTypeID,
				"rooms":           req.Rooms,
				"totalPrice":      quote.Total,
				"depositRequired": quote.DepositRequired,
			},
		})
	})

	if err != nil {
		if isKnownError(err) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d reference=%s", result.ID, result.Reference)

	// 7. Публикуем событие после коммита; сбой доставки только логируется
	event := domain.NewEvent(domain.EventBookingCreated, result, now)
	if err := uc.events.Publish(ctx, event); err != nil {
		uc.logger.Warn("CreateBooking: failed to deliver BOOKING_CREATED for booking id=%d: %v", result.ID, err)
	}

	// Конвертируем в response
	perNight := make([]NightPrice, 0, len(quote.PerNight))
	for _, night := range quote.PerNight {
		perNight = append(perNight, NightPrice{
			Date:    types.NewDateString(night.Day),
			PerRoom: night.PerRoom,
			Amount:  night.Amount,
		})
	}

	return &Response{
		ID:              result.ID,
		Reference:       result.Reference.String(),
		GuestID:         result.GuestID,
		RoomTypeID:      result.RoomTypeID,
		StartDate:       types.NewDateString(result.StayRange.Start),
		EndDate:         types.NewDateString(result.StayRange.End),
		Rooms:           result.RoomsBooked,
		Status:          string(result.Status),
		PerNight:        perNight,
		Subtotal:        quote.Subtotal,
		DepositRequired: quote.DepositRequired,
		TotalPrice:      quote.Total,
		CreatedAt:       result.CreatedAt,
	}, nil
}

// mapPricingError переводит ошибки ценового движка в ошибки usecase
func mapPricingError(err error) error {
	var blocked *pricing.DateBlockedError
	switch {
	case errors.Is(err, pricing.ErrRoomTypeNotFound):
		return ErrRoomTypeNotFound
	case errors.As(err, &blocked):
		return fmt.Errorf("%w: %s", ErrDateBlocked, blocked.Day.Format(domain.DateFormat))
	case errors.Is(err, pricing.ErrInvalidRange), errors.Is(err, pricing.ErrInvalidRoomCount):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return fmt.Errorf("%w: pricing: %v", ErrInternal, err)
	}
}

// mapInventoryError переводит ошибки реестра инвентаря в ошибки usecase
func mapInventoryError(err error) error {
	var insufficient *inventoryRepo.InsufficientInventoryError
	switch {
	case errors.As(err, &insufficient):
		return fmt.Errorf("%w: room_type=%d date=%s",
			ErrInsufficientInventory, insufficient.RoomTypeID, insufficient.Day.Format(domain.DateFormat))
	case errors.Is(err, inventoryRepo.ErrBeyondHorizon):
		return ErrBeyondHorizon
	case errors.Is(err, inventoryRepo.ErrRoomTypeNotFound):
		return ErrRoomTypeNotFound
	default:
		return fmt.Errorf("%w: inventory: %v", ErrInternal, err)
	}
}

// isKnownError возвращает true для ошибок, уже переведенных в ошибки usecase
func isKnownError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrRoomTypeNotFound) ||
		errors.Is(err, ErrDateBlocked) ||
		errors.Is(err, ErrInsufficientInventory) ||
		errors.Is(err, ErrBeyondHorizon)
}
