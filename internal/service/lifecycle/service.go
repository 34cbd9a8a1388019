package lifecycle

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	storage "github.com/m04kA/SMC-HotelService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-HotelService/internal/service/lifecycle/models"
	"github.com/m04kA/SMC-HotelService/pkg/ptr"
)

// Service менеджер жизненного цикла бронирования (Booking Lifecycle Manager)
//
// Все переходы статусов выполняются через CAS-обновление (UPDATE ... WHERE
// status = from), поэтому два конкурирующих процесса не могут выполнить один
// и тот же переход дважды. Каждый переход оставляет ровно одну запись в
// журнале аудита внутри той же транзакции; доменные события публикуются
// после коммита и никогда не влияют на результат операции.
type Service struct {
	bookingRepo  BookingRepository
	paymentRepo  PaymentRepository
	inventory    InventoryLedger
	audit        AuditLog
	events       EventPublisher
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает менеджер жизненного цикла
func NewService(
	bookingRepo BookingRepository,
	paymentRepo PaymentRepository,
	inventory InventoryLedger,
	audit AuditLog,
	events EventPublisher,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		paymentRepo:  paymentRepo,
		inventory:    inventory,
		audit:        audit,
		events:       events,
		txManager:    txManager,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetByID возвращает бронирование по идентификатору
func (s *Service) GetByID(ctx context.Context, bookingID int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrBookingNotFound, bookingID)
		}
		s.logger.Error("GetByID: failed to get booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetByID: %v", ErrInternal, err)
	}
	return models.FromDomainBooking(booking), nil
}

// GetGuestBookings возвращает бронирования гостя, опционально по статусу
func (s *Service) GetGuestBookings(ctx context.Context, guestID int64, status *string) ([]*models.BookingResponse, error) {
	var statusFilter *domain.BookingStatus
	if status != nil {
		st := domain.BookingStatus(*status)
		if !domain.ValidStatus(st) {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *status)
		}
		statusFilter = &st
	}

	bookings, err := s.bookingRepo.GetByGuestID(ctx, guestID, statusFilter)
	if err != nil {
		s.logger.Error("GetGuestBookings: failed to list bookings guestID=%d: %v", guestID, err)
		return nil, fmt.Errorf("%w: GetGuestBookings: %v", ErrInternal, err)
	}
	return models.FromDomainBookings(bookings), nil
}

// GetPayments возвращает платежи по бронированию
func (s *Service) GetPayments(ctx context.Context, bookingID int64) ([]*models.PaymentResponse, error) {
	if _, err := s.bookingRepo.GetByID(ctx, bookingID); err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrBookingNotFound, bookingID)
		}
		s.logger.Error("GetPayments: failed to get booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetPayments: %v", ErrInternal, err)
	}

	payments, err := s.paymentRepo.GetByBookingID(ctx, bookingID)
	if err != nil {
		s.logger.Error("GetPayments: failed to list payments bookingID=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetPayments: %v", ErrInternal, err)
	}
	return models.FromDomainPayments(payments), nil
}

// HandlePaymentOutcome обрабатывает результат платежа от платежного провайдера
//
// Платеж фиксируется всегда, включая платежи по уже отмененному бронированию
// (возврат средств — забота внешней системы). Если успешный платеж доводит
// оплаченную сумму до требуемой (депозит или полная стоимость), бронирование
// переводится PROVISIONAL -> CONFIRMED в той же транзакции.
func (s *Service) HandlePaymentOutcome(ctx context.Context, bookingID, amount int64, succeeded bool, externalRef *string) (*models.PaymentOutcomeResult, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: payment amount must be positive", ErrInvalidInput)
	}

	var (
		booking   *domain.Booking
		confirmed bool
	)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var err error
		booking, err = s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			return err
		}

		if booking.IsTerminal() {
			// Платеж фиксируется, но подтвердить уже нечего; возврат средств —
			// забота внешней системы
			s.logger.Warn("HandlePaymentOutcome: payment for terminal booking id=%d status=%s", bookingID, booking.Status)
		}

		paymentStatus := domain.PaymentFailed
		if succeeded {
			paymentStatus = domain.PaymentSucceeded
		}

		payment := &domain.Payment{
			BookingID:   bookingID,
			Amount:      amount,
			Status:      paymentStatus,
			Method:      domain.PaymentOnline,
			ExternalRef: externalRef,
		}
		if _, err = s.paymentRepo.Create(txCtx, payment); err != nil {
			return err
		}

		statusBefore := booking.Status
		if err = s.audit.Append(txCtx, &domain.AuditEntry{
			Actor:        "payment_provider",
			Action:       domain.AuditActionPaymentRecorded,
			BookingID:    ptr.Ptr(bookingID),
			StatusBefore: &statusBefore,
			StatusAfter:  &statusBefore,
			Metadata: map[string]interface{}{
				"amount":    amount,
				"succeeded": succeeded,
			},
		}); err != nil {
			return err
		}

		if !succeeded {
			return nil
		}

		confirmed, err = s.confirmIfCovered(txCtx, booking, "payment_provider")
		return err
	})
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrBookingNotFound, bookingID)
		}
		s.logger.Error("HandlePaymentOutcome: bookingID=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: HandlePaymentOutcome: %v", ErrInternal, err)
	}

	if confirmed {
		s.publish(ctx, domain.EventBookingConfirmed, booking)
	}

	return &models.PaymentOutcomeResult{
		Booking:   models.FromDomainBooking(booking),
		Confirmed: confirmed,
	}, nil
}

// RecordOfflinePayment фиксирует офлайн-платеж, принятый на стойке
//
// Доступно только административным ролям; проходит через ту же логику
// подтверждения, что и онлайн-платежи.
func (s *Service) RecordOfflinePayment(ctx context.Context, bookingID, amount int64, actor string) (*models.PaymentOutcomeResult, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: payment amount must be positive", ErrInvalidInput)
	}
	if actor == "" {
		return nil, fmt.Errorf("%w: actor is required", ErrInvalidInput)
	}

	var (
		booking   *domain.Booking
		confirmed bool
	)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var err error
		booking, err = s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			return err
		}

		payment := &domain.Payment{
			BookingID: bookingID,
			Amount:    amount,
			Status:    domain.PaymentSucceeded,
			Method:    domain.PaymentOffline,
		}
		if _, err = s.paymentRepo.Create(txCtx, payment); err != nil {
			return err
		}

		statusBefore := booking.Status
		if err = s.audit.Append(txCtx, &domain.AuditEntry{
			Actor:        actor,
			Action:       domain.AuditActionOfflinePayment,
			BookingID:    ptr.Ptr(bookingID),
			StatusBefore: &statusBefore,
			StatusAfter:  &statusBefore,
			Metadata: map[string]interface{}{
				"amount": amount,
			},
		}); err != nil {
			return err
		}

		confirmed, err = s.confirmIfCovered(txCtx, booking, actor)
		return err
	})
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrBookingNotFound, bookingID)
		}
		s.logger.Error("RecordOfflinePayment: bookingID=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: RecordOfflinePayment: %v", ErrInternal, err)
	}

	if confirmed {
		s.publish(ctx, domain.EventBookingConfirmed, booking)
	}

	return &models.PaymentOutcomeResult{
		Booking:   models.FromDomainBooking(booking),
		Confirmed: confirmed,
	}, nil
}

// Cancel отменяет бронирование из статуса PROVISIONAL или CONFIRMED
//
// Освобождение инвентаря и смена статуса выполняются в одной
// сериализуемой транзакции, поэтому инвентарь не может быть освобожден
// дважды или потерян при конкурирующей отмене.
func (s *Service) Cancel(ctx context.Context, bookingID int64, actor, reason string) (*models.BookingResponse, error) {
	if len(reason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	var booking *domain.Booking

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var err error
		booking, err = s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			return err
		}

		if !booking.CanBeCancelled() {
			return fmt.Errorf("%w: cannot cancel booking in status %s", ErrInvalidTransition, booking.Status)
		}

		// Отменяемое бронирование всегда держит инвентарь; освобождаем его
		// в той же транзакции, что и смену статуса
		if booking.HoldsInventory() {
			violations, err := s.inventory.Release(txCtx, booking.RoomTypeID, booking.StayRange, booking.RoomsBooked)
			if err != nil {
				return err
			}
			for _, day := range violations {
				if err := s.audit.Append(txCtx, &domain.AuditEntry{
					Actor:     "system",
					Action:    domain.AuditActionInventoryViolation,
					BookingID: ptr.Ptr(bookingID),
					Metadata: map[string]interface{}{
						"day":        day.Format(domain.DateFormat),
						"roomTypeId": booking.RoomTypeID,
					},
				}); err != nil {
					return err
				}
			}
		}

		statusBefore := booking.Status
		if err = s.bookingRepo.CancelCAS(txCtx, bookingID, statusBefore, reason); err != nil {
			return err
		}

		booking.Status = domain.StatusCancelled
		booking.CancellationReason = ptr.Ptr(reason)
		booking.CancelledAt = ptr.Ptr(s.timeProvider.Now())

		return s.audit.Append(txCtx, &domain.AuditEntry{
			Actor:        actor,
			Action:       domain.AuditActionBookingCancelled,
			BookingID:    ptr.Ptr(bookingID),
			StatusBefore: &statusBefore,
			StatusAfter:  ptr.Ptr(domain.StatusCancelled),
			Reason:       ptr.Ptr(reason),
		})
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrBookingNotFound):
			return nil, fmt.Errorf("%w: id %d", ErrBookingNotFound, bookingID)
		case errors.Is(err, ErrInvalidTransition):
			return nil, err
		case errors.Is(err, storage.ErrStatusConflict):
			// Конкурирующий процесс успел сменить статус между чтением и CAS
			return nil, fmt.Errorf("%w: booking status changed concurrently", ErrInvalidTransition)
		}
		s.logger.Error("Cancel: bookingID=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel: %v", ErrInternal, err)
	}

	s.publish(ctx, domain.EventBookingCancelled, booking)

	return models.FromDomainBooking(booking), nil
}

// CheckIn переводит бронирование CONFIRMED -> CHECKED_IN
func (s *Service) CheckIn(ctx context.Context, bookingID int64, actor string) (*models.BookingResponse, error) {
	booking, err := s.transition(ctx, bookingID, domain.StatusCheckedIn, actor, domain.AuditActionCheckIn, nil)
	if err != nil {
		return nil, err
	}
	return models.FromDomainBooking(booking), nil
}

// CheckOut переводит бронирование CHECKED_IN -> CHECKED_OUT
func (s *Service) CheckOut(ctx context.Context, bookingID int64, actor string) (*models.BookingResponse, error) {
	booking, err := s.transition(ctx, bookingID, domain.StatusCheckedOut, actor, domain.AuditActionCheckOut, nil)
	if err != nil {
		return nil, err
	}
	return models.FromDomainBooking(booking), nil
}

// Complete переводит бронирование CHECKED_OUT -> COMPLETED
func (s *Service) Complete(ctx context.Context, bookingID int64, actor string) (*models.BookingResponse, error) {
	booking, err := s.transition(ctx, bookingID, domain.StatusCompleted, actor, domain.AuditActionCompleted, nil)
	if err != nil {
		return nil, err
	}
	return models.FromDomainBooking(booking), nil
}

// ForceStatus принудительно меняет статус бронирования (административная
// операция). Переход все равно проверяется по таблице допустимых переходов:
// принудительная смена не может нарушить машину состояний. Принудительная
// отмена проходит через Cancel, чтобы инвентарь был освобожден.
func (s *Service) ForceStatus(ctx context.Context, bookingID int64, to string, actor, reason string) (*models.BookingResponse, error) {
	target := domain.BookingStatus(to)
	if !domain.ValidStatus(target) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, to)
	}
	if actor == "" {
		return nil, fmt.Errorf("%w: actor is required", ErrInvalidInput)
	}

	if target == domain.StatusCancelled {
		return s.Cancel(ctx, bookingID, actor, reason)
	}

	booking, err := s.transition(ctx, bookingID, target, actor, domain.AuditActionForcedStatus, &reason)
	if err != nil {
		return nil, err
	}

	if target == domain.StatusConfirmed {
		s.publish(ctx, domain.EventBookingConfirmed, booking)
	}

	return models.FromDomainBooking(booking), nil
}

// transition выполняет одиночный переход статуса с CAS и записью в аудит
// Возвращает бронирование в состоянии после перехода.
func (s *Service) transition(ctx context.Context, bookingID int64, to domain.BookingStatus, actor, action string, reason *string) (*domain.Booking, error) {
	var booking *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		booking, err = s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			return err
		}

		if !booking.CanTransitionTo(to) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, to)
		}

		statusBefore := booking.Status
		if err = s.bookingRepo.UpdateStatusCAS(txCtx, bookingID, statusBefore, to); err != nil {
			return err
		}
		booking.Status = to

		return s.audit.Append(txCtx, &domain.AuditEntry{
			Actor:        actor,
			Action:       action,
			BookingID:    ptr.Ptr(bookingID),
			StatusBefore: &statusBefore,
			StatusAfter:  &to,
			Reason:       reason,
		})
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrBookingNotFound):
			return nil, fmt.Errorf("%w: id %d", ErrBookingNotFound, bookingID)
		case errors.Is(err, ErrInvalidTransition):
			return nil, err
		case errors.Is(err, storage.ErrStatusConflict):
			return nil, fmt.Errorf("%w: booking status changed concurrently", ErrInvalidTransition)
		}
		s.logger.Error("transition: bookingID=%d to=%s: %v", bookingID, to, err)
		return nil, fmt.Errorf("%w: transition: %v", ErrInternal, err)
	}

	return booking, nil
}

// confirmIfCovered переводит PROVISIONAL -> CONFIRMED, если оплаченная сумма
// покрывает требуемую (депозит или полную стоимость). Вызывается внутри
// транзакции платежа; изменяет booking при успешном подтверждении.
func (s *Service) confirmIfCovered(ctx context.Context, booking *domain.Booking, actor string) (bool, error) {
	if booking.Status != domain.StatusProvisional {
		return false, nil
	}

	paid, err := s.paymentRepo.SumSucceededByBooking(ctx, booking.ID)
	if err != nil {
		return false, err
	}
	if paid < booking.RequiredPayment() {
		return false, nil
	}

	statusBefore := booking.Status
	if err = s.bookingRepo.UpdateStatusCAS(ctx, booking.ID, statusBefore, domain.StatusConfirmed); err != nil {
		return false, err
	}
	booking.Status = domain.StatusConfirmed

	if err = s.audit.Append(ctx, &domain.AuditEntry{
		Actor:        actor,
		Action:       domain.AuditActionBookingConfirmed,
		BookingID:    ptr.Ptr(booking.ID),
		StatusBefore: &statusBefore,
		StatusAfter:  ptr.Ptr(domain.StatusConfirmed),
		Metadata: map[string]interface{}{
			"paidTotal":       paid,
			"requiredPayment": booking.RequiredPayment(),
		},
	}); err != nil {
		return false, err
	}

	return true, nil
}

// publish отправляет доменное событие после коммита; сбой доставки только
// логируется и не влияет на результат операции
func (s *Service) publish(ctx context.Context, eventType domain.EventType, booking *domain.Booking) {
	event := domain.NewEvent(eventType, booking, s.timeProvider.Now())
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("publish: failed to deliver event type=%s bookingID=%d: %v", eventType, booking.ID, err)
	}
}
