package calendaradmin

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	storage "github.com/m04kA/SMC-HotelService/internal/infra/storage/calendar"
)

// Service административное редактирование календарных правил
//
// Каждое изменение оставляет запись в журнале аудита в той же транзакции.
// Правки действуют только на будущие расчеты: цена уже созданного
// бронирования не пересчитывается.
type Service struct {
	calendar  CalendarStore
	audit     AuditLog
	txManager TransactionManager
	logger    Logger
}

// NewService создает сервис редактирования календаря
func NewService(calendar CalendarStore, audit AuditLog, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		calendar:  calendar,
		audit:     audit,
		txManager: txManager,
		logger:    logger,
	}
}

// Upsert создает или обновляет календарное правило на дату
func (s *Service) Upsert(ctx context.Context, override *domain.CalendarOverride, actor string) (*domain.CalendarOverride, error) {
	if err := validateOverride(override); err != nil {
		return nil, err
	}
	if actor == "" {
		return nil, fmt.Errorf("%w: actor is required", ErrInvalidInput)
	}

	var saved *domain.CalendarOverride

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		saved, err = s.calendar.Upsert(txCtx, override)
		if err != nil {
			return err
		}

		metadata := map[string]interface{}{
			"op":       "upsert",
			"day":      saved.Day.Format(domain.DateFormat),
			"ruleKind": string(saved.RuleKind),
		}
		if saved.RoomTypeID != nil {
			metadata["roomTypeId"] = *saved.RoomTypeID
		}
		if saved.RateMode != nil {
			metadata["rateMode"] = string(*saved.RateMode)
		}
		if saved.RateValue != nil {
			metadata["rateValue"] = *saved.RateValue
		}

		return s.audit.Append(txCtx, &domain.AuditEntry{
			Actor:    actor,
			Action:   domain.AuditActionCalendarEdit,
			Metadata: metadata,
		})
	})
	if err != nil {
		s.logger.Error("Upsert: failed to save override day=%s: %v", override.Day.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: Upsert: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: override id=%d day=%s saved by %s", saved.ID, saved.Day.Format(domain.DateFormat), actor)
	return saved, nil
}

// Delete удаляет календарное правило
func (s *Service) Delete(ctx context.Context, id int64, actor string) error {
	if actor == "" {
		return fmt.Errorf("%w: actor is required", ErrInvalidInput)
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.calendar.Delete(txCtx, id); err != nil {
			return err
		}

		return s.audit.Append(txCtx, &domain.AuditEntry{
			Actor:  actor,
			Action: domain.AuditActionCalendarEdit,
			Metadata: map[string]interface{}{
				"op":         "delete",
				"overrideId": id,
			},
		})
	})
	if err != nil {
		if errors.Is(err, storage.ErrOverrideNotFound) {
			return fmt.Errorf("%w: id %d", ErrOverrideNotFound, id)
		}
		s.logger.Error("Delete: failed to delete override id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: override id=%d deleted by %s", id, actor)
	return nil
}

// ListForRange возвращает календарные правила на диапазон дат
func (s *Service) ListForRange(ctx context.Context, roomTypeID int64, rng domain.DateRange) ([]*domain.CalendarOverride, error) {
	if !rng.IsValid() {
		return nil, fmt.Errorf("%w: invalid date range", ErrInvalidInput)
	}

	overrides, err := s.calendar.ListForRange(ctx, roomTypeID, rng)
	if err != nil {
		s.logger.Error("ListForRange: failed to list overrides: %v", err)
		return nil, fmt.Errorf("%w: ListForRange: %v", ErrInternal, err)
	}
	return overrides, nil
}

// validateOverride проверяет согласованность календарного правила
func validateOverride(override *domain.CalendarOverride) error {
	if override == nil {
		return fmt.Errorf("%w: override is required", ErrInvalidInput)
	}
	if override.Day.IsZero() {
		return fmt.Errorf("%w: day is required", ErrInvalidInput)
	}

	switch override.RuleKind {
	case domain.RuleKindBlocked:
		if override.RateMode != nil || override.RateValue != nil {
			return fmt.Errorf("%w: blocked rule must not carry rate mode or value", ErrInvalidInput)
		}
	case domain.RuleKindRateOverride:
		if override.RateMode == nil || override.RateValue == nil {
			return fmt.Errorf("%w: rate_override rule requires rate mode and value", ErrInvalidInput)
		}
		if *override.RateMode != domain.RateModeMultiplier && *override.RateMode != domain.RateModeFixed {
			return fmt.Errorf("%w: unknown rate mode %q", ErrInvalidInput, *override.RateMode)
		}
		if *override.RateValue < 0 {
			return fmt.Errorf("%w: rate value must be non-negative", ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: unknown rule kind %q", ErrInvalidInput, override.RuleKind)
	}

	return nil
}
