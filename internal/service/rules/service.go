package rules

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/infra/storage/guestrule"
)

// Service валидатор правил бронирования (Booking Rules Validator)
//
// Окно бронирования зависит от классификации гостя: не дальше maxDaysAdvance
// календарных дней от даты запроса и не ближе minDaysNotice. Обе границы
// включительны.
type Service struct {
	ruleRepo  GuestRuleRepository
	audit     AuditLog
	txManager TransactionManager
	logger    Logger
}

// NewService создает валидатор правил бронирования
func NewService(ruleRepo GuestRuleRepository, audit AuditLog, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		ruleRepo:  ruleRepo,
		audit:     audit,
		txManager: txManager,
		logger:    logger,
	}
}

// Validate проверяет, что дата заезда попадает в окно бронирования гостя
func (s *Service) Validate(ctx context.Context, classification string, requestDate, startDate time.Time) error {
	rule, err := s.ruleRepo.GetByClassification(ctx, classification)
	if err != nil {
		if errors.Is(err, guestrule.ErrRuleNotFound) {
			s.logger.Error("Validate: no booking rule for classification=%q", classification)
			return fmt.Errorf("%w: %s", ErrUnknownClassification, classification)
		}
		s.logger.Error("Validate: failed to get rule for classification=%q: %v", classification, err)
		return fmt.Errorf("%w: Validate - get rule: %v", ErrInternal, err)
	}

	daysAhead := domain.DaysBetween(requestDate, startDate)

	if daysAhead > rule.MaxDaysAdvance {
		s.logger.Warn("Validate: daysAhead=%d exceeds maxDaysAdvance=%d for classification=%q",
			daysAhead, rule.MaxDaysAdvance, classification)
		return fmt.Errorf("%w: %d days ahead, maximum is %d", ErrTooFarInAdvance, daysAhead, rule.MaxDaysAdvance)
	}

	if daysAhead < rule.MinDaysNotice {
		s.logger.Warn("Validate: daysAhead=%d below minDaysNotice=%d for classification=%q",
			daysAhead, rule.MinDaysNotice, classification)
		return fmt.Errorf("%w: %d days ahead, minimum is %d", ErrInsufficientNotice, daysAhead, rule.MinDaysNotice)
	}

	return nil
}

// UpsertRule административно создает или обновляет правило бронирования
//
// Изменение и запись в журнале аудита выполняются одной транзакцией.
// Новое окно действует только на последующие Validate: уже созданные
// бронирования не перепроверяются.
func (s *Service) UpsertRule(ctx context.Context, rule *domain.GuestBookingRule, actor string) (*domain.GuestBookingRule, error) {
	if rule == nil || rule.Classification == "" {
		return nil, fmt.Errorf("%w: classification is required", ErrInvalidInput)
	}
	if rule.MaxDaysAdvance < 0 || rule.MinDaysNotice < 0 {
		return nil, fmt.Errorf("%w: window bounds must be non-negative", ErrInvalidInput)
	}
	if rule.MinDaysNotice > rule.MaxDaysAdvance {
		return nil, fmt.Errorf("%w: min notice %d exceeds max advance %d", ErrInvalidInput, rule.MinDaysNotice, rule.MaxDaysAdvance)
	}
	if actor == "" {
		return nil, fmt.Errorf("%w: actor is required", ErrInvalidInput)
	}

	var saved *domain.GuestBookingRule

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		saved, err = s.ruleRepo.Upsert(txCtx, rule)
		if err != nil {
			return err
		}

		return s.audit.Append(txCtx, &domain.AuditEntry{
			Actor:  actor,
			Action: domain.AuditActionRuleEdit,
			Metadata: map[string]interface{}{
				"classification": saved.Classification,
				"maxDaysAdvance": saved.MaxDaysAdvance,
				"minDaysNotice":  saved.MinDaysNotice,
			},
		})
	})
	if err != nil {
		s.logger.Error("UpsertRule: failed to save rule classification=%q: %v", rule.Classification, err)
		return nil, fmt.Errorf("%w: UpsertRule: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertRule: rule classification=%q window=[%d,%d] saved by %s",
		saved.Classification, saved.MinDaysNotice, saved.MaxDaysAdvance, actor)
	return saved, nil
}
