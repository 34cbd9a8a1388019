package guestrule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository хранилище правил бронирования по классификации гостя
type Repository struct {
	db DBExecutor
}

// NewRepository создает хранилище правил бронирования
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByClassification возвращает правило для классификации гостя
func (r *Repository) GetByClassification(ctx context.Context, classification string) (*domain.GuestBookingRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"classification",
		"max_days_advance",
		"min_days_notice",
		"created_at",
		"updated_at",
	).
		From("guest_booking_rules").
		Where(squirrel.Eq{"classification": classification}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClassification - build select query: %v", ErrBuildQuery, err)
	}

	var rule domain.GuestBookingRule
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rule.ID,
		&rule.Classification,
		&rule.MaxDaysAdvance,
		&rule.MinDaysNotice,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrRuleNotFound, classification)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClassification - scan rule: %v", ErrScanRow, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return &rule, nil
}

// Upsert создает или обновляет правило для классификации
func (r *Repository) Upsert(ctx context.Context, rule *domain.GuestBookingRule) (*domain.GuestBookingRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("guest_booking_rules").
		Columns("classification", "max_days_advance", "min_days_notice").
		Values(rule.Classification, rule.MaxDaysAdvance, rule.MinDaysNotice).
		Suffix(`ON CONFLICT (classification) DO UPDATE
			SET max_days_advance = EXCLUDED.max_days_advance,
			    min_days_notice = EXCLUDED.min_days_notice,
			    updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&rule.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return rule, nil
}
