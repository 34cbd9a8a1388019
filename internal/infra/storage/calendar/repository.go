package calendar

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

const overrideColumns = "id, day, room_type_id, rule_kind, rate_mode, rate_value, created_at, updated_at"

// Repository хранилище календарных правил (Calendar Rate Store)
type Repository struct {
	db DBExecutor
}

// NewRepository создает хранилище календарных правил
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// EffectiveModifier возвращает действующий модификатор цены на дату
//
// Порядок поиска: правило для конкретного типа номера, иначе общее правило
// (room_type_id IS NULL), иначе ModifierNone. Результат blocked обязывает
// вызывающую сторону отклонить запрос независимо от доступности.
func (r *Repository) EffectiveModifier(ctx context.Context, roomTypeID int64, day time.Time) (domain.RateModifier, error) {
	// 1. Правило для конкретного типа номера
	override, err := r.getByDayAndType(ctx, day, &roomTypeID)
	if err == nil {
		return override.Modifier(), nil
	}
	if err != ErrOverrideNotFound {
		return domain.RateModifier{}, err
	}

	// 2. Общее правило для всех типов
	override, err = r.getByDayAndType(ctx, day, nil)
	if err == nil {
		return override.Modifier(), nil
	}
	if err != ErrOverrideNotFound {
		return domain.RateModifier{}, err
	}

	// 3. Правил нет
	return domain.RateModifier{Kind: domain.ModifierNone}, nil
}

// Upsert создает или заменяет правило для пары (дата, тип номера)
// На пару допускается не более одного активного правила.
func (r *Repository) Upsert(ctx context.Context, override *domain.CalendarOverride) (*domain.CalendarOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("calendar_overrides").
		Columns("day", "room_type_id", "rule_kind", "rate_mode", "rate_value").
		Values(override.Day, override.RoomTypeID, override.RuleKind, override.RateMode, override.RateValue).
		Suffix(`ON CONFLICT (day, COALESCE(room_type_id, 0)) DO UPDATE
			SET rule_kind = EXCLUDED.rule_kind,
			    rate_mode = EXCLUDED.rate_mode,
			    rate_value = EXCLUDED.rate_value,
			    updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&override.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	override.CreatedAt = createdAt.Time
	override.UpdatedAt = updatedAt.Time

	return override, nil
}

// Delete удаляет правило по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("calendar_overrides").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrOverrideNotFound
	}

	return nil
}

// ListForRange возвращает правила, затрагивающие тип номера в диапазоне дат
// Включает общие правила (room_type_id IS NULL).
func (r *Repository) ListForRange(ctx context.Context, roomTypeID int64, rng domain.DateRange) ([]*domain.CalendarOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(overrideColumns).
		From("calendar_overrides").
		Where(squirrel.GtOrEq{"day": rng.Start}).
		Where(squirrel.Lt{"day": rng.End}).
		Where(squirrel.Or{
			squirrel.Eq{"room_type_id": roomTypeID},
			squirrel.Eq{"room_type_id": nil},
		}).
		OrderBy("day ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	overrides := make([]*domain.CalendarOverride, 0)
	for rows.Next() {
		override, err := scanOverride(rows)
		if err != nil {
			return nil, err
		}
		overrides = append(overrides, override)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListForRange - rows error: %v", ErrScanRow, err)
	}

	return overrides, nil
}

// getByDayAndType ищет правило для пары (дата, тип номера или NULL)
func (r *Repository) getByDayAndType(ctx context.Context, day time.Time, roomTypeID *int64) (*domain.CalendarOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(overrideColumns).
		From("calendar_overrides").
		Where(squirrel.Eq{"day": day})

	if roomTypeID == nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_type_id": nil})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_type_id": *roomTypeID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getByDayAndType - build select query: %v", ErrBuildQuery, err)
	}

	var override domain.CalendarOverride
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&override.ID,
		&override.Day,
		&override.RoomTypeID,
		&override.RuleKind,
		&override.RateMode,
		&override.RateValue,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrOverrideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getByDayAndType - scan override: %v", ErrScanRow, err)
	}

	override.CreatedAt = createdAt.Time
	override.UpdatedAt = updatedAt.Time

	return &override, nil
}

func scanOverride(rows *sql.Rows) (*domain.CalendarOverride, error) {
	var override domain.CalendarOverride
	var createdAt, updatedAt sql.NullTime

	err := rows.Scan(
		&override.ID,
		&override.Day,
		&override.RoomTypeID,
		&override.RuleKind,
		&override.RateMode,
		&override.RateValue,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: scanOverride - scan row: %v", ErrScanRow, err)
	}

	override.CreatedAt = createdAt.Time
	override.UpdatedAt = updatedAt.Time

	return &override, nil
}
