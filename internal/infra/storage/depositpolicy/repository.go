package depositpolicy

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

// Repository хранилище депозитных политик (Deposit Policy Table)
type Repository struct {
	db DBExecutor
}

// NewRepository создает хранилище депозитных политик
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindBand возвращает полосу, содержащую указанное количество номеров
// Полосы не пересекаются, поэтому подходящая полоса единственна.
// Отсутствие полосы — ошибка конфигурации (ErrBandNotFound), не дефолт.
func (r *Repository) FindBand(ctx context.Context, rooms int) (*domain.DepositPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"min_rooms",
		"max_rooms",
		"deposit_type",
		"deposit_value",
		"created_at",
		"updated_at",
	).
		From("deposit_policies").
		Where(squirrel.LtOrEq{"min_rooms": rooms}).
		Where(squirrel.GtOrEq{"max_rooms": rooms}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindBand - build select query: %v", ErrBuildQuery, err)
	}

	var policy domain.DepositPolicy
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&policy.ID,
		&policy.MinRooms,
		&policy.MaxRooms,
		&policy.Type,
		&policy.Value,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: rooms=%d", ErrBandNotFound, rooms)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindBand - scan policy: %v", ErrScanRow, err)
	}

	policy.CreatedAt = createdAt.Time
	policy.UpdatedAt = updatedAt.Time

	return &policy, nil
}

// ListAll возвращает все полосы по порядку (для валидации конфигурации)
func (r *Repository) ListAll(ctx context.Context) ([]*domain.DepositPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"min_rooms",
		"max_rooms",
		"deposit_type",
		"deposit_value",
		"created_at",
		"updated_at",
	).
		From("deposit_policies").
		OrderBy("min_rooms ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	policies := make([]*domain.DepositPolicy, 0)
	for rows.Next() {
		var policy domain.DepositPolicy
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&policy.ID,
			&policy.MinRooms,
			&policy.MaxRooms,
			&policy.Type,
			&policy.Value,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListAll - scan row: %v", ErrScanRow, err)
		}

		policy.CreatedAt = createdAt.Time
		policy.UpdatedAt = updatedAt.Time

		policies = append(policies, &policy)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAll - rows error: %v", ErrScanRow, err)
	}

	return policies, nil
}
