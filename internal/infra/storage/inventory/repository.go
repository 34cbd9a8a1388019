package inventory

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

// Repository реестр инвентаря (Inventory Ledger)
//
// Единственные мутирующие операции — Reserve и Release. Счетчики никогда
// не изменяются по схеме read-then-write: каждое списание — условный UPDATE
// "уменьшить, если останется >= 0", выполняемый внутри сериализуемой
// транзакции вызывающей стороны. Это единственная точка сериализации ядра.
type Repository struct {
	db           DBExecutor
	horizonDays  int
	timeProvider TimeProvider
	log          Logger
}

// NewRepository создает реестр инвентаря
// horizonDays — горизонт бронирования: даты дальше horizonDays от текущего
// дня недоступны для резервирования.
func NewRepository(db DBExecutor, horizonDays int, log Logger) *Repository {
	return &Repository{
		db:           db,
		horizonDays:  horizonDays,
		timeProvider: &RealTimeProvider{},
		log:          log,
	}
}

// Reserve атомарно списывает count номеров на каждую дату диапазона
//
// Вызывается только внутри сериализуемой транзакции (txManager.DoSerializable):
// если на любую дату номеров не хватает, возвращается InsufficientInventoryError
// с первой неудавшейся датой, транзакция откатывается и все предыдущие
// списания этого вызова отменяются.
//
// Отсутствующие строки inventory_days в пределах горизонта создаются лениво
// с полной доступностью из room_types.total_rooms.
func (r *Repository) Reserve(ctx context.Context, roomTypeID int64, rng domain.DateRange, count int) error {
	if !rng.IsValid() {
		return ErrEmptyRange
	}
	if count <= 0 {
		return fmt.Errorf("%w: Reserve", ErrInvalidCount)
	}
	if err := r.checkHorizon(rng); err != nil {
		return err
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	for _, day := range rng.Dates() {
		if err := r.seedDay(ctx, executor, roomTypeID, day); err != nil {
			return err
		}

		// Условное списание: уменьшаем счетчик только если останется >= 0.
		// Ноль затронутых строк означает нехватку номеров на эту дату.
		query, args, err := psqlbuilder.Update("inventory_days").
			Set("available_rooms", squirrel.Expr("available_rooms - ?", count)).
			Where(squirrel.Eq{"room_type_id": roomTypeID, "day": day}).
			Where(squirrel.GtOrEq{"available_rooms": count}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: Reserve - build update query: %v", ErrBuildQuery, err)
		}

		result, err := executor.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: Reserve - execute update: %v", ErrExecQuery, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: Reserve - get rows affected: %v", ErrExecQuery, err)
		}

		if affected == 0 {
			return &InsufficientInventoryError{RoomTypeID: roomTypeID, Day: day}
		}
	}

	return nil
}

// Release возвращает count номеров на каждую дату диапазона
//
// Операция безусловная (обратная к Reserve), но результат ограничен сверху
// room_types.total_rooms: превышение потолка указывает на ошибку учета,
// логируется как нарушение инварианта и обрезается. Даты, на которых
// зафиксировано нарушение (превышение потолка или отсутствующая строка),
// возвращаются вызывающей стороне для записи в журнал аудита.
func (r *Repository) Release(ctx context.Context, roomTypeID int64, rng domain.DateRange, count int) ([]time.Time, error) {
	if !rng.IsValid() {
		return nil, ErrEmptyRange
	}
	if count <= 0 {
		return nil, fmt.Errorf("%w: Release", ErrInvalidCount)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	totalRooms, err := r.totalRooms(ctx, executor, roomTypeID)
	if err != nil {
		return nil, err
	}

	var violations []time.Time

	for _, day := range rng.Dates() {
		query, args, err := psqlbuilder.Update("inventory_days").
			Set("available_rooms", squirrel.Expr("available_rooms + ?", count)).
			Where(squirrel.Eq{"room_type_id": roomTypeID, "day": day}).
			Suffix("RETURNING available_rooms").
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Release - build update query: %v", ErrBuildQuery, err)
		}

		var available int
		err = executor.QueryRowContext(ctx, query, args...).Scan(&available)
		if err == sql.ErrNoRows {
			// Release без соответствующего Reserve — ошибка учета
			r.log.Error("inventory invariant violation: release for missing row, room_type=%d day=%s",
				roomTypeID, day.Format(domain.DateFormat))
			violations = append(violations, day)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: Release - execute update: %v", ErrExecQuery, err)
		}

		if available > totalRooms {
			r.log.Error("inventory invariant violation: available=%d exceeds total=%d, room_type=%d day=%s",
				available, totalRooms, roomTypeID, day.Format(domain.DateFormat))
			violations = append(violations, day)

			if err := r.clampDay(ctx, executor, roomTypeID, day, totalRooms); err != nil {
				return nil, err
			}
		}
	}

	return violations, nil
}

// AvailabilityForRange возвращает доступность по датам диапазона (без блокировок)
// Отсутствующие строки в пределах горизонта трактуются как полная доступность.
// Только для предпросмотра: авторитетный путь резервирования — Reserve.
func (r *Repository) AvailabilityForRange(ctx context.Context, roomTypeID int64, rng domain.DateRange) ([]domain.InventoryDay, error) {
	if !rng.IsValid() {
		return nil, ErrEmptyRange
	}
	if err := r.checkHorizon(rng); err != nil {
		return nil, err
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	totalRooms, err := r.totalRooms(ctx, executor, roomTypeID)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Select("day", "available_rooms").
		From("inventory_days").
		Where(squirrel.Eq{"room_type_id": roomTypeID}).
		Where(squirrel.GtOrEq{"day": rng.Start}).
		Where(squirrel.Lt{"day": rng.End}).
		OrderBy("day ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: AvailabilityForRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: AvailabilityForRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	seeded := make(map[string]int)
	for rows.Next() {
		var day time.Time
		var available int
		if err := rows.Scan(&day, &available); err != nil {
			return nil, fmt.Errorf("%w: AvailabilityForRange - scan row: %v", ErrScanRow, err)
		}
		seeded[day.Format(domain.DateFormat)] = available
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: AvailabilityForRange - rows error: %v", ErrScanRow, err)
	}

	days := make([]domain.InventoryDay, 0, rng.Nights())
	for _, day := range rng.Dates() {
		available := totalRooms
		if v, ok := seeded[day.Format(domain.DateFormat)]; ok {
			available = v
		}
		days = append(days, domain.InventoryDay{
			RoomTypeID:     roomTypeID,
			Day:            day,
			AvailableRooms: available,
		})
	}

	return days, nil
}

// seedDay лениво создает строку инвентаря с полной доступностью
func (r *Repository) seedDay(ctx context.Context, executor DBExecutor, roomTypeID int64, day time.Time) error {
	query, args, err := psqlbuilder.Insert("inventory_days").
		Columns("room_type_id", "day", "available_rooms").
		Select(
			psqlbuilder.Select("id").
				Column(squirrel.Expr("?::date", day)).
				Column("total_rooms").
				From("room_types").
				Where(squirrel.Eq{"id": roomTypeID}),
		).
		Suffix("ON CONFLICT (room_type_id, day) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: seedDay - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: seedDay - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// clampDay обрезает счетчик до потолка totalRooms
func (r *Repository) clampDay(ctx context.Context, executor DBExecutor, roomTypeID int64, day time.Time, totalRooms int) error {
	query, args, err := psqlbuilder.Update("inventory_days").
		Set("available_rooms", totalRooms).
		Where(squirrel.Eq{"room_type_id": roomTypeID, "day": day}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: clampDay - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: clampDay - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// totalRooms возвращает физическое количество номеров типа
func (r *Repository) totalRooms(ctx context.Context, executor DBExecutor, roomTypeID int64) (int, error) {
	query, args, err := psqlbuilder.Select("total_rooms").
		From("room_types").
		Where(squirrel.Eq{"id": roomTypeID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: totalRooms - build select query: %v", ErrBuildQuery, err)
	}

	var total int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&total)
	if err == sql.ErrNoRows {
		return 0, ErrRoomTypeNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: totalRooms - scan total: %v", ErrScanRow, err)
	}

	return total, nil
}

// checkHorizon проверяет, что диапазон не выходит за горизонт бронирования
// Последняя ночь диапазона — End-1, поэтому сравнивается она.
func (r *Repository) checkHorizon(rng domain.DateRange) error {
	horizon := r.timeProvider.Now().UTC().AddDate(0, 0, r.horizonDays)
	lastNight := rng.End.AddDate(0, 0, -1)
	if lastNight.After(horizon) {
		return fmt.Errorf("%w: last night %s is beyond %d day horizon",
			ErrBeyondHorizon, lastNight.Format(domain.DateFormat), r.horizonDays)
	}
	return nil
}
