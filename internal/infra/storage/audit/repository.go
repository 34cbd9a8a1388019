package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository журнал аудита
// Журнал только дописывается: методов обновления и удаления нет намеренно.
// Чтение и отчеты по журналу — забота внешнего потребителя.
type Repository struct {
	db DBExecutor
}

// NewRepository создает журнал аудита
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append дописывает запись в журнал
func (r *Repository) Append(ctx context.Context, entry *domain.AuditEntry) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	var metadata interface{}
	if entry.Metadata != nil {
		encoded, err := json.Marshal(entry.Metadata)
		if err != nil {
			return fmt.Errorf("%w: Append - marshal metadata: %v", ErrEncodeMetadata, err)
		}
		metadata = encoded
	}

	query, args, err := psqlbuilder.Insert("audit_entries").
		Columns(
			"id",
			"actor",
			"action",
			"booking_id",
			"status_before",
			"status_after",
			"reason",
			"metadata",
		).
		Values(
			entry.ID,
			entry.Actor,
			entry.Action,
			entry.BookingID,
			entry.StatusBefore,
			entry.StatusAfter,
			entry.Reason,
			metadata,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
