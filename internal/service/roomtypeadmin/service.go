package roomtypeadmin

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	storage "github.com/m04kA/SMC-HotelService/internal/infra/storage/roomtype"
)

// Service административное редактирование типов номеров
//
// Каждое изменение оставляет запись в журнале аудита в той же транзакции.
// Правки базовой цены действуют только на будущие расчеты; изменение
// total_rooms не трогает уже материализованные строки инвентаря.
type Service struct {
	roomTypeRepo RoomTypeRepository
	audit        AuditLog
	txManager    TransactionManager
	logger       Logger
}

// NewService создает сервис редактирования типов номеров
func NewService(roomTypeRepo RoomTypeRepository, audit AuditLog, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		roomTypeRepo: roomTypeRepo,
		audit:        audit,
		txManager:    txManager,
		logger:       logger,
	}
}

// Create создает тип номера
func (s *Service) Create(ctx context.Context, roomType *domain.RoomType, actor string) (*domain.RoomType, error) {
	if err := validateRoomType(roomType); err != nil {
		return nil, err
	}
	if actor == "" {
		return nil, fmt.Errorf("%w: actor is required", ErrInvalidInput)
	}

	var saved *domain.RoomType

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		saved, err = s.roomTypeRepo.Create(txCtx, roomType)
		if err != nil {
			return err
		}

		return s.audit.Append(txCtx, &domain.AuditEntry{
			Actor:  actor,
			Action: domain.AuditActionRoomTypeEdit,
			Metadata: map[string]interface{}{
				"op":         "create",
				"roomTypeId": saved.ID,
				"name":       saved.Name,
				"baseRate":   saved.BaseRate,
				"totalRooms": saved.TotalRooms,
			},
		})
	})
	if err != nil {
		s.logger.Error("Create: failed to create room type name=%q: %v", roomType.Name, err)
		return nil, fmt.Errorf("%w: Create: %v", ErrInternal, err)
	}

	s.logger.Info("Create: room type id=%d name=%q created by %s", saved.ID, saved.Name, actor)
	return saved, nil
}

// Update административно изменяет тип номера
func (s *Service) Update(ctx context.Context, roomType *domain.RoomType, actor string) (*domain.RoomType, error) {
	if roomType == nil || roomType.ID <= 0 {
		return nil, fmt.Errorf("%w: room type id is required", ErrInvalidInput)
	}
	if err := validateRoomType(roomType); err != nil {
		return nil, err
	}
	if actor == "" {
		return nil, fmt.Errorf("%w: actor is required", ErrInvalidInput)
	}

	var saved *domain.RoomType

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.roomTypeRepo.Update(txCtx, roomType); err != nil {
			return err
		}

		var err error
		saved, err = s.roomTypeRepo.GetByID(txCtx, roomType.ID)
		if err != nil {
			return err
		}

		return s.audit.Append(txCtx, &domain.AuditEntry{
			Actor:  actor,
			Action: domain.AuditActionRoomTypeEdit,
			Metadata: map[string]interface{}{
				"op":         "update",
				"roomTypeId": saved.ID,
				"name":       saved.Name,
				"baseRate":   saved.BaseRate,
				"totalRooms": saved.TotalRooms,
			},
		})
	})
	if err != nil {
		if errors.Is(err, storage.ErrRoomTypeNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrRoomTypeNotFound, roomType.ID)
		}
		s.logger.Error("Update: failed to update room type id=%d: %v", roomType.ID, err)
		return nil, fmt.Errorf("%w: Update: %v", ErrInternal, err)
	}

	s.logger.Info("Update: room type id=%d updated by %s", saved.ID, actor)
	return saved, nil
}

// validateRoomType проверяет согласованность типа номера
func validateRoomType(roomType *domain.RoomType) error {
	if roomType == nil {
		return fmt.Errorf("%w: room type is required", ErrInvalidInput)
	}
	if roomType.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if roomType.BaseRate < 0 {
		return fmt.Errorf("%w: base rate must be non-negative", ErrInvalidInput)
	}
	if roomType.TotalRooms <= 0 {
		return fmt.Errorf("%w: total rooms must be positive", ErrInvalidInput)
	}
	return nil
}
