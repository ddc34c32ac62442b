package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Hotel-api/internal/application/cache"
	"github.com/jhoicas/Hotel-api/internal/application/dto"
	"github.com/jhoicas/Hotel-api/internal/domain"
	"github.com/jhoicas/Hotel-api/internal/domain/entity"
	"github.com/jhoicas/Hotel-api/internal/domain/repository"
)

// RoomUseCase inventario de habitaciones y su estado operativo.
type RoomUseCase struct {
	repo     repository.RoomRepository
	typeRepo repository.RoomTypeRepository
	cache    *cache.Cache
}

// NewRoomUseCase construye el caso de uso.
func NewRoomUseCase(repo repository.RoomRepository, typeRepo repository.RoomTypeRepository, c *cache.Cache) *RoomUseCase {
	return &RoomUseCase{repo: repo, typeRepo: typeRepo, cache: c}
}

// Create crea una habitación. El número es único y el tipo debe existir.
func (uc *RoomUseCase) Create(ctx context.Context, in dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	number := strings.TrimSpace(in.Number)
	if number == "" {
		return nil, fmt.Errorf("%w: number requerido", domain.ErrInvalidInput)
	}
	status := in.Status
	if status == "" {
		status = entity.RoomStatusAvailable
	}
	if !entity.IsValidRoomStatus(status) {
		return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, status)
	}
	if err := uc.ensureRoomType(ctx, in.RoomTypeID); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	room := &entity.Room{
		ID:         uuid.New().String(),
		Number:     number,
		Floor:      in.Floor,
		RoomTypeID: in.RoomTypeID,
		Status:     status,
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if status == entity.RoomStatusAvailable {
		room.LastCleanedAt = &now
	}
	if err := uc.repo.Create(ctx, room); err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, cache.Event{Entity: cache.EntityRoom, Mutation: cache.MutationCreate, ID: room.ID})
	return ToRoomResponse(room), nil
}

// GetByID obtiene una habitación con su tipo; nil si no existe.
func (uc *RoomUseCase) GetByID(ctx context.Context, id string) (*dto.RoomResponse, error) {
	if err := domain.ValidateID("id", id); err != nil {
		return nil, err
	}
	out, _, err := cache.Remember(ctx, uc.cache, cache.RoomDetailKey(id), func(ctx context.Context) (*dto.RoomResponse, bool, error) {
		room, err := uc.repo.GetByID(ctx, id)
		if err != nil || room == nil {
			return nil, false, err
		}
		return ToRoomResponse(room), true, nil
	})
	return out, err
}

// List lista habitaciones filtrando por estado, piso o tipo.
func (uc *RoomUseCase) List(ctx context.Context, in dto.RoomListRequest) (*dto.RoomListResponse, error) {
	if in.Status != "" && !entity.IsValidRoomStatus(in.Status) {
		return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, in.Status)
	}
	if err := domain.ValidateOptionalID("room_type_id", in.RoomTypeID); err != nil {
		return nil, err
	}
	filter := repository.RoomFilter{Status: in.Status, Floor: in.Floor, RoomTypeID: in.RoomTypeID}
	key := cache.RoomsListKey(in.Status, in.Floor, in.RoomTypeID)
	out, _, err := cache.Remember(ctx, uc.cache, key, func(ctx context.Context) (*dto.RoomListResponse, bool, error) {
		list, err := uc.repo.List(ctx, filter)
		if err != nil {
			return nil, false, err
		}
		items := make([]dto.RoomResponse, 0, len(list))
		for _, r := range list {
			items = append(items, *ToRoomResponse(r))
		}
		return &dto.RoomListResponse{Items: items}, true, nil
	})
	return out, err
}

// Update actualiza número, piso, tipo o notas. El estado cambia solo vía UpdateStatus.
func (uc *RoomUseCase) Update(ctx context.Context, id string, in dto.UpdateRoomRequest) (*dto.RoomResponse, error) {
	if err := domain.ValidateID("id", id); err != nil {
		return nil, err
	}
	room, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, nil
	}
	if in.Number != nil {
		number := strings.TrimSpace(*in.Number)
		if number == "" {
			return nil, fmt.Errorf("%w: number requerido", domain.ErrInvalidInput)
		}
		if number != room.Number {
			other, err := uc.repo.GetByNumber(ctx, number)
			if err != nil {
				return nil, err
			}
			if other != nil {
				return nil, domain.ErrDuplicate
			}
		}
		room.Number = number
	}
	if in.Floor != nil {
		room.Floor = *in.Floor
	}
	if in.RoomTypeID != nil && *in.RoomTypeID != room.RoomTypeID {
		if err := uc.ensureRoomType(ctx, *in.RoomTypeID); err != nil {
			return nil, err
		}
		room.RoomTypeID = *in.RoomTypeID
		room.RoomType = nil
	}
	if in.Notes != nil {
		room.Notes = *in.Notes
	}
	room.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, room); err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, cache.Event{Entity: cache.EntityRoom, Mutation: cache.MutationUpdate, ID: room.ID})
	return ToRoomResponse(room), nil
}

// UpdateStatus cambia el estado operativo. Al pasar a "available" desde otro estado
// se registra la hora de limpieza; en cualquier otro cambio se conserva la anterior.
func (uc *RoomUseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateRoomStatusRequest) (*dto.RoomResponse, error) {
	if err := domain.ValidateID("id", id); err != nil {
		return nil, err
	}
	if !entity.IsValidRoomStatus(in.Status) {
		return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, in.Status)
	}
	room, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, nil
	}
	room.ApplyStatus(in.Status, time.Now())
	if err := uc.repo.UpdateStatus(ctx, room); err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, cache.Event{Entity: cache.EntityRoom, Mutation: cache.MutationStatus, ID: room.ID})
	return ToRoomResponse(room), nil
}

// Delete elimina la habitación. Con reservas asociadas la base responde ErrConflict.
func (uc *RoomUseCase) Delete(ctx context.Context, id string) error {
	if err := domain.ValidateID("id", id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.cache.Invalidate(ctx, cache.Event{Entity: cache.EntityRoom, Mutation: cache.MutationDelete, ID: id})
	return nil
}

func (uc *RoomUseCase) ensureRoomType(ctx context.Context, id string) error {
	if err := domain.ValidateID("room_type_id", id); err != nil {
		return err
	}
	rt, err := uc.typeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rt == nil {
		return fmt.Errorf("%w: tipo de habitación inexistente", domain.ErrInvalidInput)
	}
	return nil
}
