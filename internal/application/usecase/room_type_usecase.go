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

// RoomTypeUseCase CRUD de tipos de habitación (tarifas base).
type RoomTypeUseCase struct {
	repo  repository.RoomTypeRepository
	cache *cache.Cache
}

// NewRoomTypeUseCase construye el caso de uso.
func NewRoomTypeUseCase(repo repository.RoomTypeRepository, c *cache.Cache) *RoomTypeUseCase {
	return &RoomTypeUseCase{repo: repo, cache: c}
}

// Create crea un tipo. La tarifa base no puede ser negativa; activo por defecto.
func (uc *RoomTypeUseCase) Create(ctx context.Context, in dto.CreateRoomTypeRequest) (*dto.RoomTypeResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name requerido", domain.ErrInvalidInput)
	}
	if in.BasePrice.IsNegative() {
		return nil, fmt.Errorf("%w: base_price negativo", domain.ErrInvalidInput)
	}
	if in.MaxOccupancy < 1 {
		return nil, fmt.Errorf("%w: max_occupancy debe ser >= 1", domain.ErrInvalidInput)
	}
	maxAdults := in.MaxAdults
	if maxAdults == 0 || maxAdults > in.MaxOccupancy {
		maxAdults = in.MaxOccupancy
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	now := time.Now()
	rt := &entity.RoomType{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(in.Name),
		Description:  in.Description,
		BasePrice:    in.BasePrice,
		MaxOccupancy: in.MaxOccupancy,
		MaxAdults:    maxAdults,
		Amenities:    in.Amenities,
		IsActive:     active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, rt); err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, cache.Event{Entity: cache.EntityRoomType, Mutation: cache.MutationCreate, ID: rt.ID})
	return ToRoomTypeResponse(rt), nil
}

// GetByID obtiene un tipo; nil si no existe.
func (uc *RoomTypeUseCase) GetByID(ctx context.Context, id string) (*dto.RoomTypeResponse, error) {
	if err := domain.ValidateID("id", id); err != nil {
		return nil, err
	}
	out, _, err := cache.Remember(ctx, uc.cache, cache.RoomTypeDetailKey(id), func(ctx context.Context) (*dto.RoomTypeResponse, bool, error) {
		rt, err := uc.repo.GetByID(ctx, id)
		if err != nil || rt == nil {
			return nil, false, err
		}
		return ToRoomTypeResponse(rt), true, nil
	})
	return out, err
}

// Update actualización parcial.
func (uc *RoomTypeUseCase) Update(ctx context.Context, id string, in dto.UpdateRoomTypeRequest) (*dto.RoomTypeResponse, error) {
	if err := domain.ValidateID("id", id); err != nil {
		return nil, err
	}
	rt, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rt == nil {
		return nil, nil
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, fmt.Errorf("%w: name requerido", domain.ErrInvalidInput)
		}
		rt.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		rt.Description = *in.Description
	}
	if in.BasePrice != nil {
		if in.BasePrice.IsNegative() {
			return nil, fmt.Errorf("%w: base_price negativo", domain.ErrInvalidInput)
		}
		rt.BasePrice = *in.BasePrice
	}
	if in.MaxOccupancy != nil {
		rt.MaxOccupancy = *in.MaxOccupancy
	}
	if in.MaxAdults != nil {
		rt.MaxAdults = *in.MaxAdults
	}
	if rt.MaxAdults > rt.MaxOccupancy {
		return nil, fmt.Errorf("%w: max_adults mayor que max_occupancy", domain.ErrInvalidInput)
	}
	if in.Amenities != nil {
		rt.Amenities = in.Amenities
	}
	if in.IsActive != nil {
		rt.IsActive = *in.IsActive
	}
	rt.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, rt); err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, cache.Event{Entity: cache.EntityRoomType, Mutation: cache.MutationUpdate, ID: rt.ID})
	return ToRoomTypeResponse(rt), nil
}

// List lista los tipos; onlyActive filtra los dados de baja.
func (uc *RoomTypeUseCase) List(ctx context.Context, onlyActive bool) (*dto.RoomTypeListResponse, error) {
	out, _, err := cache.Remember(ctx, uc.cache, cache.RoomTypesListKey(onlyActive), func(ctx context.Context) (*dto.RoomTypeListResponse, bool, error) {
		list, err := uc.repo.List(ctx, onlyActive)
		if err != nil {
			return nil, false, err
		}
		items := make([]dto.RoomTypeResponse, 0, len(list))
		for _, rt := range list {
			items = append(items, *ToRoomTypeResponse(rt))
		}
		return &dto.RoomTypeListResponse{Items: items}, true, nil
	})
	return out, err
}

// Delete elimina el tipo. Con habitaciones asociadas la base responde ErrConflict.
func (uc *RoomTypeUseCase) Delete(ctx context.Context, id string) error {
	if err := domain.ValidateID("id", id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.cache.Invalidate(ctx, cache.Event{Entity: cache.EntityRoomType, Mutation: cache.MutationDelete, ID: id})
	return nil
}
