package repository

import (
	"context"

	"github.com/jhoicas/Hotel-api/internal/domain/entity"
)

// RoomTypeRepository define el puerto de persistencia para RoomType (DIP).
type RoomTypeRepository interface {
	Create(ctx context.Context, rt *entity.RoomType) error
	GetByID(ctx context.Context, id string) (*entity.RoomType, error)
	Update(ctx context.Context, rt *entity.RoomType) error
	List(ctx context.Context, onlyActive bool) ([]*entity.RoomType, error)
	Delete(ctx context.Context, id string) error
}
