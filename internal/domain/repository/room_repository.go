package repository

import (
	"context"

	"github.com/jhoicas/Hotel-api/internal/domain/entity"
)

// RoomFilter filtros opcionales del listado de habitaciones (cero = sin filtro).
type RoomFilter struct {
	Status     string
	Floor      *int
	RoomTypeID string
}

// IsZero true si no hay ningún filtro aplicado.
func (f RoomFilter) IsZero() bool {
	return f.Status == "" && f.Floor == nil && f.RoomTypeID == ""
}

// RoomRepository define el puerto de persistencia para Room (DIP).
type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	GetByID(ctx context.Context, id string) (*entity.Room, error)
	GetByNumber(ctx context.Context, number string) (*entity.Room, error)
	Update(ctx context.Context, room *entity.Room) error
	UpdateStatus(ctx context.Context, room *entity.Room) error
	List(ctx context.Context, filter RoomFilter) ([]*entity.Room, error)
	Delete(ctx context.Context, id string) error
}
