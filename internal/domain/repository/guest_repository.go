package repository

import (
	"context"

	"github.com/jhoicas/Hotel-api/internal/domain/entity"
)

// GuestRepository define el puerto de persistencia para Guest (DIP).
type GuestRepository interface {
	Create(ctx context.Context, guest *entity.Guest) error
	GetByID(ctx context.Context, id string) (*entity.Guest, error)
	Update(ctx context.Context, guest *entity.Guest) error
	// List búsqueda por nombre, email o número de documento (search vacío = todos).
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Guest, error)
	Delete(ctx context.Context, id string) error
}
