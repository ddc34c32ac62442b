package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Hotel-api/internal/domain/entity"
	"github.com/jhoicas/Hotel-api/internal/domain/repository"
)

var _ repository.RoomTypeRepository = (*RoomTypeRepo)(nil)

const roomTypeColumns = `rt.id, rt.name, rt.description, rt.base_price, rt.max_occupancy, rt.max_adults,
	rt.amenities, rt.is_active, rt.created_at, rt.updated_at`

// RoomTypeRepo implementación del puerto RoomTypeRepository sobre PostgreSQL (usable con pool o tx).
type RoomTypeRepo struct {
	q Querier
}

// NewRoomTypeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRoomTypeRepository(q Querier) *RoomTypeRepo {
	return &RoomTypeRepo{q: q}
}

// Create persiste un nuevo tipo de habitación.
func (r *RoomTypeRepo) Create(ctx context.Context, rt *entity.RoomType) error {
	query := `
		INSERT INTO room_types (id, name, description, base_price, max_occupancy, max_adults, amenities, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		rt.ID, rt.Name, rt.Description, rt.BasePrice, rt.MaxOccupancy, rt.MaxAdults,
		amenities(rt.Amenities), rt.IsActive, rt.CreatedAt, rt.UpdatedAt,
	)
	if err != nil {
		return mapWriteError("insert room type", err)
	}
	return nil
}

// GetByID obtiene un tipo por ID.
func (r *RoomTypeRepo) GetByID(ctx context.Context, id string) (*entity.RoomType, error) {
	query := `SELECT ` + roomTypeColumns + ` FROM room_types rt WHERE rt.id = $1`
	rt, err := scanRoomType(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get room type: %w", err)
	}
	return rt, nil
}

// Update actualiza todos los campos editables.
func (r *RoomTypeRepo) Update(ctx context.Context, rt *entity.RoomType) error {
	query := `
		UPDATE room_types
		SET name = $2, description = $3, base_price = $4, max_occupancy = $5, max_adults = $6,
		    amenities = $7, is_active = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		rt.ID, rt.Name, rt.Description, rt.BasePrice, rt.MaxOccupancy, rt.MaxAdults,
		amenities(rt.Amenities), rt.IsActive, rt.UpdatedAt,
	)
	if err != nil {
		return mapWriteError("update room type", err)
	}
	return expectOne(tag)
}

// List lista los tipos ordenados por tarifa.
func (r *RoomTypeRepo) List(ctx context.Context, onlyActive bool) ([]*entity.RoomType, error) {
	query := `SELECT ` + roomTypeColumns + ` FROM room_types rt
		WHERE ($1 = false OR rt.is_active)
		ORDER BY rt.base_price, rt.name`
	rows, err := r.q.Query(ctx, query, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("list room types: %w", err)
	}
	defer rows.Close()
	var list []*entity.RoomType
	for rows.Next() {
		rt, err := scanRoomType(rows)
		if err != nil {
			return nil, fmt.Errorf("scan room type: %w", err)
		}
		list = append(list, rt)
	}
	return list, rows.Err()
}

// Delete elimina el tipo; ErrConflict si hay habitaciones que lo usan.
func (r *RoomTypeRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM room_types WHERE id = $1`, id)
	if err != nil {
		return mapWriteError("delete room type", err)
	}
	return expectOne(tag)
}

func scanRoomType(row pgx.Row) (*entity.RoomType, error) {
	var rt entity.RoomType
	if err := row.Scan(
		&rt.ID, &rt.Name, &rt.Description, &rt.BasePrice, &rt.MaxOccupancy, &rt.MaxAdults,
		&rt.Amenities, &rt.IsActive, &rt.CreatedAt, &rt.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := validateRoomType(&rt); err != nil {
		return nil, err
	}
	return &rt, nil
}

func validateRoomType(rt *entity.RoomType) error {
	if rt.BasePrice.IsNegative() {
		return schemaErr("room type %s: base_price negativo", rt.ID)
	}
	if rt.MaxOccupancy < 1 {
		return schemaErr("room type %s: max_occupancy %d", rt.ID, rt.MaxOccupancy)
	}
	return nil
}

func amenities(a []string) []string {
	if a == nil {
		return []string{}
	}
	return a
}
