package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Hotel-api/internal/domain/entity"
	"github.com/jhoicas/Hotel-api/internal/domain/repository"
)

var _ repository.RoomRepository = (*RoomRepo)(nil)

const roomSelect = `
	SELECT r.id, r.number, r.floor, r.room_type_id, r.status, r.notes, r.last_cleaned_at,
	       r.created_at, r.updated_at, ` + roomTypeColumns + `
	FROM rooms r
	JOIN room_types rt ON rt.id = r.room_type_id`

// RoomRepo implementación del puerto RoomRepository sobre PostgreSQL (usable con pool o tx).
type RoomRepo struct {
	q Querier
}

// NewRoomRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRoomRepository(q Querier) *RoomRepo {
	return &RoomRepo{q: q}
}

// Create persiste una nueva habitación.
func (r *RoomRepo) Create(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (id, number, floor, room_type_id, status, notes, last_cleaned_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		room.ID, room.Number, room.Floor, room.RoomTypeID, room.Status, room.Notes,
		room.LastCleanedAt, room.CreatedAt, room.UpdatedAt,
	)
	if err != nil {
		return mapWriteError("insert room", err)
	}
	return nil
}

// GetByID obtiene una habitación con su tipo.
func (r *RoomRepo) GetByID(ctx context.Context, id string) (*entity.Room, error) {
	return r.getOne(ctx, roomSelect+` WHERE r.id = $1`, id)
}

// GetByNumber obtiene una habitación por número.
func (r *RoomRepo) GetByNumber(ctx context.Context, number string) (*entity.Room, error) {
	return r.getOne(ctx, roomSelect+` WHERE r.number = $1`, number)
}

func (r *RoomRepo) getOne(ctx context.Context, query string, arg any) (*entity.Room, error) {
	room, err := scanRoom(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get room: %w", err)
	}
	return room, nil
}

// Update actualiza número, piso, tipo y notas.
func (r *RoomRepo) Update(ctx context.Context, room *entity.Room) error {
	query := `
		UPDATE rooms SET number = $2, floor = $3, room_type_id = $4, notes = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, room.ID, room.Number, room.Floor, room.RoomTypeID, room.Notes, room.UpdatedAt)
	if err != nil {
		return mapWriteError("update room", err)
	}
	return expectOne(tag)
}

// UpdateStatus persiste estado y hora de limpieza.
func (r *RoomRepo) UpdateStatus(ctx context.Context, room *entity.Room) error {
	query := `UPDATE rooms SET status = $2, last_cleaned_at = $3, updated_at = $4 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, room.ID, room.Status, room.LastCleanedAt, room.UpdatedAt)
	if err != nil {
		return mapWriteError("update room status", err)
	}
	return expectOne(tag)
}

// List lista habitaciones ordenadas por número aplicando los filtros presentes.
func (r *RoomRepo) List(ctx context.Context, filter repository.RoomFilter) ([]*entity.Room, error) {
	var (
		where []string
		args  []any
	)
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("r.status = $%d", len(args)))
	}
	if filter.Floor != nil {
		args = append(args, *filter.Floor)
		where = append(where, fmt.Sprintf("r.floor = $%d", len(args)))
	}
	if filter.RoomTypeID != "" {
		args = append(args, filter.RoomTypeID)
		where = append(where, fmt.Sprintf("r.room_type_id = $%d", len(args)))
	}
	query := roomSelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY r.floor, r.number"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()
	var list []*entity.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		list = append(list, room)
	}
	return list, rows.Err()
}

// Delete elimina la habitación; ErrConflict si tiene reservas.
func (r *RoomRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return mapWriteError("delete room", err)
	}
	return expectOne(tag)
}

func scanRoom(row pgx.Row) (*entity.Room, error) {
	var (
		room entity.Room
		rt   entity.RoomType
	)
	if err := row.Scan(
		&room.ID, &room.Number, &room.Floor, &room.RoomTypeID, &room.Status, &room.Notes, &room.LastCleanedAt,
		&room.CreatedAt, &room.UpdatedAt,
		&rt.ID, &rt.Name, &rt.Description, &rt.BasePrice, &rt.MaxOccupancy, &rt.MaxAdults,
		&rt.Amenities, &rt.IsActive, &rt.CreatedAt, &rt.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if !entity.IsValidRoomStatus(room.Status) {
		return nil, schemaErr("room %s: estado %q", room.ID, room.Status)
	}
	if err := validateRoomType(&rt); err != nil {
		return nil, err
	}
	room.RoomType = &rt
	return &room, nil
}
