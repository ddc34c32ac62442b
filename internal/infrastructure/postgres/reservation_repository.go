package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Hotel-api/internal/domain/entity"
	"github.com/jhoicas/Hotel-api/internal/domain/repository"
)

var _ repository.ReservationRepository = (*ReservationRepo)(nil)

const reservationSelect = `
	SELECT res.id, res.code, res.guest_id, res.room_id, res.check_in, res.check_out,
	       res.adults, res.children, res.status, res.nights, res.subtotal, res.tax, res.total,
	       res.notes, res.created_by, res.created_at, res.updated_at,
	       g.first_name, g.last_name, g.email, g.phone,
	       r.number, r.floor, r.room_type_id, r.status
	FROM reservations res
	JOIN guests g ON g.id = res.guest_id
	JOIN rooms  r ON r.id = res.room_id`

// ReservationRepo reservas y procedimientos de disponibilidad (usable con pool o tx).
type ReservationRepo struct {
	q Querier
}

// NewReservationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReservationRepository(q Querier) *ReservationRepo {
	return &ReservationRepo{q: q}
}

// Create persiste la reserva. Un solapamiento detectado por el constraint de exclusión
// devuelve ErrRoomUnavailable.
func (r *ReservationRepo) Create(ctx context.Context, res *entity.Reservation) error {
	query := `
		INSERT INTO reservations (id, code, guest_id, room_id, check_in, check_out, adults, children,
		                          status, nights, subtotal, tax, total, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(ctx, query,
		res.ID, res.Code, res.GuestID, res.RoomID, res.CheckIn, res.CheckOut, res.Adults, res.Children,
		res.Status, res.Nights, res.Subtotal, res.Tax, res.Total, res.Notes, res.CreatedBy,
		res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		return mapWriteError("insert reservation", err)
	}
	return nil
}

// GetByID obtiene la reserva con datos básicos de huésped y habitación.
func (r *ReservationRepo) GetByID(ctx context.Context, id string) (*entity.Reservation, error) {
	res, err := scanReservation(r.q.QueryRow(ctx, reservationSelect+` WHERE res.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	return res, nil
}

// Update persiste fechas, habitación, ocupación, montos y notas.
func (r *ReservationRepo) Update(ctx context.Context, res *entity.Reservation) error {
	query := `
		UPDATE reservations
		SET room_id = $2, check_in = $3, check_out = $4, adults = $5, children = $6,
		    nights = $7, subtotal = $8, tax = $9, total = $10, notes = $11, updated_at = $12
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		res.ID, res.RoomID, res.CheckIn, res.CheckOut, res.Adults, res.Children,
		res.Nights, res.Subtotal, res.Tax, res.Total, res.Notes, res.UpdatedAt,
	)
	if err != nil {
		return mapWriteError("update reservation", err)
	}
	return expectOne(tag)
}

// UpdateStatus cambia el estado de la reserva.
func (r *ReservationRepo) UpdateStatus(ctx context.Context, id, status string, at time.Time) error {
	tag, err := r.q.Exec(ctx, `UPDATE reservations SET status = $2, updated_at = $3 WHERE id = $1`, id, status, at)
	if err != nil {
		return mapWriteError("update reservation status", err)
	}
	return expectOne(tag)
}

// List lista reservas por fecha de entrada aplicando los filtros presentes.
func (r *ReservationRepo) List(ctx context.Context, f repository.ReservationFilter) ([]*entity.Reservation, error) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.Status != "" {
		add("res.status = $%d", f.Status)
	}
	if f.GuestID != "" {
		add("res.guest_id = $%d", f.GuestID)
	}
	if f.RoomID != "" {
		add("res.room_id = $%d", f.RoomID)
	}
	if f.From != nil {
		add("res.check_out > $%d", *f.From)
	}
	if f.To != nil {
		add("res.check_in < $%d", *f.To)
	}
	query := reservationSelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	args = append(args, limit, f.Offset)
	query += fmt.Sprintf(" ORDER BY res.check_in DESC, res.code LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		list = append(list, res)
	}
	return list, rows.Err()
}

// FindAvailableRooms invoca el procedimiento find_available_rooms.
func (r *ReservationRepo) FindAvailableRooms(
	ctx context.Context,
	checkIn, checkOut time.Time,
	minOccupancy int,
	roomTypeID *string,
) ([]repository.AvailableRoom, error) {
	const query = `
	SELECT room_id, room_number, floor, room_type_id, room_type_name, base_price, max_occupancy
	FROM find_available_rooms($1::date, $2::date, $3::int, $4::uuid)`

	rows, err := r.q.Query(ctx, query, checkIn, checkOut, minOccupancy, roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("find_available_rooms: %w", err)
	}
	defer rows.Close()

	var out []repository.AvailableRoom
	for rows.Next() {
		var a repository.AvailableRoom
		if err := rows.Scan(
			&a.RoomID, &a.RoomNumber, &a.Floor, &a.RoomTypeID, &a.RoomTypeName, &a.BasePrice, &a.MaxOccupancy,
		); err != nil {
			return nil, fmt.Errorf("find_available_rooms scan: %w", err)
		}
		if a.RoomID == "" || a.RoomNumber == "" {
			return nil, schemaErr("find_available_rooms: fila sin habitación")
		}
		if a.BasePrice.IsNegative() || a.MaxOccupancy < minOccupancy {
			return nil, schemaErr("find_available_rooms: habitación %s fuera de rango", a.RoomNumber)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// CheckRoomAvailability invoca el procedimiento check_room_availability.
func (r *ReservationRepo) CheckRoomAvailability(
	ctx context.Context,
	roomID string,
	checkIn, checkOut time.Time,
	excludeReservationID *string,
) (bool, error) {
	var available *bool
	err := r.q.QueryRow(ctx,
		`SELECT check_room_availability($1::uuid, $2::date, $3::date, $4::uuid)`,
		roomID, checkIn, checkOut, excludeReservationID,
	).Scan(&available)
	if err != nil {
		return false, fmt.Errorf("check_room_availability: %w", err)
	}
	if available == nil {
		return false, schemaErr("check_room_availability: resultado nulo")
	}
	return *available, nil
}

func scanReservation(row pgx.Row) (*entity.Reservation, error) {
	var (
		res   entity.Reservation
		guest entity.Guest
		room  entity.Room
	)
	if err := row.Scan(
		&res.ID, &res.Code, &res.GuestID, &res.RoomID, &res.CheckIn, &res.CheckOut,
		&res.Adults, &res.Children, &res.Status, &res.Nights, &res.Subtotal, &res.Tax, &res.Total,
		&res.Notes, &res.CreatedBy, &res.CreatedAt, &res.UpdatedAt,
		&guest.FirstName, &guest.LastName, &guest.Email, &guest.Phone,
		&room.Number, &room.Floor, &room.RoomTypeID, &room.Status,
	); err != nil {
		return nil, err
	}
	if !entity.IsValidReservationStatus(res.Status) {
		return nil, schemaErr("reservation %s: estado %q", res.ID, res.Status)
	}
	if !res.CheckOut.After(res.CheckIn) {
		return nil, schemaErr("reservation %s: check_out no posterior a check_in", res.ID)
	}
	guest.ID = res.GuestID
	room.ID = res.RoomID
	res.Guest = &guest
	res.Room = &room
	return &res, nil
}
