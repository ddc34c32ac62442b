package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Hotel-api/internal/domain/entity"
)

// ReservationFilter filtros opcionales del listado.
type ReservationFilter struct {
	Status  string
	GuestID string
	RoomID  string
	From    *time.Time // reservas que terminan después de From
	To      *time.Time // reservas que empiezan antes de To
	Limit   int
	Offset  int
}

// AvailableRoom fila devuelta por el procedimiento find_available_rooms.
type AvailableRoom struct {
	RoomID       string
	RoomNumber   string
	Floor        int
	RoomTypeID   string
	RoomTypeName string
	BasePrice    decimal.Decimal
	MaxOccupancy int
}

// ReservationRepository persistencia de reservas y procedimientos de disponibilidad.
type ReservationRepository interface {
	Create(ctx context.Context, r *entity.Reservation) error
	GetByID(ctx context.Context, id string) (*entity.Reservation, error)
	Update(ctx context.Context, r *entity.Reservation) error
	UpdateStatus(ctx context.Context, id, status string, at time.Time) error
	List(ctx context.Context, filter ReservationFilter) ([]*entity.Reservation, error)

	// FindAvailableRooms habitaciones libres en [checkIn, checkOut) con capacidad >= minOccupancy,
	// opcionalmente de un tipo.
	FindAvailableRooms(ctx context.Context, checkIn, checkOut time.Time, minOccupancy int, roomTypeID *string) ([]AvailableRoom, error)
	// CheckRoomAvailability true si la habitación no tiene reservas activas que se solapen;
	// excludeReservationID permite re-validar una reserva existente contra sí misma.
	CheckRoomAvailability(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeReservationID *string) (bool, error)
}
