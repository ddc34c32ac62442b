package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de reserva.
const (
	ReservationStatusPending    = "pending"
	ReservationStatusConfirmed  = "confirmed"
	ReservationStatusCheckedIn  = "checked_in"
	ReservationStatusCheckedOut = "checked_out"
	ReservationStatusCancelled  = "cancelled"
)

// IsValidReservationStatus informa si s es un estado conocido.
func IsValidReservationStatus(s string) bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCheckedIn,
		ReservationStatusCheckedOut, ReservationStatusCancelled:
		return true
	}
	return false
}

// Reservation estadía de un huésped en una habitación. CheckOut es exclusivo: [CheckIn, CheckOut).
type Reservation struct {
	ID        string
	Code      string // referencia legible, ej. RSV-8F3A2C
	GuestID   string
	RoomID    string
	CheckIn   time.Time
	CheckOut  time.Time
	Adults    int
	Children  int
	Status    string
	Nights    int
	Subtotal  decimal.Decimal
	Tax       decimal.Decimal
	Total     decimal.Decimal
	Notes     string
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time

	Guest *Guest // cargados en lecturas de detalle
	Room  *Room
}

// IsActive las reservas canceladas o cerradas no bloquean la habitación.
func (r *Reservation) IsActive() bool {
	return r.Status == ReservationStatusPending || r.Status == ReservationStatusConfirmed ||
		r.Status == ReservationStatusCheckedIn
}
