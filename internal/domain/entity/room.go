package entity

import "time"

// Estados de habitación.
const (
	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusReserved    = "reserved"
	RoomStatusCleaning    = "cleaning"
	RoomStatusMaintenance = "maintenance"
	RoomStatusOutOfOrder  = "out_of_order"
)

// RoomStatuses lista cerrada de estados válidos.
var RoomStatuses = []string{
	RoomStatusAvailable, RoomStatusOccupied, RoomStatusReserved,
	RoomStatusCleaning, RoomStatusMaintenance, RoomStatusOutOfOrder,
}

// IsValidRoomStatus informa si s es un estado conocido.
func IsValidRoomStatus(s string) bool {
	for _, st := range RoomStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// Room habitación física del hotel.
// LastCleanedAt solo se actualiza al pasar a "available".
type Room struct {
	ID            string
	Number        string // único
	Floor         int
	RoomTypeID    string
	Status        string
	Notes         string
	LastCleanedAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	RoomType *RoomType // cargado en lecturas con JOIN; nil si no se pidió
}

// ApplyStatus cambia el estado y marca la limpieza si entra a "available" desde otro estado.
func (r *Room) ApplyStatus(status string, now time.Time) {
	if status == RoomStatusAvailable && r.Status != RoomStatusAvailable {
		r.LastCleanedAt = &now
	}
	r.Status = status
	r.UpdatedAt = now
}
