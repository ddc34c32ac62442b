package cache

import (
	"fmt"
	"strings"
)

// Prefijos de clave. Cada clave cacheada empieza por uno de ellos.
const (
	PrefixRoomsList        = "rooms:list"
	PrefixRoomsDetail      = "rooms:detail:"
	PrefixRoomTypesList    = "room_types:list:"
	PrefixRoomTypesDetail  = "room_types:detail:"
	PrefixGuestsDetail     = "guests:detail:"
	PrefixGuestDocuments   = "guest_documents:"
	PrefixReservationsItem = "reservations:detail:"
	KeyDashboardSummary    = "dashboard:summary"
)

// RoomsListKey clave del listado de habitaciones para una combinación de filtros.
func RoomsListKey(status string, floor *int, roomTypeID string) string {
	f := "*"
	if floor != nil {
		f = fmt.Sprint(*floor)
	}
	return strings.Join([]string{PrefixRoomsList, orAll(status), f, orAll(roomTypeID)}, ":")
}

// RoomDetailKey clave del detalle de una habitación.
func RoomDetailKey(id string) string { return PrefixRoomsDetail + id }

// RoomTypesListKey clave del listado de tipos (todos o solo activos).
func RoomTypesListKey(onlyActive bool) string {
	if onlyActive {
		return PrefixRoomTypesList + "active"
	}
	return PrefixRoomTypesList + "all"
}

// RoomTypeDetailKey clave del detalle de un tipo de habitación.
func RoomTypeDetailKey(id string) string { return PrefixRoomTypesDetail + id }

// GuestDetailKey clave del detalle de un huésped.
func GuestDetailKey(id string) string { return PrefixGuestsDetail + id }

// GuestDocumentsKey clave de la lista de documentos de un huésped.
func GuestDocumentsKey(guestID string) string { return PrefixGuestDocuments + guestID }

// ReservationDetailKey clave del detalle de una reserva.
func ReservationDetailKey(id string) string { return PrefixReservationsItem + id }

func orAll(s string) string {
	if s == "" {
		return "*"
	}
	return s
}
