package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteRequest cotización de una estadía. Se toma la tarifa del tipo de habitación
// (room_type_id) o de la habitación (room_id). Las fechas pueden faltar: la cotización sale en cero.
type QuoteRequest struct {
	CheckIn    string `json:"check_in"`  // YYYY-MM-DD
	CheckOut   string `json:"check_out"` // YYYY-MM-DD
	RoomTypeID string `json:"room_type_id"`
	RoomID     string `json:"room_id"`
}

// QuoteResponse desglose de la cotización.
type QuoteResponse struct {
	Nights    int             `json:"nights"`
	BasePrice decimal.Decimal `json:"base_price"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
}

// AvailabilityRequest búsqueda de habitaciones libres.
type AvailabilityRequest struct {
	CheckIn      string `query:"check_in"`
	CheckOut     string `query:"check_out"`
	MinOccupancy int    `query:"min_occupancy"`
	RoomTypeID   string `query:"room_type_id"`
}

// AvailableRoomResponse habitación libre con su tarifa.
type AvailableRoomResponse struct {
	RoomID       string          `json:"room_id"`
	RoomNumber   string          `json:"room_number"`
	Floor        int             `json:"floor"`
	RoomTypeID   string          `json:"room_type_id"`
	RoomTypeName string          `json:"room_type_name"`
	BasePrice    decimal.Decimal `json:"base_price"`
	MaxOccupancy int             `json:"max_occupancy"`
}

// AvailabilityResponse resultado de la búsqueda.
type AvailabilityResponse struct {
	CheckIn  string                  `json:"check_in"`
	CheckOut string                  `json:"check_out"`
	Items    []AvailableRoomResponse `json:"items"`
}

// RoomAvailabilityResponse disponibilidad de una habitación concreta.
type RoomAvailabilityResponse struct {
	RoomID    string `json:"room_id"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Available bool   `json:"available"`
}

// CreateReservationRequest alta de reserva.
type CreateReservationRequest struct {
	GuestID  string `json:"guest_id"`
	RoomID   string `json:"room_id"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Adults   int    `json:"adults"`
	Children int    `json:"children"`
	Notes    string `json:"notes"`
	Status   string `json:"status" validate:"omitempty,oneof=pending confirmed"`
}

// UpdateReservationRequest cambio de fechas, habitación u ocupación.
type UpdateReservationRequest struct {
	RoomID   *string `json:"room_id"`
	CheckIn  *string `json:"check_in"`
	CheckOut *string `json:"check_out"`
	Adults   *int    `json:"adults"`
	Children *int    `json:"children"`
	Notes    *string `json:"notes"`
}

// ReservationListRequest filtros del listado.
type ReservationListRequest struct {
	Status  string `query:"status"`
	GuestID string `query:"guest_id"`
	RoomID  string `query:"room_id"`
	From    string `query:"from"`
	To      string `query:"to"`
	Limit   int    `query:"limit"`
	Offset  int    `query:"offset"`
}

// ReservationResponse salida de una reserva.
type ReservationResponse struct {
	ID        string          `json:"id"`
	Code      string          `json:"code"`
	GuestID   string          `json:"guest_id"`
	GuestName string          `json:"guest_name,omitempty"`
	RoomID    string          `json:"room_id"`
	RoomNum   string          `json:"room_number,omitempty"`
	CheckIn   string          `json:"check_in"`
	CheckOut  string          `json:"check_out"`
	Adults    int             `json:"adults"`
	Children  int             `json:"children"`
	Status    string          `json:"status"`
	Nights    int             `json:"nights"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
	Notes     string          `json:"notes"`
	CreatedBy string          `json:"created_by"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ReservationListResponse lista paginada de reservas.
type ReservationListResponse struct {
	Items []ReservationResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
