package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRoomTypeRequest entrada para crear un tipo de habitación.
type CreateRoomTypeRequest struct {
	Name         string          `json:"name" validate:"required,max=100"`
	Description  string          `json:"description"`
	BasePrice    decimal.Decimal `json:"base_price"`
	MaxOccupancy int             `json:"max_occupancy" validate:"required,min=1,max=20"`
	MaxAdults    int             `json:"max_adults" validate:"omitempty,min=1,max=20"`
	Amenities    []string        `json:"amenities"`
	IsActive     *bool           `json:"is_active"`
}

// UpdateRoomTypeRequest actualización parcial.
type UpdateRoomTypeRequest struct {
	Name         *string          `json:"name" validate:"omitempty,max=100"`
	Description  *string          `json:"description"`
	BasePrice    *decimal.Decimal `json:"base_price"`
	MaxOccupancy *int             `json:"max_occupancy" validate:"omitempty,min=1,max=20"`
	MaxAdults    *int             `json:"max_adults" validate:"omitempty,min=1,max=20"`
	Amenities    []string         `json:"amenities"`
	IsActive     *bool            `json:"is_active"`
}

// RoomTypeResponse salida de un tipo de habitación.
type RoomTypeResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	BasePrice    decimal.Decimal `json:"base_price"`
	MaxOccupancy int             `json:"max_occupancy"`
	MaxAdults    int             `json:"max_adults"`
	Amenities    []string        `json:"amenities"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// RoomTypeListResponse listado de tipos.
type RoomTypeListResponse struct {
	Items []RoomTypeResponse `json:"items"`
}
