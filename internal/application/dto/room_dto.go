package dto

import "time"

// CreateRoomRequest entrada para crear una habitación.
type CreateRoomRequest struct {
	Number     string `json:"number" validate:"required,max=20"`
	Floor      int    `json:"floor" validate:"min=0"`
	RoomTypeID string `json:"room_type_id" validate:"required,uuid"`
	Status     string `json:"status" validate:"omitempty,oneof=available occupied reserved cleaning maintenance out_of_order"`
	Notes      string `json:"notes"`
}

// UpdateRoomRequest actualización parcial (el estado va por UpdateRoomStatusRequest).
type UpdateRoomRequest struct {
	Number     *string `json:"number" validate:"omitempty,max=20"`
	Floor      *int    `json:"floor" validate:"omitempty,min=0"`
	RoomTypeID *string `json:"room_type_id" validate:"omitempty,uuid"`
	Notes      *string `json:"notes"`
}

// UpdateRoomStatusRequest cambio de estado (ama de llaves / recepción).
type UpdateRoomStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available occupied reserved cleaning maintenance out_of_order"`
}

// RoomListRequest filtros del listado.
type RoomListRequest struct {
	Status     string `query:"status"`
	Floor      *int   `query:"floor"`
	RoomTypeID string `query:"room_type_id"`
}

// RoomResponse salida de una habitación.
type RoomResponse struct {
	ID            string            `json:"id"`
	Number        string            `json:"number"`
	Floor         int               `json:"floor"`
	RoomTypeID    string            `json:"room_type_id"`
	Status        string            `json:"status"`
	Notes         string            `json:"notes"`
	LastCleanedAt *time.Time        `json:"last_cleaned_at"`
	RoomType      *RoomTypeResponse `json:"room_type,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// RoomListResponse listado de habitaciones.
type RoomListResponse struct {
	Items []RoomResponse `json:"items"`
}
