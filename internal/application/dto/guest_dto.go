package dto

import "time"

// CreateGuestRequest entrada para registrar un huésped.
type CreateGuestRequest struct {
	FirstName      string     `json:"first_name" validate:"required,max=100"`
	LastName       string     `json:"last_name" validate:"max=100"`
	Email          string     `json:"email" validate:"omitempty,email"`
	Phone          string     `json:"phone" validate:"max=30"`
	DocumentType   string     `json:"document_type" validate:"omitempty,oneof=passport national_id driver_license other"`
	DocumentNumber string     `json:"document_number" validate:"max=50"`
	Nationality    string     `json:"nationality" validate:"max=60"`
	Address        string     `json:"address"`
	DateOfBirth    *time.Time `json:"date_of_birth"`
	Notes          string     `json:"notes"`
}

// UpdateGuestRequest actualización parcial.
type UpdateGuestRequest struct {
	FirstName      *string    `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName       *string    `json:"last_name" validate:"omitempty,max=100"`
	Email          *string    `json:"email" validate:"omitempty,email"`
	Phone          *string    `json:"phone" validate:"omitempty,max=30"`
	DocumentType   *string    `json:"document_type" validate:"omitempty,oneof=passport national_id driver_license other"`
	DocumentNumber *string    `json:"document_number" validate:"omitempty,max=50"`
	Nationality    *string    `json:"nationality" validate:"omitempty,max=60"`
	Address        *string    `json:"address"`
	DateOfBirth    *time.Time `json:"date_of_birth"`
	Notes          *string    `json:"notes"`
}

// GuestResponse salida de un huésped.
type GuestResponse struct {
	ID             string     `json:"id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	FullName       string     `json:"full_name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	DocumentType   string     `json:"document_type"`
	DocumentNumber string     `json:"document_number"`
	Nationality    string     `json:"nationality"`
	Address        string     `json:"address"`
	DateOfBirth    *time.Time `json:"date_of_birth"`
	Notes          string     `json:"notes"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// GuestListResponse lista paginada de huéspedes.
type GuestListResponse struct {
	Items []GuestResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
