package entity

import "time"

// Estados de cuenta.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User miembro del personal con acceso al sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt, nunca en claro
	FullName     string
	Role         string // admin, manager, receptionist, accounts, housekeeping
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
