package entity

import "time"

// Guest ficha de huésped.
type Guest struct {
	ID             string
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	DocumentType   string // passport, national_id, driver_license
	DocumentNumber string
	Nationality    string
	Address        string
	DateOfBirth    *time.Time
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FullName nombre para mostrar.
func (g *Guest) FullName() string {
	if g.LastName == "" {
		return g.FirstName
	}
	return g.FirstName + " " + g.LastName
}
