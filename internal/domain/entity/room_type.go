package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoomType categoría de habitación con su tarifa base por noche.
type RoomType struct {
	ID           string
	Name         string
	Description  string
	BasePrice    decimal.Decimal // tarifa por noche, sin impuestos
	MaxOccupancy int             // huéspedes totales (adultos + niños)
	MaxAdults    int
	Amenities    []string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Fits informa si la ocupación pedida cabe en el tipo de habitación.
func (t *RoomType) Fits(adults, children int) bool {
	if t.MaxAdults > 0 && adults > t.MaxAdults {
		return false
	}
	return adults+children <= t.MaxOccupancy
}
