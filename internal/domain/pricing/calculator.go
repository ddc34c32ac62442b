// Package pricing cotiza una estadía a partir de dos fechas y la tarifa por noche.
// Es de presentación: no reserva la habitación ni verifica conflictos de fechas.
package pricing

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultTaxRate IVA 16%.
var DefaultTaxRate = decimal.RequireFromString("0.16")

var (
	cents = decimal.NewFromInt(100)
	half  = decimal.RequireFromString("0.5")
)

// Quote resultado de la cotización. Los montos van redondeados a 2 decimales.
type Quote struct {
	Nights   int             `json:"nights"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Calculator aplica una tasa de impuesto fija sobre el subtotal.
type Calculator struct {
	taxRate decimal.Decimal
}

// NewCalculator construye el cotizador con la tasa indicada (0.16 = 16%).
func NewCalculator(taxRate decimal.Decimal) *Calculator {
	return &Calculator{taxRate: taxRate}
}

// TaxRate tasa configurada.
func (c *Calculator) TaxRate() decimal.Decimal {
	return c.taxRate
}

// Calculate cotiza la estadía. Si falta alguna fecha o el precio devuelve la cotización
// en cero; nunca falla.
//
//	noches   = techo(|salida - entrada| en días)
//	subtotal = noches × precio
//	impuesto = subtotal × tasa
//	total    = subtotal + impuesto
func (c *Calculator) Calculate(checkIn, checkOut *time.Time, basePrice *decimal.Decimal) Quote {
	if checkIn == nil || checkOut == nil || basePrice == nil {
		return zeroQuote()
	}
	nights := Nights(*checkIn, *checkOut)
	subtotal := basePrice.Mul(decimal.NewFromInt(int64(nights)))
	tax := subtotal.Mul(c.taxRate)
	total := subtotal.Add(tax)
	return Quote{
		Nights:   nights,
		Subtotal: RoundHalfUp(subtotal),
		Tax:      RoundHalfUp(tax),
		Total:    RoundHalfUp(total),
	}
}

// Nights días completos entre ambas fechas, redondeando hacia arriba. El orden no importa.
func Nights(a, b time.Time) int {
	diff := b.Sub(a)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// RoundHalfUp redondea a centavos: piso(x·100 + 0.5) / 100.
func RoundHalfUp(d decimal.Decimal) decimal.Decimal {
	return d.Mul(cents).Add(half).Floor().Div(cents).Round(2)
}

func zeroQuote() Quote {
	return Quote{Subtotal: decimal.Zero, Tax: decimal.Zero, Total: decimal.Zero}
}
