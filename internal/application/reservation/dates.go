package reservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Hotel-api/internal/domain"
)

// DateLayout formato de fechas de estadía (sin hora).
const DateLayout = "2006-01-02"

// ParseDate fecha obligatoria en formato YYYY-MM-DD (UTC).
func ParseDate(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: %s requerido", domain.ErrInvalidInput, field)
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s debe tener formato YYYY-MM-DD", domain.ErrInvalidInput, field)
	}
	return t, nil
}

// ParseOptionalDate como ParseDate pero vacío devuelve nil.
func ParseOptionalDate(field, s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := ParseDate(field, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ParseRange fechas de entrada y salida; la salida debe ser posterior a la entrada.
func ParseRange(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := ParseDate("check_in", checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	out, err := ParseDate("check_out", checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !out.After(in) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: check_out debe ser posterior a check_in", domain.ErrInvalidInput)
	}
	return in, out, nil
}
