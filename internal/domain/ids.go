package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ValidateID exige un UUID en field. Vacío → "requerido"; otro texto → ErrInvalidInput.
func ValidateID(field, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: %s requerido", ErrInvalidInput, field)
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s no es un UUID válido", ErrInvalidInput, field)
	}
	return nil
}

// ValidateOptionalID como ValidateID, pero acepta el filtro vacío.
func ValidateOptionalID(field, id string) error {
	if id == "" {
		return nil
	}
	return ValidateID(field, id)
}
