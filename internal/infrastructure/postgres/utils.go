package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/Hotel-api/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return hasCode(err, "23505")
}

// isForeignKeyViolation fila referenciada por otra tabla (23503).
func isForeignKeyViolation(err error) bool {
	return hasCode(err, "23503")
}

// isExclusionViolation choque con el constraint de exclusión de reservas solapadas (23P01).
func isExclusionViolation(err error) bool {
	return hasCode(err, "23P01")
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return strings.Contains(err.Error(), code)
}

// mapWriteError traduce violaciones de constraints a errores de dominio.
func mapWriteError(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return domain.ErrDuplicate
	case isExclusionViolation(err):
		return domain.ErrRoomUnavailable
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: %s: registro referenciado", domain.ErrConflict, op)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// expectOne ErrNotFound si la sentencia no afectó filas.
func expectOne(tag pgconn.CommandTag) error {
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// schemaErr fila con forma inesperada.
func schemaErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrSchemaMismatch, fmt.Sprintf(format, args...))
}
