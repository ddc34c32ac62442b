package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Hotel-api/internal/domain/entity"
	"github.com/jhoicas/Hotel-api/internal/domain/repository"
)

var _ repository.GuestRepository = (*GuestRepo)(nil)

const guestColumns = `id, first_name, last_name, email, phone, document_type, document_number,
	nationality, address, date_of_birth, notes, created_at, updated_at`

// GuestRepo implementación del puerto GuestRepository sobre PostgreSQL.
type GuestRepo struct {
	q Querier
}

// NewGuestRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGuestRepository(q Querier) *GuestRepo {
	return &GuestRepo{q: q}
}

// Create persiste un nuevo huésped.
func (r *GuestRepo) Create(ctx context.Context, g *entity.Guest) error {
	query := `
		INSERT INTO guests (` + guestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		g.ID, g.FirstName, g.LastName, g.Email, g.Phone, g.DocumentType, g.DocumentNumber,
		g.Nationality, g.Address, g.DateOfBirth, g.Notes, g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		return mapWriteError("insert guest", err)
	}
	return nil
}

// GetByID obtiene un huésped por ID.
func (r *GuestRepo) GetByID(ctx context.Context, id string) (*entity.Guest, error) {
	g, err := scanGuest(r.q.QueryRow(ctx, `SELECT `+guestColumns+` FROM guests WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get guest: %w", err)
	}
	return g, nil
}

// Update actualiza la ficha completa.
func (r *GuestRepo) Update(ctx context.Context, g *entity.Guest) error {
	query := `
		UPDATE guests
		SET first_name = $2, last_name = $3, email = $4, phone = $5, document_type = $6,
		    document_number = $7, nationality = $8, address = $9, date_of_birth = $10,
		    notes = $11, updated_at = $12
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		g.ID, g.FirstName, g.LastName, g.Email, g.Phone, g.DocumentType,
		g.DocumentNumber, g.Nationality, g.Address, g.DateOfBirth, g.Notes, g.UpdatedAt,
	)
	if err != nil {
		return mapWriteError("update guest", err)
	}
	return expectOne(tag)
}

// List busca por nombre, apellido, email o documento (ILIKE), más recientes primero.
func (r *GuestRepo) List(ctx context.Context, search string, limit, offset int) ([]*entity.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests
		WHERE $1 = ''
		   OR first_name ILIKE '%' || $1 || '%'
		   OR last_name ILIKE '%' || $1 || '%'
		   OR email ILIKE '%' || $1 || '%'
		   OR document_number ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}
	defer rows.Close()
	var list []*entity.Guest
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan guest: %w", err)
		}
		list = append(list, g)
	}
	return list, rows.Err()
}

// Delete elimina el huésped; ErrConflict si tiene reservas o documentos.
func (r *GuestRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM guests WHERE id = $1`, id)
	if err != nil {
		return mapWriteError("delete guest", err)
	}
	return expectOne(tag)
}

func scanGuest(row pgx.Row) (*entity.Guest, error) {
	var g entity.Guest
	err := row.Scan(
		&g.ID, &g.FirstName, &g.LastName, &g.Email, &g.Phone, &g.DocumentType, &g.DocumentNumber,
		&g.Nationality, &g.Address, &g.DateOfBirth, &g.Notes, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}
