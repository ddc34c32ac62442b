package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Hotel-api/internal/domain/entity"
	"github.com/jhoicas/Hotel-api/internal/domain/repository"
)

var _ repository.GuestDocumentRepository = (*GuestDocumentRepo)(nil)

const guestDocumentColumns = `id, guest_id, file_name, storage_path, mime_type, size_bytes, uploaded_by, created_at`

// GuestDocumentRepo metadatos de documentos de huéspedes.
type GuestDocumentRepo struct {
	q Querier
}

// NewGuestDocumentRepository construye el adaptador.
func NewGuestDocumentRepository(q Querier) *GuestDocumentRepo {
	return &GuestDocumentRepo{q: q}
}

// Create persiste los metadatos de un documento ya subido.
func (r *GuestDocumentRepo) Create(ctx context.Context, d *entity.GuestDocument) error {
	query := `INSERT INTO guest_documents (` + guestDocumentColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.GuestID, d.FileName, d.StoragePath, d.MimeType, d.SizeBytes, d.UploadedBy, d.CreatedAt,
	)
	if err != nil {
		return mapWriteError("insert guest document", err)
	}
	return nil
}

// GetByID obtiene un documento por ID.
func (r *GuestDocumentRepo) GetByID(ctx context.Context, id string) (*entity.GuestDocument, error) {
	d, err := scanGuestDocument(r.q.QueryRow(ctx, `SELECT `+guestDocumentColumns+` FROM guest_documents WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get guest document: %w", err)
	}
	return d, nil
}

// ListByGuest documentos del huésped, más recientes primero.
func (r *GuestDocumentRepo) ListByGuest(ctx context.Context, guestID string) ([]*entity.GuestDocument, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+guestDocumentColumns+` FROM guest_documents WHERE guest_id = $1 ORDER BY created_at DESC`, guestID)
	if err != nil {
		return nil, fmt.Errorf("list guest documents: %w", err)
	}
	defer rows.Close()
	var list []*entity.GuestDocument
	for rows.Next() {
		d, err := scanGuestDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan guest document: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// Delete elimina el registro del documento.
func (r *GuestDocumentRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM guest_documents WHERE id = $1`, id)
	if err != nil {
		return mapWriteError("delete guest document", err)
	}
	return expectOne(tag)
}

func scanGuestDocument(row pgx.Row) (*entity.GuestDocument, error) {
	var d entity.GuestDocument
	if err := row.Scan(&d.ID, &d.GuestID, &d.FileName, &d.StoragePath, &d.MimeType, &d.SizeBytes, &d.UploadedBy, &d.CreatedAt); err != nil {
		return nil, err
	}
	if d.StoragePath == "" || d.SizeBytes < 0 {
		return nil, schemaErr("guest document %s: path o tamaño inválido", d.ID)
	}
	return &d, nil
}
