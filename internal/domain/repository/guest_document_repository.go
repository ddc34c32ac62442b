package repository

import (
	"context"

	"github.com/jhoicas/Hotel-api/internal/domain/entity"
)

// GuestDocumentRepository metadatos de documentos; el contenido vive en el almacenamiento de objetos.
type GuestDocumentRepository interface {
	Create(ctx context.Context, doc *entity.GuestDocument) error
	GetByID(ctx context.Context, id string) (*entity.GuestDocument, error)
	ListByGuest(ctx context.Context, guestID string) ([]*entity.GuestDocument, error)
	Delete(ctx context.Context, id string) error
}
