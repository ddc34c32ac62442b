// Package document documentos de huéspedes: el contenido va al almacenamiento de objetos y
// los metadatos a la base. Ambos pasos se ordenan para que un registro exista si y solo si
// existe su objeto.
package document

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Hotel-api/internal/application/cache"
	"github.com/jhoicas/Hotel-api/internal/application/dto"
	"github.com/jhoicas/Hotel-api/internal/application/ports"
	"github.com/jhoicas/Hotel-api/internal/domain"
	"github.com/jhoicas/Hotel-api/internal/domain/entity"
	"github.com/jhoicas/Hotel-api/internal/domain/repository"
	"github.com/jhoicas/Hotel-api/pkg/logger"
)

// AllowedMimeTypes tipos aceptados y su extensión de almacenamiento.
var AllowedMimeTypes = map[string]string{
	"application/pdf": ".pdf",
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/webp":      ".webp",
}

// Config límites de subida y vigencia de las URLs firmadas.
type Config struct {
	MaxBytes     int64
	SignedURLTTL time.Duration
}

// Upload archivo recibido. Body se lee una sola vez.
type Upload struct {
	GuestID     string
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
	UploadedBy  string
}

// UseCase subida, listado, borrado y descarga firmada de documentos.
type UseCase struct {
	docs    repository.GuestDocumentRepository
	guests  repository.GuestRepository
	storage ports.ObjectStorage
	cache   *cache.Cache
	cfg     Config
	log     *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	docs repository.GuestDocumentRepository,
	guests repository.GuestRepository,
	storage ports.ObjectStorage,
	c *cache.Cache,
	cfg Config,
	log *logger.Logger,
) *UseCase {
	return &UseCase{docs: docs, guests: guests, storage: storage, cache: c, cfg: cfg, log: log}
}

// Upload sube el objeto y luego registra los metadatos. Si el registro falla se intenta
// una única vez borrar el objeto recién subido; si ese borrado también falla solo se
// registra en el log y el error devuelto sigue siendo el del registro.
func (uc *UseCase) Upload(ctx context.Context, in Upload) (*dto.GuestDocumentResponse, error) {
	ext, err := uc.validate(in)
	if err != nil {
		return nil, err
	}
	guest, err := uc.guests.GetByID(ctx, in.GuestID)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, domain.ErrNotFound
	}

	id := uuid.New().String()
	objectPath := path.Join("guests", in.GuestID, id+ext)
	if err := uc.storage.Upload(ctx, objectPath, in.Body, in.Size, in.ContentType); err != nil {
		return nil, fmt.Errorf("subir documento: %w", err)
	}

	doc := &entity.GuestDocument{
		ID:          id,
		GuestID:     in.GuestID,
		FileName:    cleanFileName(in.FileName),
		StoragePath: objectPath,
		MimeType:    in.ContentType,
		SizeBytes:   in.Size,
		UploadedBy:  in.UploadedBy,
		CreatedAt:   time.Now(),
	}
	if err := uc.docs.Create(ctx, doc); err != nil {
		if rmErr := uc.storage.Remove(context.WithoutCancel(ctx), objectPath); rmErr != nil {
			uc.log.Error().Err(rmErr).
				Str("path", objectPath).
				Str("guest_id", in.GuestID).
				Msg("documento huérfano: no se pudo revertir la subida")
		}
		return nil, fmt.Errorf("registrar documento: %w", err)
	}
	uc.cache.Invalidate(ctx, cache.Event{Entity: cache.EntityGuestDocument, Mutation: cache.MutationCreate, ID: doc.ID, ParentID: doc.GuestID})
	return ToResponse(doc), nil
}

// Delete borra primero el objeto y después el registro. Si el objeto no se puede borrar,
// el registro se conserva.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	if err := domain.ValidateID("id", id); err != nil {
		return err
	}
	doc, err := uc.docs.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if doc == nil {
		return domain.ErrNotFound
	}
	if err := uc.storage.Remove(ctx, doc.StoragePath); err != nil {
		return fmt.Errorf("borrar objeto: %w", err)
	}
	if err := uc.docs.Delete(ctx, doc.ID); err != nil {
		uc.log.Error().Err(err).
			Str("document_id", doc.ID).
			Str("path", doc.StoragePath).
			Msg("registro de documento sin objeto")
		return fmt.Errorf("borrar registro: %w", err)
	}
	uc.cache.Invalidate(ctx, cache.Event{Entity: cache.EntityGuestDocument, Mutation: cache.MutationDelete, ID: doc.ID, ParentID: doc.GuestID})
	return nil
}

// ListByGuest documentos de un huésped, más recientes primero.
func (uc *UseCase) ListByGuest(ctx context.Context, guestID string) (*dto.GuestDocumentListResponse, error) {
	if err := domain.ValidateID("guest_id", guestID); err != nil {
		return nil, err
	}
	out, _, err := cache.Remember(ctx, uc.cache, cache.GuestDocumentsKey(guestID), func(ctx context.Context) (*dto.GuestDocumentListResponse, bool, error) {
		list, err := uc.docs.ListByGuest(ctx, guestID)
		if err != nil {
			return nil, false, err
		}
		items := make([]dto.GuestDocumentResponse, 0, len(list))
		for _, d := range list {
			items = append(items, *ToResponse(d))
		}
		return &dto.GuestDocumentListResponse{Items: items}, true, nil
	})
	return out, err
}

// SignedURL URL temporal de descarga del documento.
func (uc *UseCase) SignedURL(ctx context.Context, id string) (*dto.SignedURLResponse, error) {
	if err := domain.ValidateID("id", id); err != nil {
		return nil, err
	}
	doc, err := uc.docs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	url, err := uc.storage.SignedURL(ctx, doc.StoragePath, uc.cfg.SignedURLTTL)
	if err != nil {
		return nil, fmt.Errorf("firmar URL: %w", err)
	}
	return &dto.SignedURLResponse{URL: url, ExpiresAt: time.Now().Add(uc.cfg.SignedURLTTL)}, nil
}

func (uc *UseCase) validate(in Upload) (string, error) {
	if err := domain.ValidateID("guest_id", in.GuestID); err != nil {
		return "", err
	}
	if in.Body == nil || in.Size <= 0 {
		return "", fmt.Errorf("%w: archivo vacío", domain.ErrInvalidInput)
	}
	if uc.cfg.MaxBytes > 0 && in.Size > uc.cfg.MaxBytes {
		return "", fmt.Errorf("%w: el archivo supera %d bytes", domain.ErrInvalidInput, uc.cfg.MaxBytes)
	}
	ext, ok := AllowedMimeTypes[in.ContentType]
	if !ok {
		return "", fmt.Errorf("%w: tipo de archivo %q no permitido", domain.ErrInvalidInput, in.ContentType)
	}
	return ext, nil
}

func cleanFileName(name string) string {
	name = path.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "documento"
	}
	return name
}

// ToResponse mapea los metadatos del documento.
func ToResponse(d *entity.GuestDocument) *dto.GuestDocumentResponse {
	if d == nil {
		return nil
	}
	return &dto.GuestDocumentResponse{
		ID:          d.ID,
		GuestID:     d.GuestID,
		FileName:    d.FileName,
		StoragePath: d.StoragePath,
		MimeType:    d.MimeType,
		SizeBytes:   d.SizeBytes,
		UploadedBy:  d.UploadedBy,
		CreatedAt:   d.CreatedAt,
	}
}
