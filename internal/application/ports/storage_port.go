package ports

import (
	"context"
	"io"
	"time"
)

// ObjectStorage almacenamiento de objetos para documentos de huéspedes (S3 / MinIO).
// Las rutas son relativas al bucket configurado.
type ObjectStorage interface {
	// Upload sube el contenido completo de r bajo path.
	Upload(ctx context.Context, path string, r io.Reader, size int64, contentType string) error
	// Remove borra el objeto; borrar un objeto inexistente no es error.
	Remove(ctx context.Context, path string) error
	// SignedURL URL temporal de lectura válida durante expiry.
	SignedURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}
