// Package storage adaptador de almacenamiento de objetos compatible con S3 (MinIO).
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jhoicas/Hotel-api/internal/application/ports"
	"github.com/jhoicas/Hotel-api/pkg/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var _ ports.ObjectStorage = (*MinioStorage)(nil)

// ErrInvalidPath ruta de objeto con segmentos relativos.
var ErrInvalidPath = errors.New("ruta de objeto inválida")

// MinioStorage documentos en un bucket dedicado.
type MinioStorage struct {
	client *minio.Client
	bucket string
}

// NewMinioStorage crea el cliente y el bucket si no existe.
func NewMinioStorage(ctx context.Context, cfg config.StorageConfig) (*MinioStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("minio: cliente: %w", err)
	}
	exists, err := client.BucketExists(ctx, cfg.DocumentsBucket)
	if err != nil {
		return nil, fmt.Errorf("minio: bucket %s: %w", cfg.DocumentsBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.DocumentsBucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("minio: crear bucket %s: %w", cfg.DocumentsBucket, err)
		}
	}
	return &MinioStorage{client: client, bucket: cfg.DocumentsBucket}, nil
}

// Upload sube el objeto con su content-type.
func (s *MinioStorage) Upload(ctx context.Context, path string, r io.Reader, size int64, contentType string) error {
	if err := checkPath(path); err != nil {
		return err
	}
	_, err := s.client.PutObject(ctx, s.bucket, path, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("minio: put %s: %w", path, err)
	}
	return nil
}

// Remove borra el objeto. MinIO no informa error si no existe.
func (s *MinioStorage) Remove(ctx context.Context, path string) error {
	if err := checkPath(path); err != nil {
		return err
	}
	if err := s.client.RemoveObject(ctx, s.bucket, path, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("minio: remove %s: %w", path, err)
	}
	return nil
}

// SignedURL URL prefirmada de lectura.
func (s *MinioStorage) SignedURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	if err := checkPath(path); err != nil {
		return "", err
	}
	u, err := s.client.PresignedGetObject(ctx, s.bucket, path, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("minio: presign %s: %w", path, err)
	}
	return u.String(), nil
}

func checkPath(path string) error {
	if path == "" || strings.Contains(path, "..") || strings.HasPrefix(path, "/") {
		return fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	return nil
}
