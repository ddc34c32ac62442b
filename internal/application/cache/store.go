// Package cache caché de lecturas con una tabla explícita de invalidación por entidad.
package cache

import (
	"context"
	"time"
)

// Store puerto de almacenamiento clave/valor. Los valores se serializan en el adaptador.
type Store interface {
	// Get decodifica el valor en dst; false si la clave no existe.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// DeletePrefix borra todas las claves que empiezan con prefix.
	DeletePrefix(ctx context.Context, prefix string) error
}

// NopStore caché deshabilitada: nunca encuentra nada y no guarda nada.
type NopStore struct{}

var _ Store = NopStore{}

func (NopStore) Get(context.Context, string, any) (bool, error)       { return false, nil }
func (NopStore) Set(context.Context, string, any, time.Duration) error { return nil }
func (NopStore) Delete(context.Context, ...string) error               { return nil }
func (NopStore) DeletePrefix(context.Context, string) error            { return nil }
