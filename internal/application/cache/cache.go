package cache

import (
	"context"
	"time"

	"github.com/jhoicas/Hotel-api/internal/application/realtime"
	"github.com/jhoicas/Hotel-api/pkg/logger"
)

// Cache lecturas cacheadas + invalidación según la tabla. Los fallos del store se registran
// y nunca llegan al llamador: la caché es una optimización.
type Cache struct {
	store Store
	ttl   time.Duration
	table Table
	log   *logger.Logger
}

// New construye la caché con la tabla de invalidación dada.
func New(store Store, ttl time.Duration, table Table, log *logger.Logger) *Cache {
	return &Cache{store: store, ttl: ttl, table: table, log: log}
}

// Disabled caché sin almacenamiento (tests y despliegues sin Redis).
func Disabled() *Cache {
	return New(NopStore{}, 0, DefaultTable(), logger.Nop())
}

// Invalidate borra las claves y prefijos que la tabla asocia al evento.
func (c *Cache) Invalidate(ctx context.Context, e Event) {
	keys, prefixes := c.table.Plan(e)
	if len(keys) > 0 {
		if err := c.store.Delete(ctx, keys...); err != nil {
			c.log.Warn().Err(err).Str("entity", string(e.Entity)).Strs("keys", keys).Msg("cache: invalidar claves")
		}
	}
	for _, p := range prefixes {
		if err := c.store.DeletePrefix(ctx, p); err != nil {
			c.log.Warn().Err(err).Str("entity", string(e.Entity)).Str("prefix", p).Msg("cache: invalidar prefijo")
		}
	}
}

// Resync descarta todo lo que depende de la entidad (eventos posiblemente perdidos).
func (c *Cache) Resync(ctx context.Context, entity Entity) {
	policy, ok := c.table[entity]
	if !ok {
		return
	}
	for _, p := range policy.Resync {
		if err := c.store.DeletePrefix(ctx, p); err != nil {
			c.log.Warn().Err(err).Str("entity", string(entity)).Str("prefix", p).Msg("cache: resync")
		}
	}
}

// OnChange traduce un cambio de la base a invalidación. Tablas sin política se ignoran.
func (c *Cache) OnChange(ctx context.Context, ev realtime.ChangeEvent) {
	entity := Entity(ev.Table)
	if _, ok := c.table[entity]; !ok {
		return
	}
	if ev.Op == realtime.OpResync {
		c.Resync(ctx, entity)
		return
	}
	m := MutationUpdate
	switch ev.Op {
	case realtime.OpInsert:
		m = MutationCreate
	case realtime.OpDelete:
		m = MutationDelete
	}
	c.Invalidate(ctx, Event{Entity: entity, Mutation: m, ID: ev.ID, ParentID: ev.ParentID})
}

// Remember lectura a través de la caché. load devuelve found=false cuando no hay dato;
// en ese caso no se guarda nada.
func Remember[T any](ctx context.Context, c *Cache, key string, load func(context.Context) (T, bool, error)) (T, bool, error) {
	var cached T
	hit, err := c.store.Get(ctx, key, &cached)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache: leer")
	} else if hit {
		return cached, true, nil
	}
	v, found, err := load(ctx)
	if err != nil || !found {
		return v, found, err
	}
	if err := c.store.Set(ctx, key, v, c.ttl); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache: guardar")
	}
	return v, true, nil
}
