package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Hotel-api/internal/application/realtime"
	"github.com/jhoicas/Hotel-api/pkg/logger"
)

var _ realtime.Feed = (*ChangeFeed)(nil)

// ChangeFeed escucha el canal NOTIFY que publican los triggers de la migración.
// Payload: {"table": "...", "op": "INSERT|UPDATE|DELETE", "id": "...", "parent_id": "..."}.
type ChangeFeed struct {
	pool    *pgxpool.Pool
	channel string
	log     *logger.Logger
}

// NewChangeFeed construye el feed sobre el canal indicado.
func NewChangeFeed(pool *pgxpool.Pool, channel string, log *logger.Logger) *ChangeFeed {
	return &ChangeFeed{pool: pool, channel: channel, log: log}
}

// Listen reserva una conexión del pool, ejecuta LISTEN y entrega cada notificación válida.
// Devuelve cuando se cancela ctx o se pierde la conexión.
func (f *ChangeFeed) Listen(ctx context.Context, tables []string, ready func(), deliver func(realtime.ChangeEvent)) error {
	pooled, err := f.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("listen: acquire: %w", err)
	}
	// La conexión queda en LISTEN: se saca del pool y se cierra al terminar.
	conn := pooled.Hijack()
	defer func() { _ = conn.Close(context.Background()) }()

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{f.channel}.Sanitize()); err != nil {
		return fmt.Errorf("listen %s: %w", f.channel, err)
	}
	ready()

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("wait notification: %w", err)
		}
		ev, err := DecodeChange(n.Payload)
		if err != nil {
			f.log.Warn().Err(err).Str("payload", n.Payload).Msg("realtime: notificación descartada")
			continue
		}
		deliver(ev)
	}
}

// DecodeChange valida y decodifica el payload de una notificación.
func DecodeChange(payload string) (realtime.ChangeEvent, error) {
	var ev realtime.ChangeEvent
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		return realtime.ChangeEvent{}, fmt.Errorf("%w: %v", realtime.ErrInvalidEvent, err)
	}
	if ev.Op == realtime.OpResync {
		return realtime.ChangeEvent{}, fmt.Errorf("%w: op reservado", realtime.ErrInvalidEvent)
	}
	if err := ev.Validate(); err != nil {
		return realtime.ChangeEvent{}, err
	}
	return ev, nil
}
