// Package realtime suscripción a cambios de tablas publicados por la base de datos.
package realtime

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/Hotel-api/pkg/logger"
)

// Op tipo de cambio recibido.
type Op string

// Operaciones. OpResync no viene de la base: se emite al (re)suscribirse para que el
// consumidor vuelva a leer lo que pudo perderse mientras no había conexión.
const (
	OpInsert Op = "INSERT"
	OpUpdate Op = "UPDATE"
	OpDelete Op = "DELETE"
	OpResync Op = "RESYNC"
)

// ChangeEvent cambio de una fila. ParentID es el dueño de la fila cuando aplica (guest_id de un documento).
type ChangeEvent struct {
	Table    string `json:"table"`
	Op       Op     `json:"op"`
	ID       string `json:"id"`
	ParentID string `json:"parent_id,omitempty"`
}

// ErrInvalidEvent el payload recibido no tiene la forma esperada.
var ErrInvalidEvent = errors.New("evento de cambio inválido")

// Validate verifica la forma del evento antes de entregarlo.
func (e ChangeEvent) Validate() error {
	if e.Table == "" {
		return fmt.Errorf("%w: falta table", ErrInvalidEvent)
	}
	switch e.Op {
	case OpInsert, OpUpdate, OpDelete:
		if e.ID == "" {
			return fmt.Errorf("%w: falta id", ErrInvalidEvent)
		}
	case OpResync:
	default:
		return fmt.Errorf("%w: op %q", ErrInvalidEvent, e.Op)
	}
	return nil
}

// Feed fuente de cambios. Listen bloquea mientras la conexión está viva: llama ready una vez
// suscrito y deliver por cada evento válido. Devuelve al perder la conexión o cancelarse ctx.
type Feed interface {
	Listen(ctx context.Context, tables []string, ready func(), deliver func(ChangeEvent)) error
}

// Handler consumidor de eventos. Se invoca siempre desde la goroutine de la suscripción.
type Handler func(ctx context.Context, ev ChangeEvent)

// Subscription mantiene una escucha de larga duración con reconexión y backoff acotado.
type Subscription struct {
	feed    Feed
	tables  []string
	handler Handler
	log     *logger.Logger

	minBackoff time.Duration
	maxBackoff time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewSubscription construye la suscripción para las tablas dadas.
func NewSubscription(feed Feed, tables []string, handler Handler, log *logger.Logger) *Subscription {
	return &Subscription{
		feed:       feed,
		tables:     append([]string(nil), tables...),
		handler:    handler,
		log:        log,
		minBackoff: 500 * time.Millisecond,
		maxBackoff: 30 * time.Second,
	}
}

// WithBackoff ajusta los límites de espera entre reconexiones.
func (s *Subscription) WithBackoff(min, max time.Duration) *Subscription {
	s.minBackoff, s.maxBackoff = min, max
	return s
}

// Start lanza la goroutine de escucha. Llamarlo con la suscripción activa no hace nada.
func (s *Subscription) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.run(ctx, s.done)
}

// Stop cancela la escucha y espera a que la goroutine termine.
func (s *Subscription) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (s *Subscription) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	attempt := 0
	for {
		err := s.feed.Listen(ctx, s.tables, func() {
			attempt = 0
			s.log.Info().Strs("tables", s.tables).Msg("realtime: suscripción activa")
			for _, t := range s.tables {
				s.handler(ctx, ChangeEvent{Table: t, Op: OpResync})
			}
		}, func(ev ChangeEvent) {
			if s.wants(ev.Table) {
				s.handler(ctx, ev)
			}
		})
		if ctx.Err() != nil {
			return
		}
		wait := s.backoff(attempt)
		attempt++
		s.log.Warn().Err(err).Dur("retry_in", wait).Msg("realtime: conexión perdida")
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
	}
}

func (s *Subscription) wants(table string) bool {
	for _, t := range s.tables {
		if t == table {
			return true
		}
	}
	return false
}

func (s *Subscription) backoff(attempt int) time.Duration {
	d := s.minBackoff
	for i := 0; i < attempt && d < s.maxBackoff; i++ {
		d *= 2
	}
	if d > s.maxBackoff {
		d = s.maxBackoff
	}
	return d
}
