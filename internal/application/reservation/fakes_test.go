package reservation_test

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/Hotel-api/internal/domain"
	"github.com/jhoicas/Hotel-api/internal/domain/entity"
	"github.com/jhoicas/Hotel-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria. calls cuenta cualquier acceso para verificar que las
// validaciones de forma ocurren antes de tocar la base.
// ──────────────────────────────────────────────────────────────────────────────

type store struct {
	mu           sync.Mutex
	calls        int
	rooms        map[string]*entity.Room
	types        map[string]*entity.RoomType
	guests       map[string]*entity.Guest
	reservations map[string]*entity.Reservation
	available    bool
	txRuns       int
}

func newStore() *store {
	return &store{
		rooms:        map[string]*entity.Room{},
		types:        map[string]*entity.RoomType{},
		guests:       map[string]*entity.Guest{},
		reservations: map[string]*entity.Reservation{},
		available:    true,
	}
}

func (s *store) touch() {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
}

type resRepo struct{ s *store }

func (r resRepo) Create(_ context.Context, res *entity.Reservation) error {
	r.s.touch()
	cp := *res
	r.s.reservations[res.ID] = &cp
	return nil
}

func (r resRepo) GetByID(_ context.Context, id string) (*entity.Reservation, error) {
	r.s.touch()
	res, ok := r.s.reservations[id]
	if !ok {
		return nil, nil
	}
	cp := *res
	return &cp, nil
}

func (r resRepo) Update(_ context.Context, res *entity.Reservation) error {
	r.s.touch()
	if _, ok := r.s.reservations[res.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *res
	r.s.reservations[res.ID] = &cp
	return nil
}

func (r resRepo) UpdateStatus(_ context.Context, id, status string, at time.Time) error {
	r.s.touch()
	res, ok := r.s.reservations[id]
	if !ok {
		return domain.ErrNotFound
	}
	res.Status, res.UpdatedAt = status, at
	return nil
}

func (r resRepo) List(_ context.Context, _ repository.ReservationFilter) ([]*entity.Reservation, error) {
	r.s.touch()
	out := make([]*entity.Reservation, 0, len(r.s.reservations))
	for _, res := range r.s.reservations {
		out = append(out, res)
	}
	return out, nil
}

func (r resRepo) FindAvailableRooms(_ context.Context, _, _ time.Time, minOcc int, typeID *string) ([]repository.AvailableRoom, error) {
	r.s.touch()
	var out []repository.AvailableRoom
	for _, room := range r.s.rooms {
		rt := r.s.types[room.RoomTypeID]
		if rt == nil || rt.MaxOccupancy < minOcc || (typeID != nil && *typeID != rt.ID) {
			continue
		}
		out = append(out, repository.AvailableRoom{
			RoomID: room.ID, RoomNumber: room.Number, RoomTypeID: rt.ID, RoomTypeName: rt.Name,
			BasePrice: rt.BasePrice, MaxOccupancy: rt.MaxOccupancy,
		})
	}
	return out, nil
}

func (r resRepo) CheckRoomAvailability(_ context.Context, _ string, _, _ time.Time, _ *string) (bool, error) {
	r.s.touch()
	return r.s.available, nil
}

type roomRepo struct{ s *store }

func (r roomRepo) Create(_ context.Context, room *entity.Room) error {
	r.s.touch()
	r.s.rooms[room.ID] = room
	return nil
}

func (r roomRepo) GetByID(_ context.Context, id string) (*entity.Room, error) {
	r.s.touch()
	room, ok := r.s.rooms[id]
	if !ok {
		return nil, nil
	}
	cp := *room
	return &cp, nil
}

func (r roomRepo) GetByNumber(_ context.Context, number string) (*entity.Room, error) {
	r.s.touch()
	for _, room := range r.s.rooms {
		if room.Number == number {
			return room, nil
		}
	}
	return nil, nil
}

func (r roomRepo) Update(_ context.Context, room *entity.Room) error {
	r.s.touch()
	r.s.rooms[room.ID] = room
	return nil
}

func (r roomRepo) UpdateStatus(_ context.Context, room *entity.Room) error {
	r.s.touch()
	cp := *room
	r.s.rooms[room.ID] = &cp
	return nil
}

func (r roomRepo) List(_ context.Context, _ repository.RoomFilter) ([]*entity.Room, error) {
	r.s.touch()
	return nil, nil
}

func (r roomRepo) Delete(_ context.Context, id string) error {
	r.s.touch()
	delete(r.s.rooms, id)
	return nil
}

type typeRepo struct{ s *store }

func (r typeRepo) Create(_ context.Context, rt *entity.RoomType) error {
	r.s.touch()
	r.s.types[rt.ID] = rt
	return nil
}

func (r typeRepo) GetByID(_ context.Context, id string) (*entity.RoomType, error) {
	r.s.touch()
	return r.s.types[id], nil
}

func (r typeRepo) Update(_ context.Context, rt *entity.RoomType) error {
	r.s.touch()
	r.s.types[rt.ID] = rt
	return nil
}

func (r typeRepo) List(_ context.Context, _ bool) ([]*entity.RoomType, error) {
	r.s.touch()
	return nil, nil
}

func (r typeRepo) Delete(_ context.Context, id string) error {
	r.s.touch()
	delete(r.s.types, id)
	return nil
}

type guestRepo struct{ s *store }

func (r guestRepo) Create(_ context.Context, g *entity.Guest) error {
	r.s.touch()
	r.s.guests[g.ID] = g
	return nil
}

func (r guestRepo) GetByID(_ context.Context, id string) (*entity.Guest, error) {
	r.s.touch()
	return r.s.guests[id], nil
}

func (r guestRepo) Update(_ context.Context, g *entity.Guest) error {
	r.s.touch()
	r.s.guests[g.ID] = g
	return nil
}

func (r guestRepo) List(_ context.Context, _ string, _, _ int) ([]*entity.Guest, error) {
	r.s.touch()
	return nil, nil
}

func (r guestRepo) Delete(_ context.Context, id string) error {
	r.s.touch()
	delete(r.s.guests, id)
	return nil
}

// txRunner ejecuta fn con los mismos repositorios en memoria.
type txRunner struct{ s *store }

func (t txRunner) Run(_ context.Context, fn func(repository.ReservationRepository, repository.RoomRepository) error) error {
	t.s.txRuns++
	return fn(resRepo{t.s}, roomRepo{t.s})
}
