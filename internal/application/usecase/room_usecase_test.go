package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Hotel-api/internal/application/cache"
	"github.com/jhoicas/Hotel-api/internal/application/dto"
	"github.com/jhoicas/Hotel-api/internal/application/usecase"
	"github.com/jhoicas/Hotel-api/internal/domain"
	"github.com/jhoicas/Hotel-api/internal/domain/entity"
	"github.com/jhoicas/Hotel-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type roomStore struct {
	rooms         map[string]*entity.Room
	statusUpdates int
}

func newRoomStore(rooms ...*entity.Room) *roomStore {
	s := &roomStore{rooms: map[string]*entity.Room{}}
	for _, r := range rooms {
		s.rooms[r.ID] = r
	}
	return s
}

func (s *roomStore) Create(_ context.Context, r *entity.Room) error {
	s.rooms[r.ID] = r
	return nil
}

func (s *roomStore) GetByID(_ context.Context, id string) (*entity.Room, error) {
	r, ok := s.rooms[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (s *roomStore) GetByNumber(_ context.Context, number string) (*entity.Room, error) {
	for _, r := range s.rooms {
		if r.Number == number {
			return r, nil
		}
	}
	return nil, nil
}

func (s *roomStore) Update(_ context.Context, r *entity.Room) error {
	s.rooms[r.ID] = r
	return nil
}

func (s *roomStore) UpdateStatus(_ context.Context, r *entity.Room) error {
	s.statusUpdates++
	s.rooms[r.ID] = r
	return nil
}

func (s *roomStore) List(context.Context, repository.RoomFilter) ([]*entity.Room, error) {
	out := make([]*entity.Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		out = append(out, r)
	}
	return out, nil
}

func (s *roomStore) Delete(_ context.Context, id string) error {
	if _, ok := s.rooms[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.rooms, id)
	return nil
}

type typeStore struct {
	repository.RoomTypeRepository
	types map[string]*entity.RoomType
}

func (s typeStore) GetByID(_ context.Context, id string) (*entity.RoomType, error) {
	return s.types[id], nil
}

const (
	typeID    = "11111111-1111-4111-8111-111111111111"
	room101   = "0a5c2f4e-0101-4c3b-9a10-000000000101"
	room102   = "0a5c2f4e-0102-4c3b-9a10-000000000102"
	missingID = "99999999-9999-4999-8999-999999999999"
)

func newRoomUC(rooms ...*entity.Room) (*usecase.RoomUseCase, *roomStore) {
	store := newRoomStore(rooms...)
	types := typeStore{types: map[string]*entity.RoomType{typeID: {ID: typeID, Name: "Doble"}}}
	return usecase.NewRoomUseCase(store, types, cache.Disabled()), store
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestRoomCreate_DisponiblePorDefectoConLimpieza(t *testing.T) {
	uc, store := newRoomUC()

	out, err := uc.Create(context.Background(), dto.CreateRoomRequest{Number: " 101 ", Floor: 1, RoomTypeID: typeID})
	require.NoError(t, err)

	assert.Equal(t, "101", out.Number)
	assert.Equal(t, entity.RoomStatusAvailable, out.Status)
	assert.NotNil(t, out.LastCleanedAt)
	assert.Len(t, store.rooms, 1)
}

func TestRoomCreate_Rechazos(t *testing.T) {
	uc, _ := newRoomUC(&entity.Room{ID: room101, Number: "101", RoomTypeID: typeID, Status: entity.RoomStatusAvailable})
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateRoomRequest{Number: "  ", RoomTypeID: typeID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateRoomRequest{Number: "102", RoomTypeID: typeID, Status: "demolida"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateRoomRequest{Number: "102", RoomTypeID: "22222222-2222-2222-2222-222222222222"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el tipo debe existir")

	_, err = uc.Create(ctx, dto.CreateRoomRequest{Number: "101", RoomTypeID: typeID})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateStatus
// ──────────────────────────────────────────────────────────────────────────────

func TestRoomUpdateStatus_LimpiezaSoloAlVolverADisponible(t *testing.T) {
	before := time.Date(2000, 1, 1, 8, 0, 0, 0, time.UTC)
	uc, store := newRoomUC(&entity.Room{ID: room101, Number: "101", RoomTypeID: typeID, Status: entity.RoomStatusCleaning, LastCleanedAt: &before})
	ctx := context.Background()

	out, err := uc.UpdateStatus(ctx, room101, dto.UpdateRoomStatusRequest{Status: entity.RoomStatusMaintenance})
	require.NoError(t, err)
	assert.Equal(t, entity.RoomStatusMaintenance, out.Status)
	assert.True(t, out.LastCleanedAt.Equal(before), "un cambio a otro estado conserva la limpieza anterior")

	out, err = uc.UpdateStatus(ctx, room101, dto.UpdateRoomStatusRequest{Status: entity.RoomStatusAvailable})
	require.NoError(t, err)
	assert.True(t, out.LastCleanedAt.After(before))
	assert.Equal(t, 2, store.statusUpdates)
}

func TestRoomUpdateStatus_EstadoInvalidoNoLlegaAlRepo(t *testing.T) {
	uc, store := newRoomUC(&entity.Room{ID: room101, Number: "101", Status: entity.RoomStatusAvailable})

	_, err := uc.UpdateStatus(context.Background(), room101, dto.UpdateRoomStatusRequest{Status: "sucia"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, store.statusUpdates)
}

func TestRoomUpdateStatus_InexistenteDevuelveNil(t *testing.T) {
	uc, _ := newRoomUC()

	out, err := uc.UpdateStatus(context.Background(), missingID, dto.UpdateRoomStatusRequest{Status: entity.RoomStatusAvailable})
	require.NoError(t, err)
	assert.Nil(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestRoomUpdate_NumeroDuplicado(t *testing.T) {
	uc, _ := newRoomUC(
		&entity.Room{ID: room101, Number: "101", RoomTypeID: typeID, Status: entity.RoomStatusAvailable},
		&entity.Room{ID: room102, Number: "102", RoomTypeID: typeID, Status: entity.RoomStatusAvailable},
	)
	number := "102"
	_, err := uc.Update(context.Background(), room101, dto.UpdateRoomRequest{Number: &number})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	notes := "vista al jardín"
	out, err := uc.Update(context.Background(), room101, dto.UpdateRoomRequest{Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, "vista al jardín", out.Notes)
	assert.Equal(t, entity.RoomStatusAvailable, out.Status, "Update no toca el estado")
}

func TestRoomDelete(t *testing.T) {
	uc, store := newRoomUC(&entity.Room{ID: room101, Number: "101"})

	require.NoError(t, uc.Delete(context.Background(), room101))
	assert.Empty(t, store.rooms)
	assert.ErrorIs(t, uc.Delete(context.Background(), room101), domain.ErrNotFound)
}
