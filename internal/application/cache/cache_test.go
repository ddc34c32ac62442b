package cache_test

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Hotel-api/internal/application/cache"
	"github.com/jhoicas/Hotel-api/internal/application/realtime"
	"github.com/jhoicas/Hotel-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// memStore: Store en memoria que serializa a JSON igual que Redis
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu       sync.Mutex
	data     map[string][]byte
	failGet  bool
	failDel  bool
	deleted  []string
	prefixes []string
}

func newMemStore() *memStore { return &memStore{data: map[string][]byte{}} }

func (m *memStore) Get(_ context.Context, key string, dst any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet {
		return false, errors.New("store caído")
	}
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (m *memStore) Set(_ context.Context, key string, v any, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

func (m *memStore) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, keys...)
	if m.failDel {
		return errors.New("store caído")
	}
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *memStore) DeletePrefix(_ context.Context, prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefixes = append(m.prefixes, prefix)
	if m.failDel {
		return errors.New("store caído")
	}
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			delete(m.data, k)
		}
	}
	return nil
}

func (m *memStore) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

type item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newCache(store cache.Store) *cache.Cache {
	return cache.New(store, time.Minute, cache.DefaultTable(), logger.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// Remember
// ──────────────────────────────────────────────────────────────────────────────

func TestRemember_SegundaLecturaNoConsultaOrigen(t *testing.T) {
	store := newMemStore()
	c := newCache(store)
	calls := 0
	load := func(context.Context) (*item, bool, error) {
		calls++
		return &item{ID: "r1", Name: "101"}, true, nil
	}

	first, found, err := cache.Remember(context.Background(), c, cache.RoomDetailKey("r1"), load)
	require.NoError(t, err)
	require.True(t, found)
	second, _, err := cache.Remember(context.Background(), c, cache.RoomDetailKey("r1"), load)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
}

func TestRemember_NoEncontradoNoSeGuarda(t *testing.T) {
	store := newMemStore()
	c := newCache(store)

	out, found, err := cache.Remember(context.Background(), c, cache.GuestDetailKey("g1"),
		func(context.Context) (*item, bool, error) { return nil, false, nil })

	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, out)
	assert.False(t, store.has(cache.GuestDetailKey("g1")))
}

func TestRemember_ErrorDeOrigenSePropaga(t *testing.T) {
	boom := errors.New("db caída")
	_, _, err := cache.Remember(context.Background(), newCache(newMemStore()), "k",
		func(context.Context) (*item, bool, error) { return nil, false, boom })
	assert.ErrorIs(t, err, boom)
}

func TestRemember_StoreCaidoLeeDelOrigen(t *testing.T) {
	store := newMemStore()
	store.failGet = true
	c := newCache(store)

	out, found, err := cache.Remember(context.Background(), c, "k",
		func(context.Context) (*item, bool, error) { return &item{ID: "x"}, true, nil })

	require.NoError(t, err, "los fallos de la caché no llegan al llamador")
	assert.True(t, found)
	assert.Equal(t, "x", out.ID)
}

func TestDisabled_SiempreLeeDelOrigen(t *testing.T) {
	c := cache.Disabled()
	calls := 0
	for i := 0; i < 3; i++ {
		_, _, err := cache.Remember(context.Background(), c, "k", func(context.Context) (int, bool, error) {
			calls++
			return calls, true, nil
		})
		require.NoError(t, err)
	}
	assert.Equal(t, 3, calls)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de invalidación
// ──────────────────────────────────────────────────────────────────────────────

func TestPlan_AltaDeHabitacionInvalidaListadosYDashboard(t *testing.T) {
	keys, prefixes := cache.DefaultTable().Plan(cache.Event{Entity: cache.EntityRoom, Mutation: cache.MutationCreate, ID: "r1"})

	assert.Equal(t, []string{cache.KeyDashboardSummary}, keys, "el alta no tiene detalle previo")
	assert.Equal(t, []string{cache.PrefixRoomsList}, prefixes)
}

func TestPlan_CambioDeEstadoInvalidaDetalle(t *testing.T) {
	keys, _ := cache.DefaultTable().Plan(cache.Event{Entity: cache.EntityRoom, Mutation: cache.MutationStatus, ID: "r1"})
	assert.ElementsMatch(t, []string{cache.KeyDashboardSummary, cache.RoomDetailKey("r1")}, keys)
}

func TestPlan_DocumentoInvalidaListaDelHuesped(t *testing.T) {
	keys, prefixes := cache.DefaultTable().Plan(cache.Event{
		Entity: cache.EntityGuestDocument, Mutation: cache.MutationCreate, ID: "d1", ParentID: "g1",
	})
	assert.Equal(t, []string{cache.GuestDocumentsKey("g1")}, keys)
	assert.Empty(t, prefixes)
}

func TestPlan_TipoDeHabitacionArrastraHabitaciones(t *testing.T) {
	keys, prefixes := cache.DefaultTable().Plan(cache.Event{Entity: cache.EntityRoomType, Mutation: cache.MutationUpdate, ID: "t1"})
	assert.Equal(t, []string{cache.RoomTypeDetailKey("t1")}, keys)
	assert.ElementsMatch(t, []string{cache.PrefixRoomTypesList, cache.PrefixRoomsList, cache.PrefixRoomsDetail}, prefixes)
}

func TestPlan_EntidadDesconocida(t *testing.T) {
	keys, prefixes := cache.DefaultTable().Plan(cache.Event{Entity: "payments", Mutation: cache.MutationCreate})
	assert.Nil(t, keys)
	assert.Nil(t, prefixes)
}

func TestTables_Ordenadas(t *testing.T) {
	tables := cache.DefaultTable().Tables()
	assert.True(t, sort.StringsAreSorted(tables))
	assert.Equal(t, []string{"guest_documents", "guests", "reservations", "room_types", "rooms"}, tables)
}

func TestKeys_ListadoDeHabitaciones(t *testing.T) {
	floor := 3
	assert.Equal(t, "rooms:list:*:*:*", cache.RoomsListKey("", nil, ""))
	assert.Equal(t, "rooms:list:available:3:t1", cache.RoomsListKey("available", &floor, "t1"))
	assert.Equal(t, "room_types:list:active", cache.RoomTypesListKey(true))
}

// ──────────────────────────────────────────────────────────────────────────────
// Invalidate / OnChange
// ──────────────────────────────────────────────────────────────────────────────

func TestInvalidate_BorraLoCacheado(t *testing.T) {
	store := newMemStore()
	c := newCache(store)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, cache.RoomDetailKey("r1"), item{ID: "r1"}, 0))
	require.NoError(t, store.Set(ctx, cache.RoomsListKey("", nil, ""), []item{}, 0))
	require.NoError(t, store.Set(ctx, cache.RoomDetailKey("r2"), item{ID: "r2"}, 0))

	c.Invalidate(ctx, cache.Event{Entity: cache.EntityRoom, Mutation: cache.MutationUpdate, ID: "r1"})

	assert.False(t, store.has(cache.RoomDetailKey("r1")))
	assert.False(t, store.has(cache.RoomsListKey("", nil, "")))
	assert.True(t, store.has(cache.RoomDetailKey("r2")), "otra habitación no se toca")
}

func TestInvalidate_StoreCaidoNoEntraEnPanico(t *testing.T) {
	store := newMemStore()
	store.failDel = true
	c := newCache(store)

	assert.NotPanics(t, func() {
		c.Invalidate(context.Background(), cache.Event{Entity: cache.EntityReservation, Mutation: cache.MutationDelete, ID: "x"})
	})
	assert.Contains(t, store.deleted, cache.ReservationDetailKey("x"))
}

func TestOnChange_TraduceOperaciones(t *testing.T) {
	store := newMemStore()
	c := newCache(store)

	c.OnChange(context.Background(), realtime.ChangeEvent{Table: "reservations", Op: realtime.OpDelete, ID: "res-1"})
	assert.Contains(t, store.deleted, cache.ReservationDetailKey("res-1"))

	store.deleted = nil
	c.OnChange(context.Background(), realtime.ChangeEvent{Table: "reservations", Op: realtime.OpInsert, ID: "res-2"})
	assert.NotContains(t, store.deleted, cache.ReservationDetailKey("res-2"), "INSERT = alta, sin detalle previo")
	assert.Contains(t, store.deleted, cache.KeyDashboardSummary)
}

func TestOnChange_ResyncDescartaPrefijos(t *testing.T) {
	store := newMemStore()
	c := newCache(store)

	c.OnChange(context.Background(), realtime.ChangeEvent{Table: "guest_documents", Op: realtime.OpResync})

	assert.Equal(t, []string{cache.PrefixGuestDocuments}, store.prefixes)
}

func TestOnChange_TablaSinPoliticaSeIgnora(t *testing.T) {
	store := newMemStore()
	c := newCache(store)

	c.OnChange(context.Background(), realtime.ChangeEvent{Table: "users", Op: realtime.OpUpdate, ID: "u1"})

	assert.Empty(t, store.deleted)
	assert.Empty(t, store.prefixes)
}
