package reservation_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Hotel-api/internal/application/cache"
	"github.com/jhoicas/Hotel-api/internal/application/dto"
	"github.com/jhoicas/Hotel-api/internal/application/reservation"
	"github.com/jhoicas/Hotel-api/internal/domain"
	"github.com/jhoicas/Hotel-api/internal/domain/entity"
	"github.com/jhoicas/Hotel-api/internal/domain/pricing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: una habitación doble a 150/noche y un huésped
// ──────────────────────────────────────────────────────────────────────────────

const (
	typeID    = "3c0e5b1e-6a7d-4f43-9c1a-0d2b6a1f0001"
	roomID    = "3c0e5b1e-6a7d-4f43-9c1a-0d2b6a1f0101"
	guestID   = "3c0e5b1e-6a7d-4f43-9c1a-0d2b6a1f1001"
	userID    = "3c0e5b1e-6a7d-4f43-9c1a-0d2b6a1f9001"
	missingID = "99999999-9999-4999-8999-999999999999"
)

func fixture(t *testing.T) (*reservation.UseCase, *store) {
	t.Helper()
	s := newStore()
	s.types[typeID] = &entity.RoomType{ID: typeID, Name: "Doble", BasePrice: decimal.NewFromInt(150), MaxOccupancy: 3, MaxAdults: 2, IsActive: true}
	s.rooms[roomID] = &entity.Room{ID: roomID, Number: "101", Floor: 1, RoomTypeID: typeID, Status: entity.RoomStatusAvailable}
	s.guests[guestID] = &entity.Guest{ID: guestID, FirstName: "Ana", LastName: "Pérez"}
	uc := reservation.NewUseCase(resRepo{s}, roomRepo{s}, typeRepo{s}, guestRepo{s}, txRunner{s},
		pricing.NewCalculator(pricing.DefaultTaxRate), cache.Disabled())
	return uc, s
}

func validRequest() dto.CreateReservationRequest {
	return dto.CreateReservationRequest{
		GuestID:  guestID,
		RoomID:   roomID,
		CheckIn:  "2024-03-01",
		CheckOut: "2024-03-06",
		Adults:   2,
	}
}

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "esperado %s, obtenido %s", want, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_CotizaYGuarda(t *testing.T) {
	uc, s := fixture(t)

	out, err := uc.Create(context.Background(), userID, validRequest())
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^RSV-[0-9A-F]{8}$`), out.Code)
	assert.Equal(t, entity.ReservationStatusConfirmed, out.Status, "sin estado queda confirmada")
	assert.Equal(t, 5, out.Nights)
	assertMoney(t, "750", out.Subtotal)
	assertMoney(t, "120", out.Tax)
	assertMoney(t, "870", out.Total)
	assert.Equal(t, "Ana Pérez", out.GuestName)
	assert.Equal(t, "101", out.RoomNum)
	assert.Equal(t, userID, out.CreatedBy)
	assert.Equal(t, 1, s.txRuns)
	require.Contains(t, s.reservations, out.ID)
}

// Las validaciones de forma fallan sin ningún acceso a repositorios.
func TestCreate_ValidaAntesDeTocarLaBase(t *testing.T) {
	cases := map[string]func(*dto.CreateReservationRequest){
		"sin huésped":         func(r *dto.CreateReservationRequest) { r.GuestID = "" },
		"sin habitación":      func(r *dto.CreateReservationRequest) { r.RoomID = " " },
		"huésped no UUID":     func(r *dto.CreateReservationRequest) { r.GuestID = "guest-1" },
		"habitación no UUID":  func(r *dto.CreateReservationRequest) { r.RoomID = "101" },
		"sin entrada":         func(r *dto.CreateReservationRequest) { r.CheckIn = "" },
		"fecha mal formada":   func(r *dto.CreateReservationRequest) { r.CheckOut = "06/03/2024" },
		"salida igual":        func(r *dto.CreateReservationRequest) { r.CheckOut = r.CheckIn },
		"salida anterior":     func(r *dto.CreateReservationRequest) { r.CheckOut = "2024-02-28" },
		"sin adultos":         func(r *dto.CreateReservationRequest) { r.Adults = 0 },
		"niños negativos":     func(r *dto.CreateReservationRequest) { r.Children = -1 },
		"estado no permitido": func(r *dto.CreateReservationRequest) { r.Status = entity.ReservationStatusCheckedIn },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			uc, s := fixture(t)
			req := validRequest()
			mutate(&req)

			_, err := uc.Create(context.Background(), userID, req)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Zero(t, s.calls, "no debe consultarse ningún repositorio")
		})
	}
}

func TestCreate_HuespedInexistente(t *testing.T) {
	uc, s := fixture(t)
	req := validRequest()
	req.GuestID = missingID

	_, err := uc.Create(context.Background(), userID, req)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, s.txRuns)
}

func TestCreate_HabitacionOcupadaEnEsasFechas(t *testing.T) {
	uc, s := fixture(t)
	s.available = false

	_, err := uc.Create(context.Background(), userID, validRequest())

	assert.ErrorIs(t, err, domain.ErrRoomUnavailable)
	assert.Empty(t, s.reservations)
}

func TestCreate_HabitacionEnMantenimiento(t *testing.T) {
	for _, status := range []string{entity.RoomStatusMaintenance, entity.RoomStatusOutOfOrder} {
		uc, s := fixture(t)
		s.rooms[roomID].Status = status

		_, err := uc.Create(context.Background(), userID, validRequest())

		assert.ErrorIs(t, err, domain.ErrRoomUnavailable, status)
	}
}

func TestCreate_SuperaCapacidad(t *testing.T) {
	uc, _ := fixture(t)
	req := validRequest()
	req.Adults, req.Children = 2, 2

	_, err := uc.Create(context.Background(), userID, req)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_EstadoPendiente(t *testing.T) {
	uc, _ := fixture(t)
	req := validRequest()
	req.Status = entity.ReservationStatusPending

	out, err := uc.Create(context.Background(), userID, req)

	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusPending, out.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de vida
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckInYCheckOut_MuevenLaHabitacion(t *testing.T) {
	uc, s := fixture(t)
	ctx := context.Background()
	created, err := uc.Create(ctx, userID, validRequest())
	require.NoError(t, err)

	in, err := uc.CheckIn(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusCheckedIn, in.Status)
	assert.Equal(t, entity.RoomStatusOccupied, s.rooms[roomID].Status)

	out, err := uc.CheckOut(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusCheckedOut, out.Status)
	assert.Equal(t, entity.RoomStatusCleaning, s.rooms[roomID].Status)
}

func TestCheckOut_SinCheckInEsConflicto(t *testing.T) {
	uc, _ := fixture(t)
	created, err := uc.Create(context.Background(), userID, validRequest())
	require.NoError(t, err)

	_, err = uc.CheckOut(context.Background(), created.ID)

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCancel_NoAplicaAReservaCerrada(t *testing.T) {
	uc, s := fixture(t)
	ctx := context.Background()
	created, err := uc.Create(ctx, userID, validRequest())
	require.NoError(t, err)

	cancelled, err := uc.Cancel(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusCancelled, cancelled.Status)
	assert.Equal(t, entity.RoomStatusAvailable, s.rooms[roomID].Status, "cancelar no toca la habitación")

	_, err = uc.Cancel(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
	_, err = uc.CheckIn(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestTransicion_ReservaInexistenteDevuelveNil(t *testing.T) {
	uc, _ := fixture(t)
	out, err := uc.Cancel(context.Background(), missingID)
	require.NoError(t, err)
	assert.Nil(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_RecotizaAlCambiarFechas(t *testing.T) {
	uc, _ := fixture(t)
	ctx := context.Background()
	created, err := uc.Create(ctx, userID, validRequest())
	require.NoError(t, err)

	checkOut := "2024-03-03"
	out, err := uc.Update(ctx, created.ID, dto.UpdateReservationRequest{CheckOut: &checkOut})

	require.NoError(t, err)
	assert.Equal(t, 2, out.Nights)
	assertMoney(t, "348", out.Total)
}

func TestUpdate_SoloPendientesOConfirmadas(t *testing.T) {
	uc, _ := fixture(t)
	ctx := context.Background()
	created, err := uc.Create(ctx, userID, validRequest())
	require.NoError(t, err)
	_, err = uc.CheckIn(ctx, created.ID)
	require.NoError(t, err)

	notes := "late check-out"
	_, err = uc.Update(ctx, created.ID, dto.UpdateReservationRequest{Notes: &notes})

	assert.ErrorIs(t, err, domain.ErrConflict)
}

// ──────────────────────────────────────────────────────────────────────────────
// Quote / disponibilidad
// ──────────────────────────────────────────────────────────────────────────────

func TestQuote_PorTipoDeHabitacion(t *testing.T) {
	uc, _ := fixture(t)

	q, err := uc.Quote(context.Background(), dto.QuoteRequest{CheckIn: "2024-03-01", CheckOut: "2024-03-06", RoomTypeID: typeID})

	require.NoError(t, err)
	assert.Equal(t, 5, q.Nights)
	assertMoney(t, "150", q.BasePrice)
	assertMoney(t, "0.16", q.TaxRate)
	assertMoney(t, "870", q.Total)
}

func TestQuote_PorHabitacionYSinFechas(t *testing.T) {
	uc, _ := fixture(t)

	q, err := uc.Quote(context.Background(), dto.QuoteRequest{RoomID: roomID})

	require.NoError(t, err)
	assert.Zero(t, q.Nights)
	assert.True(t, q.Total.IsZero())
	assertMoney(t, "150", q.BasePrice)
}

func TestQuote_TipoInexistente(t *testing.T) {
	uc, _ := fixture(t)
	_, err := uc.Quote(context.Background(), dto.QuoteRequest{RoomTypeID: missingID})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFindAvailable(t *testing.T) {
	uc, _ := fixture(t)

	out, err := uc.FindAvailable(context.Background(), dto.AvailabilityRequest{CheckIn: "2024-03-01", CheckOut: "2024-03-02"})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "101", out.Items[0].RoomNumber)

	out, err = uc.FindAvailable(context.Background(), dto.AvailabilityRequest{CheckIn: "2024-03-01", CheckOut: "2024-03-02", MinOccupancy: 4})
	require.NoError(t, err)
	assert.Empty(t, out.Items)

	_, err = uc.FindAvailable(context.Background(), dto.AvailabilityRequest{CheckIn: "2024-03-02", CheckOut: "2024-03-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCheckRoom(t *testing.T) {
	uc, s := fixture(t)
	s.available = false

	out, err := uc.CheckRoom(context.Background(), roomID, "2024-03-01", "2024-03-02", "")

	require.NoError(t, err)
	assert.False(t, out.Available)
	assert.Equal(t, "2024-03-01", out.CheckIn)
}

func TestParseRange(t *testing.T) {
	in, out, err := reservation.ParseRange("2024-02-28", "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, 48*time.Hour, out.Sub(in))

	_, _, err = reservation.ParseRange("2024-02-28", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un id que no es UUID se rechaza antes de llegar a la base.
func TestIDsMalFormadosSonEntradaInvalida(t *testing.T) {
	uc, s := fixture(t)
	ctx := context.Background()

	_, err := uc.GetByID(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Cancel(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Update(ctx, "123", dto.UpdateReservationRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.CheckRoom(ctx, "room-101", "2024-03-01", "2024-03-02", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.List(ctx, dto.ReservationListRequest{GuestID: "ana"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Zero(t, s.calls)
}
