package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Hotel-api/internal/domain/entity"
)

func TestRoom_ApplyStatus_MarcaLimpiezaAlQuedarDisponible(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	room := &entity.Room{Status: entity.RoomStatusCleaning}

	room.ApplyStatus(entity.RoomStatusAvailable, now)

	assert.Equal(t, entity.RoomStatusAvailable, room.Status)
	require.NotNil(t, room.LastCleanedAt)
	assert.Equal(t, now, *room.LastCleanedAt)
	assert.Equal(t, now, room.UpdatedAt)
}

func TestRoom_ApplyStatus_DisponibleADisponibleNoTocaLimpieza(t *testing.T) {
	prev := time.Date(2024, 5, 30, 9, 0, 0, 0, time.UTC)
	room := &entity.Room{Status: entity.RoomStatusAvailable, LastCleanedAt: &prev}

	room.ApplyStatus(entity.RoomStatusAvailable, prev.Add(48*time.Hour))

	assert.Equal(t, prev, *room.LastCleanedAt)
}

func TestRoom_ApplyStatus_OtrosEstadosNoMarcan(t *testing.T) {
	room := &entity.Room{Status: entity.RoomStatusAvailable}
	room.ApplyStatus(entity.RoomStatusOccupied, time.Now())
	assert.Nil(t, room.LastCleanedAt)
}

func TestRoomType_Fits(t *testing.T) {
	rt := &entity.RoomType{MaxOccupancy: 4, MaxAdults: 2}

	assert.True(t, rt.Fits(2, 2))
	assert.False(t, rt.Fits(3, 0), "supera adultos")
	assert.False(t, rt.Fits(2, 3), "supera ocupación")

	open := &entity.RoomType{MaxOccupancy: 3}
	assert.True(t, open.Fits(3, 0), "sin límite de adultos")
}

func TestReservation_IsActive(t *testing.T) {
	for status, want := range map[string]bool{
		entity.ReservationStatusPending:    true,
		entity.ReservationStatusConfirmed:  true,
		entity.ReservationStatusCheckedIn:  true,
		entity.ReservationStatusCheckedOut: false,
		entity.ReservationStatusCancelled:  false,
	} {
		r := &entity.Reservation{Status: status}
		assert.Equal(t, want, r.IsActive(), status)
		assert.True(t, entity.IsValidReservationStatus(status))
	}
	assert.False(t, entity.IsValidReservationStatus("no_show"))
}

func TestGuest_FullName(t *testing.T) {
	assert.Equal(t, "Ana Pérez", (&entity.Guest{FirstName: "Ana", LastName: "Pérez"}).FullName())
	assert.Equal(t, "Ana", (&entity.Guest{FirstName: "Ana"}).FullName())
}
