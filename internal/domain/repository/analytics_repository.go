package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RoomStatusCount cantidad de habitaciones por estado.
type RoomStatusCount struct {
	Status string
	Count  int
}

// FrontDeskCounts movimientos de recepción de un día.
type FrontDeskCounts struct {
	Arrivals       int // reservas confirmadas/pendientes con check-in ese día
	Departures     int // reservas alojadas con check-out ese día
	InHouseGuests  int // adultos + niños de reservas checked_in
	InHouseRooms   int
	PendingArrival int // llegadas del día aún sin check-in
}

// RevenueResult ingresos del período (reservas no canceladas).
type RevenueResult struct {
	Subtotal     decimal.Decimal
	Tax          decimal.Decimal
	Total        decimal.Decimal
	Reservations int
	RoomNights   int
}

// AnalyticsRepository consultas de solo lectura para el dashboard.
type AnalyticsRepository interface {
	// GetRoomStatusCounts agrupa el inventario por estado.
	GetRoomStatusCounts(ctx context.Context) ([]RoomStatusCount, error)

	// GetFrontDeskCounts llegadas, salidas y huéspedes alojados del día dado.
	GetFrontDeskCounts(ctx context.Context, day time.Time) (FrontDeskCounts, error)

	// GetRevenue suma los montos de reservas con check-in en [start, end).
	// Usa COALESCE para devolver cero si no hay reservas en el período.
	GetRevenue(ctx context.Context, start, end time.Time) (RevenueResult, error)
}
