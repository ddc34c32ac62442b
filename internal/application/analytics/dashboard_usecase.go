// Package analytics contiene los casos de uso del dashboard operativo del hotel.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Hotel-api/internal/application/cache"
	"github.com/jhoicas/Hotel-api/internal/application/dto"
	"github.com/jhoicas/Hotel-api/internal/domain/entity"
	"github.com/jhoicas/Hotel-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DashboardUseCase genera el resumen de ocupación, recepción del día e ingresos del mes.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	cache         *cache.Cache
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, c *cache.Cache) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, cache: c, now: time.Now}
}

// WithClock fija el reloj (tests).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres llamadas en paralelo:
//  1. GetRoomStatusCounts()     → inventario y ocupación
//  2. GetFrontDeskCounts(hoy)   → llegadas, salidas, alojados
//  3. GetRevenue(mes)           → ingresos, noches vendidas, ADR
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	out, _, err := cache.Remember(ctx, uc.cache, cache.KeyDashboardSummary, func(ctx context.Context) (*dto.DashboardSummaryDTO, bool, error) {
		s, err := uc.build(ctx)
		return s, err == nil, err
	})
	return out, err
}

func (uc *DashboardUseCase) build(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := uc.now()

	// ── Rangos de fecha ────────────────────────────────────────────────────────
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	// ── Goroutines para paralelizar las 3 consultas DB ────────────────────────
	type statusResult struct {
		counts []repository.RoomStatusCount
		err    error
	}
	type frontDeskResult struct {
		counts repository.FrontDeskCounts
		err    error
	}
	type revenueResult struct {
		revenue repository.RevenueResult
		err     error
	}

	statusCh := make(chan statusResult, 1)
	deskCh := make(chan frontDeskResult, 1)
	revenueCh := make(chan revenueResult, 1)

	go func() {
		counts, err := uc.analyticsRepo.GetRoomStatusCounts(ctx)
		statusCh <- statusResult{counts, err}
	}()
	go func() {
		counts, err := uc.analyticsRepo.GetFrontDeskCounts(ctx, today)
		deskCh <- frontDeskResult{counts, err}
	}()
	go func() {
		rev, err := uc.analyticsRepo.GetRevenue(ctx, monthStart, monthEnd)
		revenueCh <- revenueResult{rev, err}
	}()

	status := <-statusCh
	desk := <-deskCh
	revenue := <-revenueCh

	if status.err != nil {
		return nil, fmt.Errorf("dashboard: estado de habitaciones: %w", status.err)
	}
	if desk.err != nil {
		return nil, fmt.Errorf("dashboard: recepción del día: %w", desk.err)
	}
	if revenue.err != nil {
		return nil, fmt.Errorf("dashboard: ingresos del mes: %w", revenue.err)
	}

	// ── Ocupación ──────────────────────────────────────────────────────────────
	byStatus := make(map[string]int, len(entity.RoomStatuses))
	for _, s := range entity.RoomStatuses {
		byStatus[s] = 0
	}
	total := 0
	for _, c := range status.counts {
		byStatus[c.Status] += c.Count
		total += c.Count
	}
	sellable := total - byStatus[entity.RoomStatusOutOfOrder] - byStatus[entity.RoomStatusMaintenance]
	occupancy := decimal.Zero
	if sellable > 0 {
		occupancy = decimal.NewFromInt(int64(byStatus[entity.RoomStatusOccupied])).
			Mul(hundred).
			Div(decimal.NewFromInt(int64(sellable))).
			Round(2)
	}

	// ── ADR ────────────────────────────────────────────────────────────────────
	adr := decimal.Zero
	if revenue.revenue.RoomNights > 0 {
		adr = revenue.revenue.Subtotal.Div(decimal.NewFromInt(int64(revenue.revenue.RoomNights))).Round(2)
	}

	// ── Construir DTO ──────────────────────────────────────────────────────────
	return &dto.DashboardSummaryDTO{
		TotalRooms:          total,
		RoomsByStatus:       byStatus,
		OccupancyRate:       occupancy,
		ArrivalsToday:       desk.counts.Arrivals,
		DeparturesToday:     desk.counts.Departures,
		PendingArrivals:     desk.counts.PendingArrival,
		InHouseGuests:       desk.counts.InHouseGuests,
		MonthlyRevenue:      revenue.revenue.Total.Round(2),
		MonthlyTax:          revenue.revenue.Tax.Round(2),
		MonthlyReservations: revenue.revenue.Reservations,
		MonthlyRoomNights:   revenue.revenue.RoomNights,
		ADR:                 adr,
		DateLabel:           monthLabel(now),
	}, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
