package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Hotel-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetRoomStatusCounts agrupa el inventario por estado.
func (r *AnalyticsRepo) GetRoomStatusCounts(ctx context.Context) ([]repository.RoomStatusCount, error) {
	rows, err := r.q.Query(ctx, `SELECT status, COUNT(*) FROM rooms GROUP BY status ORDER BY status`)
	if err != nil {
		return nil, fmt.Errorf("GetRoomStatusCounts: %w", err)
	}
	defer rows.Close()

	var out []repository.RoomStatusCount
	for rows.Next() {
		var c repository.RoomStatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, fmt.Errorf("GetRoomStatusCounts scan: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetFrontDeskCounts llegadas, salidas y huéspedes alojados del día dado.
func (r *AnalyticsRepo) GetFrontDeskCounts(ctx context.Context, day time.Time) (repository.FrontDeskCounts, error) {
	const query = `
	SELECT
	    COUNT(*) FILTER (WHERE check_in = $1 AND status IN ('pending', 'confirmed', 'checked_in'))  AS arrivals,
	    COUNT(*) FILTER (WHERE check_out = $1 AND status IN ('checked_in', 'checked_out'))          AS departures,
	    COALESCE(SUM(adults + children) FILTER (WHERE status = 'checked_in'), 0)                  AS in_house_guests,
	    COUNT(DISTINCT room_id) FILTER (WHERE status = 'checked_in')                               AS in_house_rooms,
	    COUNT(*) FILTER (WHERE check_in = $1 AND status IN ('pending', 'confirmed'))               AS pending_arrival
	FROM reservations
	WHERE check_in <= $1 AND check_out >= $1`

	var c repository.FrontDeskCounts
	err := r.q.QueryRow(ctx, query, day).Scan(
		&c.Arrivals, &c.Departures, &c.InHouseGuests, &c.InHouseRooms, &c.PendingArrival,
	)
	if err != nil {
		return repository.FrontDeskCounts{}, fmt.Errorf("GetFrontDeskCounts: %w", err)
	}
	return c, nil
}

// GetRevenue suma los montos de reservas no canceladas con check-in en [start, end).
// Usa COALESCE para devolver cero si no hay reservas en el período.
func (r *AnalyticsRepo) GetRevenue(ctx context.Context, start, end time.Time) (repository.RevenueResult, error) {
	const query = `
	SELECT
	    COALESCE(SUM(subtotal), 0),
	    COALESCE(SUM(tax), 0),
	    COALESCE(SUM(total), 0),
	    COUNT(*),
	    COALESCE(SUM(nights), 0)
	FROM reservations
	WHERE check_in >= $1 AND check_in < $2
	  AND status IN ('confirmed', 'checked_in', 'checked_out')`

	var res repository.RevenueResult
	err := r.q.QueryRow(ctx, query, start, end).Scan(
		&res.Subtotal, &res.Tax, &res.Total, &res.Reservations, &res.RoomNights,
	)
	if err != nil {
		return repository.RevenueResult{}, fmt.Errorf("GetRevenue: %w", err)
	}
	return res, nil
}
