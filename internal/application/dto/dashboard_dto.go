package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	// Inventario
	TotalRooms    int             `json:"total_rooms"`
	RoomsByStatus map[string]int  `json:"rooms_by_status"`
	OccupancyRate decimal.Decimal `json:"occupancy_rate"` // ocupadas / (total - fuera de servicio) * 100

	// Recepción del día
	ArrivalsToday   int `json:"arrivals_today"`
	DeparturesToday int `json:"departures_today"`
	PendingArrivals int `json:"pending_arrivals"`
	InHouseGuests   int `json:"in_house_guests"`

	// Ingresos del mes en curso
	MonthlyRevenue      decimal.Decimal `json:"monthly_revenue"` // total con impuestos
	MonthlyTax          decimal.Decimal `json:"monthly_tax"`
	MonthlyReservations int             `json:"monthly_reservations"`
	MonthlyRoomNights   int             `json:"monthly_room_nights"`
	ADR                 decimal.Decimal `json:"adr"` // tarifa promedio por noche vendida (sin impuestos)

	DateLabel string `json:"date_label"` // ej: "Octubre 2026"
}
