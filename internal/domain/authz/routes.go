package authz

import "sort"

// Route identificador de una sección de la aplicación (path del cliente).
type Route string

// Rutas registradas.
const (
	RouteDashboard    Route = "/dashboard"
	RouteRooms        Route = "/rooms"
	RouteRoomTypes    Route = "/room-types"
	RouteReservations Route = "/reservations"
	RouteGuests       Route = "/guests"
	RouteHousekeeping Route = "/housekeeping"
	RoutePayments     Route = "/payments"
	RouteInvoices     Route = "/invoices"
	RouteReports      Route = "/reports"
)

// Rutas solo para admin/manager: no se registran (las no registradas quedan prohibidas
// para el resto de roles).
const (
	RouteUsers    Route = "/users"
	RouteSettings Route = "/settings"
)

// routeAccess lista blanca ruta → roles. admin y manager no necesitan figurar.
var routeAccess = map[Route][]Role{
	RouteDashboard:    {RoleReceptionist, RoleAccounts, RoleHousekeeping},
	RouteRooms:        {RoleReceptionist, RoleHousekeeping},
	RouteRoomTypes:    {RoleReceptionist},
	RouteReservations: {RoleReceptionist},
	RouteGuests:       {RoleReceptionist},
	RouteHousekeeping: {RoleHousekeeping},
	RoutePayments:     {RoleAccounts},
	RouteInvoices:     {RoleAccounts},
	RouteReports:      {RoleAccounts},
}

// IsRegisteredRoute informa si la ruta tiene lista blanca.
func IsRegisteredRoute(r Route) bool {
	_, ok := routeAccess[r]
	return ok
}

// AccessibleRoutes rutas que el rol puede ver, ordenadas. admin/manager ven además las no registradas.
func AccessibleRoutes(role Role) []Route {
	var out []Route
	if role.HasBlanketGrant() {
		for r := range routeAccess {
			out = append(out, r)
		}
		out = append(out, RouteUsers, RouteSettings)
	} else {
		for r, roles := range routeAccess {
			if containsRole(roles, role) {
				out = append(out, r)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func containsRole(roles []Role, role Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
