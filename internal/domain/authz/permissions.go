// Package authz implementa el modelo de autorización por roles del hotel.
//
// Todo es una función pura del rol del actor: tablas estáticas rol → permisos y
// ruta → roles. admin y manager reciben el universo completo de permisos; el resto
// de roles tiene un subconjunto enumerado a mano. Un rol que no figura en la tabla
// no tiene permisos (falla cerrado).
package authz

import "sort"

// Role rol del actor autenticado. Se fija al autenticarse y no cambia durante la sesión.
type Role string

// Roles válidos.
const (
	RoleAdmin        Role = "admin"
	RoleManager      Role = "manager"
	RoleReceptionist Role = "receptionist"
	RoleAccounts     Role = "accounts"
	RoleHousekeeping Role = "housekeeping"
)

// Permission identificador opaco de una acción permitida.
type Permission string

// Universo cerrado de permisos. Agregar uno implica revisar la tabla de cada rol.
const (
	PermRoomsView         Permission = "rooms.view"
	PermRoomsCreate       Permission = "rooms.create"
	PermRoomsUpdate       Permission = "rooms.update"
	PermRoomsDelete       Permission = "rooms.delete"
	PermRoomsUpdateStatus Permission = "rooms.update_status"

	PermRoomTypesView   Permission = "room_types.view"
	PermRoomTypesManage Permission = "room_types.manage"

	PermReservationsView     Permission = "reservations.view"
	PermReservationsCreate   Permission = "reservations.create"
	PermReservationsUpdate   Permission = "reservations.update"
	PermReservationsCancel   Permission = "reservations.cancel"
	PermReservationsCheckIn  Permission = "reservations.check_in"
	PermReservationsCheckOut Permission = "reservations.check_out"

	PermGuestsView   Permission = "guests.view"
	PermGuestsCreate Permission = "guests.create"
	PermGuestsUpdate Permission = "guests.update"
	PermGuestsDelete Permission = "guests.delete"

	PermDocumentsView   Permission = "documents.view"
	PermDocumentsUpload Permission = "documents.upload"
	PermDocumentsDelete Permission = "documents.delete"

	PermPaymentsView    Permission = "payments.view"
	PermPaymentsProcess Permission = "payments.process"
	PermPaymentsRefund  Permission = "payments.refund"

	PermInvoicesView   Permission = "invoices.view"
	PermInvoicesManage Permission = "invoices.manage"

	PermReportsView   Permission = "reports.view"
	PermReportsExport Permission = "reports.export"

	PermHousekeepingView Permission = "housekeeping.view"

	PermUsersView   Permission = "users.view"
	PermUsersManage Permission = "users.manage"

	PermSettingsManage Permission = "settings.manage"
)

var allPermissions = []Permission{
	PermRoomsView, PermRoomsCreate, PermRoomsUpdate, PermRoomsDelete, PermRoomsUpdateStatus,
	PermRoomTypesView, PermRoomTypesManage,
	PermReservationsView, PermReservationsCreate, PermReservationsUpdate, PermReservationsCancel,
	PermReservationsCheckIn, PermReservationsCheckOut,
	PermGuestsView, PermGuestsCreate, PermGuestsUpdate, PermGuestsDelete,
	PermDocumentsView, PermDocumentsUpload, PermDocumentsDelete,
	PermPaymentsView, PermPaymentsProcess, PermPaymentsRefund,
	PermInvoicesView, PermInvoicesManage,
	PermReportsView, PermReportsExport,
	PermHousekeepingView,
	PermUsersView, PermUsersManage,
	PermSettingsManage,
}

// rolePermissions subconjuntos disjuntos por función de cada puesto.
// admin y manager no aparecen: reciben todo el universo.
var rolePermissions = map[Role]map[Permission]struct{}{
	// Recepción: operaciones de mostrador.
	RoleReceptionist: set(
		PermRoomsView,
		PermRoomTypesView,
		PermReservationsView, PermReservationsCreate, PermReservationsUpdate,
		PermReservationsCancel, PermReservationsCheckIn, PermReservationsCheckOut,
		PermGuestsView, PermGuestsCreate, PermGuestsUpdate,
		PermDocumentsView, PermDocumentsUpload,
	),
	// Contabilidad: operaciones financieras.
	RoleAccounts: set(
		PermPaymentsView, PermPaymentsProcess, PermPaymentsRefund,
		PermInvoicesView, PermInvoicesManage,
		PermReportsView, PermReportsExport,
	),
	// Ama de llaves: estado de habitaciones.
	RoleHousekeeping: set(
		PermHousekeepingView,
		PermRoomsUpdateStatus,
	),
}

func set(perms ...Permission) map[Permission]struct{} {
	m := make(map[Permission]struct{}, len(perms))
	for _, p := range perms {
		m[p] = struct{}{}
	}
	return m
}

// AllPermissions devuelve una copia del universo de permisos.
func AllPermissions() []Permission {
	out := make([]Permission, len(allPermissions))
	copy(out, allPermissions)
	return out
}

// IsKnownPermission informa si p pertenece al universo.
func IsKnownPermission(p Permission) bool {
	for _, known := range allPermissions {
		if known == p {
			return true
		}
	}
	return false
}

// ParseRole convierte el string del token en Role. ok=false si no es un rol válido.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	switch r {
	case RoleAdmin, RoleManager, RoleReceptionist, RoleAccounts, RoleHousekeeping:
		return r, true
	}
	return r, false
}

// HasBlanketGrant admin y manager tienen acceso total.
func (r Role) HasBlanketGrant() bool {
	return r == RoleAdmin || r == RoleManager
}

// PermissionsFor lista los permisos efectivos del rol, ordenados.
// Un rol desconocido devuelve una lista vacía.
func PermissionsFor(role Role) []Permission {
	if role.HasBlanketGrant() {
		return AllPermissions()
	}
	perms := rolePermissions[role]
	out := make([]Permission, 0, len(perms))
	for p := range perms {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
