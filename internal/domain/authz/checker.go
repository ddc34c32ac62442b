package authz

// Actor identidad autenticada. El rol se toma del token al iniciar sesión.
type Actor struct {
	UserID string
	Email  string
	Role   Role
}

// Checker evalúa permisos para un actor explícito. El valor cero (sin actor) niega todo.
type Checker struct {
	actor *Actor
}

// For construye el Checker del actor. actor nil = sin sesión.
func For(actor *Actor) Checker {
	return Checker{actor: actor}
}

// Actor devuelve el actor evaluado (nil si no hay sesión).
func (c Checker) Actor() *Actor {
	return c.actor
}

// HasPermission true para admin/manager; para el resto, pertenencia a la tabla del rol.
func (c Checker) HasPermission(p Permission) bool {
	if c.actor == nil {
		return false
	}
	if c.actor.Role.HasBlanketGrant() {
		return true
	}
	_, ok := rolePermissions[c.actor.Role][p]
	return ok
}

// HasAnyPermission true si al menos un permiso se cumple. Lista vacía = false.
func (c Checker) HasAnyPermission(perms ...Permission) bool {
	for _, p := range perms {
		if c.HasPermission(p) {
			return true
		}
	}
	return false
}

// HasAllPermissions true si todos se cumplen. Lista vacía = true.
func (c Checker) HasAllPermissions(perms ...Permission) bool {
	for _, p := range perms {
		if !c.HasPermission(p) {
			return false
		}
	}
	return true
}

// CanAccessRoute true para admin/manager; para el resto, la ruta debe estar registrada
// y contener el rol.
func (c Checker) CanAccessRoute(r Route) bool {
	if c.actor == nil {
		return false
	}
	if c.actor.Role.HasBlanketGrant() {
		return true
	}
	roles, ok := routeAccess[r]
	if !ok {
		return false
	}
	return containsRole(roles, c.actor.Role)
}
