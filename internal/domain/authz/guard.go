package authz

// Outcome qué debe mostrarse tras evaluar un Guard.
type Outcome int

const (
	// OutcomeNothing acceso denegado sin fallback ni aviso.
	OutcomeNothing Outcome = iota
	// OutcomeChildren acceso concedido.
	OutcomeChildren
	// OutcomeFallback acceso denegado; se muestra el contenido alternativo.
	OutcomeFallback
	// OutcomeUnauthorized acceso denegado; se muestra el aviso de no autorizado.
	OutcomeUnauthorized
)

func (o Outcome) String() string {
	switch o {
	case OutcomeChildren:
		return "children"
	case OutcomeFallback:
		return "fallback"
	case OutcomeUnauthorized:
		return "unauthorized"
	default:
		return "nothing"
	}
}

// Guard sección protegida por uno o varios permisos.
// Por defecto basta con cualquiera de ellos; RequireAll exige todos.
type Guard struct {
	Permissions      []Permission
	RequireAll       bool
	HasFallback      bool
	ShowUnauthorized bool
}

// Evaluate decide el resultado para el actor del Checker. Sin permisos → siempre Children.
func (g Guard) Evaluate(c Checker) Outcome {
	if len(g.Permissions) == 0 || g.allowed(c) {
		return OutcomeChildren
	}
	switch {
	case g.HasFallback:
		return OutcomeFallback
	case g.ShowUnauthorized:
		return OutcomeUnauthorized
	default:
		return OutcomeNothing
	}
}

func (g Guard) allowed(c Checker) bool {
	if g.RequireAll {
		return c.HasAllPermissions(g.Permissions...)
	}
	return c.HasAnyPermission(g.Permissions...)
}
