package dto

// MeResponse perfil del actor con sus permisos efectivos y rutas visibles.
type MeResponse struct {
	UserID      string   `json:"user_id"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
	Routes      []string `json:"routes"`
}

// PermissionCheckRequest evalúa una sección protegida: lista de permisos (cualquiera por
// defecto, todos si RequireAll) y qué mostrar si se niega.
type PermissionCheckRequest struct {
	Permissions      []string `json:"permissions"`
	RequireAll       bool     `json:"require_all"`
	HasFallback      bool     `json:"has_fallback"`
	ShowUnauthorized bool     `json:"show_unauthorized"`
}

// PermissionCheckResponse resultado de la evaluación.
type PermissionCheckResponse struct {
	Granted bool   `json:"granted"`
	Outcome string `json:"outcome"` // children | fallback | unauthorized | nothing
}

// RouteAccessResponse acceso a una ruta del cliente.
type RouteAccessResponse struct {
	Route      string `json:"route"`
	Registered bool   `json:"registered"`
	Allowed    bool   `json:"allowed"`
}
