package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Hotel-api/internal/application/auth"
	"github.com/jhoicas/Hotel-api/internal/application/dto"
	"github.com/jhoicas/Hotel-api/internal/domain/authz"
)

// AuthHandler maneja registro, login y el perfil de permisos del actor.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario (solo admin/manager)
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "email, password, full_name, role"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if !bindJSON(c, &in) {
		return nil
	}
	user, err := h.uc.RegisterUser(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if !bindJSON(c, &in) {
		return nil
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Perfil del actor con permisos efectivos y rutas visibles
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MeResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	actor := GetActor(c)
	if actor == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
	}
	perms := authz.PermissionsFor(actor.Role)
	routes := authz.AccessibleRoutes(actor.Role)
	out := dto.MeResponse{
		UserID:      actor.UserID,
		Email:       actor.Email,
		Role:        string(actor.Role),
		Permissions: make([]string, 0, len(perms)),
		Routes:      make([]string, 0, len(routes)),
	}
	for _, p := range perms {
		out.Permissions = append(out.Permissions, string(p))
	}
	for _, r := range routes {
		out.Routes = append(out.Routes, string(r))
	}
	return c.JSON(out)
}

// CheckPermissions evalúa una sección protegida con authz.Guard para el actor.
// Lista vacía → children. Un permiso fuera del universo → 400.
// POST /api/me/permissions/check
func (h *AuthHandler) CheckPermissions(c *fiber.Ctx) error {
	var in dto.PermissionCheckRequest
	if !bindJSON(c, &in) {
		return nil
	}
	guard := authz.Guard{
		Permissions:      make([]authz.Permission, 0, len(in.Permissions)),
		RequireAll:       in.RequireAll,
		HasFallback:      in.HasFallback,
		ShowUnauthorized: in.ShowUnauthorized,
	}
	for _, p := range in.Permissions {
		perm := authz.Permission(p)
		if !authz.IsKnownPermission(perm) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "permiso desconocido: " + p})
		}
		guard.Permissions = append(guard.Permissions, perm)
	}
	outcome := guard.Evaluate(authz.For(GetActor(c)))
	return c.JSON(dto.PermissionCheckResponse{
		Granted: outcome == authz.OutcomeChildren,
		Outcome: outcome.String(),
	})
}

// RouteAccess GET /api/me/routes?path=/reservations
func (h *AuthHandler) RouteAccess(c *fiber.Ctx) error {
	path := c.Query("path")
	if path == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "path es requerido"})
	}
	route := authz.Route(path)
	return c.JSON(dto.RouteAccessResponse{
		Route:      path,
		Registered: authz.IsRegisteredRoute(route),
		Allowed:    authz.For(GetActor(c)).CanAccessRoute(route),
	})
}
