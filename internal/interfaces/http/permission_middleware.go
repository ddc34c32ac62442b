package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Hotel-api/internal/application/dto"
	"github.com/jhoicas/Hotel-api/internal/domain/authz"
)

// RequirePermission exige al menos uno de los permisos. Usar DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 401 UNAUTHORIZED → no hay actor en el contexto o el rol del token no es válido.
//   - 403 FORBIDDEN    → el rol no tiene ninguno de los permisos.
func RequirePermission(perms ...authz.Permission) fiber.Handler {
	return guard(func(ch authz.Checker) bool { return ch.HasAnyPermission(perms...) })
}

// RequireAllPermissions exige todos los permisos.
func RequireAllPermissions(perms ...authz.Permission) fiber.Handler {
	return guard(func(ch authz.Checker) bool { return ch.HasAllPermissions(perms...) })
}

// RequireRoute exige acceso a la sección del cliente.
func RequireRoute(route authz.Route) fiber.Handler {
	return guard(func(ch authz.Checker) bool { return ch.CanAccessRoute(route) })
}

func guard(allowed func(authz.Checker) bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := GetActor(c)
		if actor == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
		}
		if !allowed(authz.For(actor)) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "permiso insuficiente"})
		}
		return c.Next()
	}
}
