package http_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Hotel-api/internal/domain"
	"github.com/jhoicas/Hotel-api/internal/domain/authz"
	apphttp "github.com/jhoicas/Hotel-api/internal/interfaces/http"
)

func ok(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) }

func permissionApp() *fiber.App {
	app := fiber.New()
	auth := apphttp.AuthMiddleware(testJWTSecret)
	app.Post("/reservations", auth, apphttp.RequirePermission(authz.PermReservationsCreate), ok)
	app.Patch("/rooms/status", auth, apphttp.RequirePermission(authz.PermRoomsUpdateStatus), ok)
	app.Get("/rooms", auth, apphttp.RequirePermission(authz.PermRoomsView, authz.PermHousekeepingView), ok)
	app.Delete("/guests", auth, apphttp.RequireAllPermissions(authz.PermGuestsView, authz.PermGuestsDelete), ok)
	app.Get("/dashboard", auth, apphttp.RequireRoute(authz.RouteDashboard), ok)
	app.Get("/users", auth, apphttp.RequireRoute(authz.RouteUsers), ok)
	return app
}

func TestRequirePermission_MatrizPorRol(t *testing.T) {
	app := permissionApp()
	cases := []struct {
		role   string
		method string
		path   string
		want   int
	}{
		{"receptionist", http.MethodPost, "/reservations", http.StatusNoContent},
		{"accounts", http.MethodPost, "/reservations", http.StatusForbidden},
		{"housekeeping", http.MethodPatch, "/rooms/status", http.StatusNoContent},
		{"receptionist", http.MethodPatch, "/rooms/status", http.StatusForbidden},
		{"housekeeping", http.MethodGet, "/rooms", http.StatusNoContent},
		{"accounts", http.MethodGet, "/rooms", http.StatusForbidden},
		{"receptionist", http.MethodDelete, "/guests", http.StatusForbidden},
		{"manager", http.MethodDelete, "/guests", http.StatusNoContent},
		{"accounts", http.MethodGet, "/dashboard", http.StatusNoContent},
		{"receptionist", http.MethodGet, "/users", http.StatusForbidden},
		{"admin", http.MethodGet, "/users", http.StatusNoContent},
	}
	for _, tc := range cases {
		resp := doRequest(t, app, tc.method, tc.path, tokenForRole(t, tc.role))
		assert.Equal(t, tc.want, resp.StatusCode, "%s %s %s", tc.role, tc.method, tc.path)
		resp.Body.Close()
	}
}

func TestRequirePermission_RolDesconocidoEs401(t *testing.T) {
	resp := doRequest(t, permissionApp(), http.MethodGet, "/rooms", tokenForRole(t, "bodeguero"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// /me: permisos efectivos y evaluación
// ──────────────────────────────────────────────────────────────────────────────

func meApp() *fiber.App {
	app := fiber.New()
	h := apphttp.NewAuthHandler(nil)
	auth := apphttp.AuthMiddleware(testJWTSecret)
	app.Get("/me", auth, h.Me)
	app.Post("/me/permissions/check", auth, h.CheckPermissions)
	app.Get("/me/routes", auth, h.RouteAccess)
	return app
}

func TestMe_HousekeepingListaPermisosYRutas(t *testing.T) {
	resp := doRequest(t, meApp(), http.MethodGet, "/me", tokenForRole(t, "housekeeping"))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Role        string   `json:"role"`
		Permissions []string `json:"permissions"`
		Routes      []string `json:"routes"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "housekeeping", body.Role)
	assert.Equal(t, []string{"housekeeping.view", "rooms.update_status"}, body.Permissions)
	assert.Equal(t, []string{"/dashboard", "/housekeeping", "/rooms"}, body.Routes)
}

func TestCheckPermissions(t *testing.T) {
	app := meApp()
	check := func(payload string) (bool, string) {
		req := newJSONRequest(http.MethodPost, "/me/permissions/check", payload)
		req.Header.Set("Authorization", tokenForRole(t, "receptionist"))
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body struct {
			Granted bool   `json:"granted"`
			Outcome string `json:"outcome"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		return body.Granted, body.Outcome
	}

	cases := []struct {
		name    string
		payload string
		granted bool
		outcome string
	}{
		{"cualquiera de los permisos", `{"permissions":["payments.view","guests.view"]}`, true, "children"},
		{"todos los permisos", `{"permissions":["payments.view","guests.view"],"require_all":true}`, false, "nothing"},
		{"sin permisos siempre concede", `{"permissions":[]}`, true, "children"},
		{"sin permisos y require_all", `{"permissions":[],"require_all":true}`, true, "children"},
		{"denegado con fallback", `{"permissions":["payments.view"],"has_fallback":true}`, false, "fallback"},
		{"denegado con aviso", `{"permissions":["payments.view"],"show_unauthorized":true}`, false, "unauthorized"},
		{"fallback tiene prioridad", `{"permissions":["payments.view"],"has_fallback":true,"show_unauthorized":true}`, false, "fallback"},
		{"denegado sin alternativa", `{"permissions":["payments.view"]}`, false, "nothing"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			granted, outcome := check(tc.payload)
			assert.Equal(t, tc.granted, granted)
			assert.Equal(t, tc.outcome, outcome)
		})
	}
}

func TestCheckPermissions_PermisoDesconocido_Retorna400(t *testing.T) {
	req := newJSONRequest(http.MethodPost, "/me/permissions/check", `{"permissions":["guests.view","foo.bar"]}`)
	req.Header.Set("Authorization", tokenForRole(t, "receptionist"))
	resp, err := meApp().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "foo.bar")
}

func TestRouteAccess(t *testing.T) {
	get := func(path, role string) map[string]any {
		resp := doRequest(t, meApp(), http.MethodGet, "/me/routes?path="+path, tokenForRole(t, role))
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		return body
	}

	body := get("/payments", "accounts")
	assert.Equal(t, "/payments", body["route"])
	assert.Equal(t, true, body["registered"])
	assert.Equal(t, true, body["allowed"])

	users := get("/users", "accounts")
	assert.Equal(t, false, users["registered"])
	assert.Equal(t, false, users["allowed"])

	admin := get("/users", "admin")
	assert.Equal(t, false, admin["registered"])
	assert.Equal(t, true, admin["allowed"])

	resp := doRequest(t, meApp(), http.MethodGet, "/me/routes", tokenForRole(t, "accounts"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Traducción de errores de dominio
// ──────────────────────────────────────────────────────────────────────────────

func TestErrores_StatusPorErrorDeDominio(t *testing.T) {
	cases := []struct {
		err  error
		want int
		code string
	}{
		{fmt.Errorf("%w: check_out", domain.ErrInvalidInput), http.StatusBadRequest, "VALIDATION"},
		{domain.ErrUserNotFound, http.StatusUnauthorized, "UNAUTHORIZED"},
		{domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrRoomUnavailable, http.StatusConflict, "ROOM_UNAVAILABLE"},
		{fmt.Errorf("%w: reserva cancelada", domain.ErrConflict), http.StatusConflict, "CONFLICT"},
		{domain.ErrDuplicate, http.StatusConflict, "DUPLICATE"},
		{fmt.Errorf("scan: %w", domain.ErrSchemaMismatch), http.StatusBadGateway, "SCHEMA_MISMATCH"},
		{errors.New("conexión rechazada"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		err := tc.err
		app := fiber.New()
		app.Get("/", func(c *fiber.Ctx) error { return apphttp.WriteError(c, err) })

		resp := doRequest(t, app, http.MethodGet, "/", "")
		assert.Equal(t, tc.want, resp.StatusCode, err.Error())

		var body struct {
			Code string `json:"code"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, tc.code, body.Code, err.Error())
		resp.Body.Close()
	}
}

func newJSONRequest(method, path, body string) *http.Request {
	req, _ := http.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}
