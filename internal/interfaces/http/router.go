package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/Hotel-api/internal/application/analytics"
	"github.com/jhoicas/Hotel-api/internal/application/auth"
	"github.com/jhoicas/Hotel-api/internal/application/document"
	"github.com/jhoicas/Hotel-api/internal/application/export"
	"github.com/jhoicas/Hotel-api/internal/application/reservation"
	"github.com/jhoicas/Hotel-api/internal/application/usecase"
	"github.com/jhoicas/Hotel-api/internal/domain/authz"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	UserUC         *usecase.UserUseCase
	RoomTypeUC     *usecase.RoomTypeUseCase
	RoomUC         *usecase.RoomUseCase
	GuestUC        *usecase.GuestUseCase
	DocumentUC     *document.UseCase
	ReservationUC  *reservation.UseCase
	ReservationPDF *reservation.PDFUseCase
	DashboardUC    *appanalytics.DashboardUseCase
	ExportUC       *export.UseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Post("/auth/register", RequirePermission(authz.PermUsersManage), authHandler.Register)

	// Perfil y evaluación de permisos del actor
	protected.Get("/me", authHandler.Me)
	protected.Post("/me/permissions/check", authHandler.CheckPermissions)
	protected.Get("/me/routes", authHandler.RouteAccess)

	// Users
	users := protected.Group("/users", RequirePermission(authz.PermUsersView))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)

	// Room types
	roomTypes := protected.Group("/room-types")
	roomTypeHandler := NewRoomTypeHandler(deps.RoomTypeUC)
	roomTypes.Get("/", RequirePermission(authz.PermRoomTypesView), roomTypeHandler.List)
	roomTypes.Get("/:id", RequirePermission(authz.PermRoomTypesView), roomTypeHandler.GetByID)
	roomTypes.Post("/", RequirePermission(authz.PermRoomTypesManage), roomTypeHandler.Create)
	roomTypes.Put("/:id", RequirePermission(authz.PermRoomTypesManage), roomTypeHandler.Update)
	roomTypes.Delete("/:id", RequirePermission(authz.PermRoomTypesManage), roomTypeHandler.Delete)

	// Rooms; housekeeping ve el listado y solo cambia el estado
	rooms := protected.Group("/rooms")
	roomHandler := NewRoomHandler(deps.RoomUC)
	reservationHandler := NewReservationHandler(deps.ReservationUC, deps.ReservationPDF)
	canSeeRooms := RequirePermission(authz.PermRoomsView, authz.PermHousekeepingView)
	rooms.Get("/", canSeeRooms, roomHandler.List)
	rooms.Get("/:id", canSeeRooms, roomHandler.GetByID)
	rooms.Get("/:id/availability", RequirePermission(authz.PermReservationsView), reservationHandler.RoomAvailability)
	rooms.Post("/", RequirePermission(authz.PermRoomsCreate), roomHandler.Create)
	rooms.Put("/:id", RequirePermission(authz.PermRoomsUpdate), roomHandler.Update)
	rooms.Patch("/:id/status", RequirePermission(authz.PermRoomsUpdateStatus), roomHandler.UpdateStatus)
	rooms.Delete("/:id", RequirePermission(authz.PermRoomsDelete), roomHandler.Delete)

	// Guests y documentos
	guests := protected.Group("/guests")
	guestHandler := NewGuestHandler(deps.GuestUC)
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	guests.Get("/", RequirePermission(authz.PermGuestsView), guestHandler.List)
	guests.Get("/:id", RequirePermission(authz.PermGuestsView), guestHandler.GetByID)
	guests.Post("/", RequirePermission(authz.PermGuestsCreate), guestHandler.Create)
	guests.Put("/:id", RequirePermission(authz.PermGuestsUpdate), guestHandler.Update)
	guests.Delete("/:id", RequirePermission(authz.PermGuestsDelete), guestHandler.Delete)
	guests.Get("/:id/documents", RequirePermission(authz.PermDocumentsView), documentHandler.List)
	guests.Post("/:id/documents", RequirePermission(authz.PermDocumentsUpload), documentHandler.Upload)

	documents := protected.Group("/documents")
	documents.Get("/:id/url", RequirePermission(authz.PermDocumentsView), documentHandler.SignedURL)
	documents.Delete("/:id", RequirePermission(authz.PermDocumentsDelete), documentHandler.Delete)

	// Reservations
	reservations := protected.Group("/reservations")
	canSeeReservations := RequirePermission(authz.PermReservationsView)
	reservations.Post("/quote", canSeeReservations, reservationHandler.Quote)
	reservations.Get("/availability", canSeeReservations, reservationHandler.Availability)
	reservations.Get("/", canSeeReservations, reservationHandler.List)
	reservations.Get("/:id", canSeeReservations, reservationHandler.GetByID)
	reservations.Get("/:id/confirmation.pdf", canSeeReservations, reservationHandler.ConfirmationPDF)
	reservations.Post("/", RequirePermission(authz.PermReservationsCreate), reservationHandler.Create)
	reservations.Put("/:id", RequirePermission(authz.PermReservationsUpdate), reservationHandler.Update)
	reservations.Post("/:id/cancel", RequirePermission(authz.PermReservationsCancel), reservationHandler.Cancel)
	reservations.Post("/:id/check-in", RequirePermission(authz.PermReservationsCheckIn), reservationHandler.CheckIn)
	reservations.Post("/:id/check-out", RequirePermission(authz.PermReservationsCheckOut), reservationHandler.CheckOut)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", RequireRoute(authz.RouteDashboard), dashboardHandler.GetSummary)

	// Exports
	exportHandler := NewExportHandler(deps.ExportUC)
	protected.Get("/exports/:dataset", RequirePermission(authz.PermReportsExport), exportHandler.Export)
}
