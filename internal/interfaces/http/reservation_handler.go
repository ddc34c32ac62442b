package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Hotel-api/internal/application/dto"
	"github.com/jhoicas/Hotel-api/internal/application/reservation"
)

// ReservationHandler cotización, disponibilidad y ciclo de vida de reservas.
type ReservationHandler struct {
	uc  *reservation.UseCase
	pdf *reservation.PDFUseCase
}

// NewReservationHandler construye el handler.
func NewReservationHandler(uc *reservation.UseCase, pdf *reservation.PDFUseCase) *ReservationHandler {
	return &ReservationHandler{uc: uc, pdf: pdf}
}

// Quote godoc
// @Summary      Cotizar estadía
// @Description  noches × tarifa + impuesto. Si falta alguna fecha devuelve la cotización en cero.
// @Tags         reservations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.QuoteRequest  true  "Fechas y tipo de habitación o habitación"
// @Success      200   {object}  dto.QuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reservations/quote [post]
func (h *ReservationHandler) Quote(c *fiber.Ctx) error {
	var in dto.QuoteRequest
	if !bindJSON(c, &in) {
		return nil
	}
	out, err := h.uc.Quote(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Availability godoc
// @Summary      Buscar habitaciones libres
// @Tags         reservations
// @Security     Bearer
// @Produce      json
// @Param        check_in       query  string  true   "YYYY-MM-DD"
// @Param        check_out      query  string  true   "YYYY-MM-DD"
// @Param        min_occupancy  query  int     false  "Capacidad mínima"
// @Param        room_type_id   query  string  false  "Tipo de habitación"
// @Success      200  {object}  dto.AvailabilityResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reservations/availability [get]
func (h *ReservationHandler) Availability(c *fiber.Ctx) error {
	var in dto.AvailabilityRequest
	if !bindQuery(c, &in) {
		return nil
	}
	out, err := h.uc.FindAvailable(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RoomAvailability GET /api/rooms/:id/availability?check_in=&check_out=&exclude=
func (h *ReservationHandler) RoomAvailability(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	out, err := h.uc.CheckRoom(c.UserContext(), id, c.Query("check_in"), c.Query("check_out"), c.Query("exclude"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear reserva
// @Tags         reservations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReservationRequest  true  "Huésped, habitación, fechas y ocupación"
// @Success      201   {object}  dto.ReservationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "habitación no disponible"
// @Router       /api/reservations [post]
func (h *ReservationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReservationRequest
	if !bindJSON(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/reservations?status=&guest_id=&room_id=&from=&to=&limit=&offset=
func (h *ReservationHandler) List(c *fiber.Ctx) error {
	var in dto.ReservationListRequest
	if !bindQuery(c, &in) {
		return nil
	}
	out, err := h.uc.List(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *ReservationHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "reserva")
	}
	return c.JSON(out)
}

// Update PUT /api/reservations/:id. Solo reservas pendientes o confirmadas.
func (h *ReservationHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.UpdateReservationRequest
	if !bindJSON(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "reserva")
	}
	return c.JSON(out)
}

// Cancel POST /api/reservations/:id/cancel
func (h *ReservationHandler) Cancel(c *fiber.Ctx) error {
	return h.transition(c, h.uc.Cancel)
}

// CheckIn POST /api/reservations/:id/check-in
func (h *ReservationHandler) CheckIn(c *fiber.Ctx) error {
	return h.transition(c, h.uc.CheckIn)
}

// CheckOut POST /api/reservations/:id/check-out
func (h *ReservationHandler) CheckOut(c *fiber.Ctx) error {
	return h.transition(c, h.uc.CheckOut)
}

// ConfirmationPDF godoc
// @Summary      Descargar confirmación de reserva en PDF
// @Tags         reservations
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la reserva"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse  "reserva cancelada"
// @Router       /api/reservations/{id}/confirmation.pdf [get]
func (h *ReservationHandler) ConfirmationPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	data, filename, err := h.pdf.DownloadConfirmationPDF(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(data)
}

func (h *ReservationHandler) transition(c *fiber.Ctx, fn func(ctx context.Context, id string) (*dto.ReservationResponse, error)) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	out, err := fn(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "reserva")
	}
	return c.JSON(out)
}
