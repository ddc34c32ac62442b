package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Hotel-api/internal/application/dto"
	"github.com/jhoicas/Hotel-api/internal/application/usecase"
)

// GuestHandler maneja las peticiones HTTP de huéspedes (protegido).
type GuestHandler struct {
	uc *usecase.GuestUseCase
}

// NewGuestHandler construye el handler.
func NewGuestHandler(uc *usecase.GuestUseCase) *GuestHandler {
	return &GuestHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar huésped
// @Tags         guests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateGuestRequest  true  "Datos del huésped"
// @Success      201   {object}  dto.GuestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/guests [post]
func (h *GuestHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGuestRequest
	if !bindJSON(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar huéspedes
// @Tags         guests
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Nombre, email o documento"
// @Param        limit   query  int     false  "Límite (default 20)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.GuestListResponse
// @Router       /api/guests [get]
func (h *GuestHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	if !check(c, &page) {
		return nil
	}
	out, err := h.uc.List(c.UserContext(), c.Query("search"), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /api/guests/:id
func (h *GuestHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "huésped")
	}
	return c.JSON(out)
}

// Update PUT /api/guests/:id
func (h *GuestHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.UpdateGuestRequest
	if !bindJSON(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "huésped")
	}
	return c.JSON(out)
}

// Delete DELETE /api/guests/:id. 409 si el huésped tiene reservas o documentos.
func (h *GuestHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
