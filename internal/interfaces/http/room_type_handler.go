package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Hotel-api/internal/application/dto"
	"github.com/jhoicas/Hotel-api/internal/application/usecase"
)

// RoomTypeHandler tarifas y capacidades por tipo de habitación.
type RoomTypeHandler struct {
	uc *usecase.RoomTypeUseCase
}

// NewRoomTypeHandler construye el handler.
func NewRoomTypeHandler(uc *usecase.RoomTypeUseCase) *RoomTypeHandler {
	return &RoomTypeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tipo de habitación
// @Tags         room-types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRoomTypeRequest  true  "Nombre, tarifa y capacidad"
// @Success      201   {object}  dto.RoomTypeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/room-types [post]
func (h *RoomTypeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRoomTypeRequest
	if !bindJSON(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/room-types?active=true
func (h *RoomTypeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.QueryBool("active", false))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *RoomTypeHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "tipo de habitación")
	}
	return c.JSON(out)
}

func (h *RoomTypeHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.UpdateRoomTypeRequest
	if !bindJSON(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "tipo de habitación")
	}
	return c.JSON(out)
}

// Delete falla con 409 si alguna habitación usa el tipo.
func (h *RoomTypeHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
