package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Hotel-api/internal/application/document"
	"github.com/jhoicas/Hotel-api/internal/application/dto"
)

// DocumentHandler documentos de identidad de huéspedes guardados en el almacenamiento de objetos.
type DocumentHandler struct {
	uc *document.UseCase
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(uc *document.UseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// Upload godoc
// @Summary      Subir documento del huésped
// @Description  multipart/form-data con el campo "file" (pdf, jpeg, png o webp).
// @Tags         documents
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      string  true  "ID del huésped"
// @Param        file  formData  file    true  "Documento"
// @Success      201   {object}  dto.GuestDocumentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/guests/{id}/documents [post]
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	guestID := c.Params("id")
	if guestID == "" {
		return missingID(c)
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "el campo file es requerido"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}
	defer f.Close()

	contentType := fh.Header.Get("Content-Type")
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	out, err := h.uc.Upload(c.UserContext(), document.Upload{
		GuestID:     guestID,
		FileName:    fh.Filename,
		ContentType: strings.TrimSpace(strings.ToLower(contentType)),
		Size:        fh.Size,
		Body:        f,
		UploadedBy:  GetUserID(c),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/guests/:id/documents
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	guestID := c.Params("id")
	if guestID == "" {
		return missingID(c)
	}
	out, err := h.uc.ListByGuest(c.UserContext(), guestID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SignedURL GET /api/documents/:id/url
func (h *DocumentHandler) SignedURL(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	out, err := h.uc.SignedURL(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/documents/:id
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
