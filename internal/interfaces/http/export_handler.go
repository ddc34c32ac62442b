package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Hotel-api/internal/application/export"
)

// Cabeceras con el resumen de la exportación.
const (
	HeaderExportRows      = "X-Export-Rows"
	HeaderExportTruncated = "X-Export-Truncated"
)

// ExportHandler descarga de conjuntos de datos como archivo.
type ExportHandler struct {
	uc *export.UseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *export.UseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Export godoc
// @Summary      Exportar conjunto de datos
// @Tags         exports
// @Security     Bearer
// @Produce      text/csv
// @Produce      application/json
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        dataset   path   string  true   "rooms | guests | reservations"
// @Param        format    query  string  false  "csv (default) | json | xlsx"
// @Param        filename  query  string  false  "Nombre del archivo sin extensión"
// @Success      200  {file}    binary  "X-Export-Truncated: true si se alcanzó el tope de filas"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/exports/{dataset} [get]
func (h *ExportHandler) Export(c *fiber.Ctx) error {
	file, err := h.uc.Export(c.UserContext(),
		export.Dataset(c.Params("dataset")),
		export.Format(c.Query("format")),
		c.Query("filename"),
	)
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(file.Name)
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(HeaderExportRows, strconv.Itoa(file.Rows))
	if file.Truncated {
		c.Set(HeaderExportTruncated, "true")
	}
	return c.Send(file.Data)
}
