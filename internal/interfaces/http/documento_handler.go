package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/snti-mx/snti-api/internal/application/usecase"
)

// DocumentoHandler consulta y descarga de documentos del expediente.
type DocumentoHandler struct {
	uc *usecase.DocumentoUseCase
}

func NewDocumentoHandler(uc *usecase.DocumentoUseCase) *DocumentoHandler {
	return &DocumentoHandler{uc: uc}
}

// ListByTrabajador godoc
// @Summary      Listar documentos de un trabajador
// @Tags         documentos
// @Produce      json
// @Security     BearerAuth
// @Param        id_trabajador  path  int  true  "ID del trabajador"
// @Success      200  {object}  dto.Response
// @Router       /api/documentos/trabajador/{id_trabajador} [get]
func (h *DocumentoHandler) ListByTrabajador(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id_trabajador")
	if err != nil || id < 1 {
		return respondFail(c, fiber.StatusBadRequest, "El ID del trabajador debe ser un número válido")
	}
	out, err := h.uc.ListByTrabajador(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "", out)
}

// Descargar godoc
// @Summary      Descargar un documento
// @Tags         documentos
// @Produce      octet-stream
// @Security     BearerAuth
// @Param        id   path  int  true  "ID del documento"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.Response
// @Router       /api/documentos/{id}/descargar [get]
func (h *DocumentoHandler) Descargar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return respondFail(c, fiber.StatusBadRequest, "El ID del documento debe ser un número válido")
	}
	out, err := h.uc.Descargar(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, out.Mimetype)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", out.NombreArchivo))
	return c.Status(fiber.StatusOK).Send(out.Contenido)
}
