package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/snti-mx/snti-api/internal/application/dto"
	"github.com/snti-mx/snti-api/internal/application/usecase"
	"github.com/snti-mx/snti-api/pkg/validate"
)

// SeccionHandler maneja el catálogo de secciones sindicales.
type SeccionHandler struct {
	uc *usecase.SeccionUseCase
	va *validate.Validator
}

func NewSeccionHandler(uc *usecase.SeccionUseCase, va *validate.Validator) *SeccionHandler {
	return &SeccionHandler{uc: uc, va: va}
}

// Crear godoc
// @Summary      Registrar sección
// @Tags         secciones
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CrearSeccionRequest  true  "Datos de la sección"
// @Success      201   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/secciones [post]
func (h *SeccionHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearSeccionRequest
	if err := c.BodyParser(&in); err != nil {
		return respondFail(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	if errores := h.va.Struct(in); errores != nil {
		return respondValidation(c, errores)
	}
	out, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, fiber.StatusCreated, "Sección creada exitosamente", out)
}

// GetByID godoc
// @Summary      Obtener sección por ID
// @Tags         secciones
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID de la sección"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/secciones/{id} [get]
func (h *SeccionHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return respondFail(c, fiber.StatusBadRequest, "El ID de la sección debe ser un número válido")
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return respondFail(c, fiber.StatusNotFound, "Sección no encontrada")
	}
	return respondOK(c, fiber.StatusOK, "", out)
}

// List godoc
// @Summary      Listar secciones
// @Tags         secciones
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.Response
// @Router       /api/secciones [get]
func (h *SeccionHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "", out)
}
