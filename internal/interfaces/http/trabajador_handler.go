package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/snti-mx/snti-api/internal/application/dto"
	"github.com/snti-mx/snti-api/internal/application/usecase"
	"github.com/snti-mx/snti-api/pkg/validate"
)

// TrabajadorHandler maneja las peticiones HTTP del expediente de trabajadores.
type TrabajadorHandler struct {
	uc *usecase.TrabajadorUseCase
	va *validate.Validator
}

// NewTrabajadorHandler construye el handler inyectando caso de uso y validador.
func NewTrabajadorHandler(uc *usecase.TrabajadorUseCase, va *validate.Validator) *TrabajadorHandler {
	return &TrabajadorHandler{uc: uc, va: va}
}

// Crear godoc
// @Summary      Registrar trabajador
// @Tags         trabajadores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CrearTrabajadorRequest  true  "Datos del trabajador"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/trabajadores [post]
func (h *TrabajadorHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearTrabajadorRequest
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
	return respondOK(c, fiber.StatusCreated, "Trabajador creado exitosamente", out)
}

// GetByID godoc
// @Summary      Obtener trabajador por ID
// @Tags         trabajadores
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID del trabajador"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/trabajadores/{id} [get]
func (h *TrabajadorHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return respondFail(c, fiber.StatusBadRequest, "El ID del trabajador debe ser un número válido")
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return respondFail(c, fiber.StatusNotFound, "Trabajador no encontrado")
	}
	return respondOK(c, fiber.StatusOK, "", out)
}

// List godoc
// @Summary      Listar trabajadores
// @Tags         trabajadores
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.Response
// @Router       /api/trabajadores [get]
func (h *TrabajadorHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "", out)
}

// Actualizar godoc
// @Summary      Actualizar trabajador (parcial)
// @Tags         trabajadores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                              true  "ID del trabajador"
// @Param        body  body  dto.ActualizarTrabajadorRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/trabajadores/{id} [patch]
func (h *TrabajadorHandler) Actualizar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return respondFail(c, fiber.StatusBadRequest, "El ID del trabajador debe ser un número válido")
	}
	var in dto.ActualizarTrabajadorRequest
	if err := c.BodyParser(&in); err != nil {
		return respondFail(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	if errores := h.va.Struct(in); errores != nil {
		return respondValidation(c, errores)
	}
	out, err := h.uc.Actualizar(c.Context(), id, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "Trabajador actualizado exitosamente", out)
}

// Eliminar godoc
// @Summary      Eliminar trabajador
// @Tags         trabajadores
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID del trabajador"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      409  {object}  dto.Response
// @Router       /api/trabajadores/{id} [delete]
func (h *TrabajadorHandler) Eliminar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return respondFail(c, fiber.StatusBadRequest, "El ID del trabajador debe ser un número válido")
	}
	if err := h.uc.Eliminar(c.Context(), id); err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "Trabajador eliminado exitosamente", nil)
}
