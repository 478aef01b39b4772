package http

import (
	"io"
	"mime/multipart"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"

	"github.com/snti-mx/snti-api/internal/application/dto"
	"github.com/snti-mx/snti-api/internal/application/usecase"
	"github.com/snti-mx/snti-api/pkg/validate"
)

// HijoHandler maneja el registro de hijos con su acta de nacimiento adjunta.
type HijoHandler struct {
	uc      *usecase.HijoUseCase
	va      *validate.Validator
	maxSize int64
}

// NewHijoHandler construye el handler; maxSize acota el tamaño del acta en bytes.
func NewHijoHandler(uc *usecase.HijoUseCase, va *validate.Validator, maxSize int64) *HijoHandler {
	return &HijoHandler{uc: uc, va: va, maxSize: maxSize}
}

// Registrar godoc
// @Summary      Registrar hijo con acta de nacimiento
// @Tags         hijos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id_trabajador    formData  int     true  "ID del trabajador"
// @Param        nombre           formData  string  true  "Nombre"
// @Param        apellido_paterno formData  string  true  "Apellido paterno"
// @Param        apellido_materno formData  string  true  "Apellido materno"
// @Param        fecha_nacimiento formData  string  true  "Fecha de nacimiento (YYYY-MM-DD)"
// @Param        acta_nacimiento  formData  file    true  "Acta de nacimiento (PDF, JPEG o PNG)"
// @Success      201  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Router       /api/hijos [post]
func (h *HijoHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarHijoRequest
	if err := c.BodyParser(&in); err != nil {
		return respondFail(c, fiber.StatusBadRequest, "Formulario inválido")
	}
	if errores := h.va.Struct(in); errores != nil {
		return respondValidation(c, errores)
	}
	acta, msg := h.leerActa(c)
	if msg != "" {
		return respondFail(c, fiber.StatusBadRequest, msg)
	}
	out, err := h.uc.Registrar(c.Context(), in, *acta)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, fiber.StatusCreated, "Hijo registrado exitosamente", out)
}

// ListByTrabajador godoc
// @Summary      Listar hijos vigentes de un trabajador
// @Tags         hijos
// @Produce      json
// @Security     BearerAuth
// @Param        id_trabajador  path  int  true  "ID del trabajador"
// @Success      200  {object}  dto.Response
// @Router       /api/hijos/trabajador/{id_trabajador} [get]
func (h *HijoHandler) ListByTrabajador(c *fiber.Ctx) error {
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

// Actualizar godoc
// @Summary      Actualizar hijo (parcial, acta opcional)
// @Tags         hijos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id_hijo          path      int     true   "ID del hijo"
// @Param        nombre           formData  string  false  "Nombre"
// @Param        apellido_paterno formData  string  false  "Apellido paterno"
// @Param        apellido_materno formData  string  false  "Apellido materno"
// @Param        fecha_nacimiento formData  string  false  "Fecha de nacimiento (YYYY-MM-DD)"
// @Param        acta_nacimiento  formData  file    false  "Acta de nacimiento nueva"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/hijos/{id_hijo} [put]
func (h *HijoHandler) Actualizar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id_hijo")
	if err != nil || id < 1 {
		return respondFail(c, fiber.StatusBadRequest, "El ID del hijo debe ser un número válido")
	}
	var in dto.ActualizarHijoRequest
	if err := c.BodyParser(&in); err != nil {
		return respondFail(c, fiber.StatusBadRequest, "Formulario inválido")
	}
	if errores := h.va.Struct(in); errores != nil {
		return respondValidation(c, errores)
	}

	var acta *dto.ArchivoSubido
	if _, err := c.FormFile("acta_nacimiento"); err == nil {
		var msg string
		acta, msg = h.leerActa(c)
		if msg != "" {
			return respondFail(c, fiber.StatusBadRequest, msg)
		}
	}

	out, err := h.uc.Actualizar(c.Context(), id, in, acta)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "Hijo actualizado exitosamente", out)
}

// Baja godoc
// @Summary      Dar de baja a un hijo
// @Tags         hijos
// @Produce      json
// @Security     BearerAuth
// @Param        id_hijo  path  int  true  "ID del hijo"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/hijos/{id_hijo} [delete]
func (h *HijoHandler) Baja(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id_hijo")
	if err != nil || id < 1 {
		return respondFail(c, fiber.StatusBadRequest, "El ID del hijo debe ser un número válido")
	}
	if err := h.uc.Baja(c.Context(), id); err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "Hijo dado de baja exitosamente", nil)
}

// leerActa extrae el archivo "acta_nacimiento" del multipart, acota su tamaño
// y detecta el MIME real sobre el contenido, no sobre lo que declare el cliente.
func (h *HijoHandler) leerActa(c *fiber.Ctx) (*dto.ArchivoSubido, string) {
	fh, err := c.FormFile("acta_nacimiento")
	if err != nil {
		return nil, "El acta de nacimiento es requerida (campo acta_nacimiento)"
	}
	if fh.Size > h.maxSize {
		return nil, "El acta de nacimiento excede el tamaño máximo permitido"
	}
	contenido, err := leerArchivo(fh)
	if err != nil {
		return nil, "No se pudo leer el acta de nacimiento"
	}
	return &dto.ArchivoSubido{
		NombreOriginal: fh.Filename,
		Mimetype:       mimetype.Detect(contenido).String(),
		Contenido:      contenido,
	}, ""
}

func leerArchivo(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
