package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/snti-mx/snti-api/internal/application/dto"
	"github.com/snti-mx/snti-api/internal/domain"
	"github.com/snti-mx/snti-api/pkg/validate"
)

// respondOK envía el sobre exitoso {success:true, message, data}.
func respondOK(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(dto.OK(message, data))
}

// respondFail envía el sobre de error {success:false, message}.
func respondFail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.Fail(message))
}

// respondValidation envía el 400 de validación con la lista {campo, mensaje}.
func respondValidation(c *fiber.Ctx, errores []validate.FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.FailValidation(errores))
}

// respondDomainError traduce un error de dominio a su código HTTP. Todo lo que
// no sea un error de dominio se registra con detalle y el cliente recibe un
// mensaje genérico: el texto crudo del motor de base de datos nunca sale.
func respondDomainError(c *fiber.Ctx, err error) error {
	var dup *domain.ErrCamposDuplicados
	if errors.As(err, &dup) {
		return respondFail(c, fiber.StatusConflict,
			"Ya existe un trabajador con los siguientes datos: "+unirCampos(dup.Campos))
	}
	switch {
	case errors.Is(err, domain.ErrDuplicado):
		return respondFail(c, fiber.StatusConflict, "El recurso ya existe")
	case errors.Is(err, domain.ErrEnUso):
		return respondFail(c, fiber.StatusConflict,
			"No se puede eliminar porque está siendo utilizado en otras tablas")
	case errors.Is(err, domain.ErrNoEncontrado):
		return respondFail(c, fiber.StatusNotFound, "Recurso no encontrado")
	case errors.Is(err, domain.ErrEntradaInvalida):
		return respondFail(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrCredenciales):
		return respondFail(c, fiber.StatusUnauthorized, "Credenciales inválidas")
	case errors.Is(err, domain.ErrNoAutorizado):
		return respondFail(c, fiber.StatusUnauthorized, "No autorizado")
	case errors.Is(err, domain.ErrProhibido):
		return respondFail(c, fiber.StatusForbidden, "Acceso denegado")
	default:
		log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("error interno")
		return respondFail(c, fiber.StatusInternalServerError, "Error del servidor")
	}
}

func unirCampos(campos []string) string {
	out := ""
	for i, campo := range campos {
		if i > 0 {
			out += ", "
		}
		out += campo
	}
	return out
}
