package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/snti-mx/snti-api/internal/application/auth"
	"github.com/snti-mx/snti-api/internal/application/dto"
	"github.com/snti-mx/snti-api/pkg/validate"
)

// AuthHandler maneja cuentas de usuario, login y tokens.
type AuthHandler struct {
	uc *auth.AuthUseCase
	va *validate.Validator
}

func NewAuthHandler(uc *auth.AuthUseCase, va *validate.Validator) *AuthHandler {
	return &AuthHandler{uc: uc, va: va}
}

// CrearUsuario godoc
// @Summary      Crear cuenta de usuario
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CrearUsuarioRequest  true  "Datos de la cuenta"
// @Success      201   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/users [post]
func (h *AuthHandler) CrearUsuario(c *fiber.Ctx) error {
	var in dto.CrearUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return respondFail(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	if errores := h.va.Struct(in); errores != nil {
		return respondValidation(c, errores)
	}
	out, err := h.uc.CrearUsuario(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, fiber.StatusCreated, "Usuario creado exitosamente", out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.Response
// @Failure      401   {object}  dto.Response
// @Router       /api/users/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return respondFail(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	if errores := h.va.Struct(in); errores != nil {
		return respondValidation(c, errores)
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "Inicio de sesión exitoso", out)
}

// EmitirToken godoc
// @Summary      Emitir un token de acceso
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.Response
// @Failure      401   {object}  dto.Response
// @Router       /api/auth/token [post]
func (h *AuthHandler) EmitirToken(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return respondFail(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	if errores := h.va.Struct(in); errores != nil {
		return respondValidation(c, errores)
	}
	out, err := h.uc.EmitirToken(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "Token emitido exitosamente", out)
}

// VerificarToken godoc
// @Summary      Verificar un token de acceso
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Response
// @Failure      401  {object}  dto.Response
// @Router       /api/auth/verify [get]
func (h *AuthHandler) VerificarToken(c *fiber.Ctx) error {
	tokenString, err := bearerToken(c)
	if err != nil {
		return respondFail(c, fiber.StatusUnauthorized, err.Error())
	}
	out, err := h.uc.VerificarToken(tokenString)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "Token válido", out)
}
