package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/snti-mx/snti-api/pkg/jwt"
)

// Locals keys para los claims del token en Fiber.
const (
	LocalUsuarioID     = "usuario_id"
	LocalIdentificador = "identificador"
	LocalRol           = "rol"
)

// AuthMiddleware valida el Bearer Token JWT y deja los claims en c.Locals para
// los handlers y el middleware de roles. No consulta ni persiste nada.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := bearerToken(c)
		if err != nil {
			return respondFail(c, fiber.StatusUnauthorized, err.Error())
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return respondFail(c, fiber.StatusUnauthorized, "Token inválido o expirado")
		}
		id, err := claims.UsuarioID()
		if err != nil {
			return respondFail(c, fiber.StatusUnauthorized, "Token inválido o expirado")
		}
		c.Locals(LocalUsuarioID, id)
		c.Locals(LocalIdentificador, claims.Identificador)
		c.Locals(LocalRol, claims.Rol)
		return c.Next()
	}
}

// RequireRole autoriza solo a los roles listados. Debe usarse DESPUÉS de
// AuthMiddleware. Predicado puro sobre el claim y la lista declarada.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rol := GetRol(c)
		if rol == "" {
			return respondFail(c, fiber.StatusUnauthorized, "Rol no definido en el token")
		}
		for _, permitido := range roles {
			if rol == permitido {
				return c.Next()
			}
		}
		return respondFail(c, fiber.StatusForbidden, "Acceso prohibido. Rol requerido: "+strings.Join(roles, ", "))
	}
}

func bearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", errAuth("Authorization header requerido")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errAuth("Formato esperado: Bearer <token>")
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", errAuth("Token vacío")
	}
	return token, nil
}

type errAuth string

func (e errAuth) Error() string { return string(e) }

// GetUsuarioID devuelve el id de usuario del contexto (después del middleware).
func GetUsuarioID(c *fiber.Ctx) int {
	v, _ := c.Locals(LocalUsuarioID).(int)
	return v
}

// GetIdentificador devuelve el identificador del contexto.
func GetIdentificador(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalIdentificador).(string)
	return v
}

// GetRol devuelve el rol del contexto.
func GetRol(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalRol).(string)
	return v
}
