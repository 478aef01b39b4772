package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snti-mx/snti-api/internal/domain/entity"
	apphttp "github.com/snti-mx/snti-api/internal/interfaces/http"
	pkgjwt "github.com/snti-mx/snti-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUsuarioID = 9
	testIssuer    = "snti-api-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(rolesPermitidos ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protegida",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(rolesPermitidos...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":  true,
				"rol": apphttp.GetRol(c),
			})
		},
	)
	return app
}

// tokenParaRol genera un JWT con el rol indicado.
func tokenParaRol(t *testing.T, rol string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUsuarioID, "cuenta@snti.mx", rol, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protegida y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: El usuario tiene el rol requerido → debe pasar (HTTP 200).
func TestRequireRole_AdministradorAccede(t *testing.T) {
	app := buildTestApp(entity.RolAdministrador)
	resp := doRequest(t, app, tokenParaRol(t, entity.RolAdministrador))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"Administrador debe poder acceder a ruta restringida a Administrador")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, entity.RolAdministrador, body["rol"])
}

// Caso 1b: El usuario tiene uno de los roles permitidos (multi-rol) → HTTP 200.
func TestRequireRole_RecursosHumanosAccedeRutaDeGestion(t *testing.T) {
	app := buildTestApp(entity.RolAdministrador, entity.RolRecursosHumanos)
	resp := doRequest(t, app, tokenParaRol(t, entity.RolRecursosHumanos))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"Recursos Humanos debe poder acceder a ruta que permite ambos roles de gestión")
}

// Caso 2: El usuario tiene un rol diferente al requerido → HTTP 403 Forbidden.
func TestRequireRole_EmpleadoBloqueadoEnRutaDeGestion(t *testing.T) {
	app := buildTestApp(entity.RolAdministrador, entity.RolRecursosHumanos)
	resp := doRequest(t, app, tokenParaRol(t, entity.RolEmpleado))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"Empleado no debe poder acceder a rutas de gestión")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Acceso prohibido",
		"la respuesta de error debe indicar el acceso prohibido")
}

// Caso 2b: Recursos Humanos bloqueado en ruta solo Administrador → HTTP 403.
func TestRequireRole_RecursosHumanosBloqueadoEnRutaSoloAdmin(t *testing.T) {
	app := buildTestApp(entity.RolAdministrador)
	resp := doRequest(t, app, tokenParaRol(t, entity.RolRecursosHumanos))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Caso 3: Token sin claim de rol → HTTP 401.
func TestRequireRole_TokenSinRol_Retorna401(t *testing.T) {
	app := buildTestApp(entity.RolAdministrador)
	tok, err := pkgjwt.Generate(testJWTSecret, testUsuarioID, "cuenta@snti.mx", "", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"token sin rol debe retornar 401")
}

// Caso 4: Sin header Authorization → HTTP 401.
func TestRequireRole_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(entity.RolAdministrador)
	resp := doRequest(t, app, "") // sin header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: Token inválido / malformado → HTTP 401.
func TestRequireRole_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(entity.RolAdministrador)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 6: Esquema distinto de Bearer → HTTP 401.
func TestRequireRole_EsquemaBasic_Retorna401(t *testing.T) {
	app := buildTestApp(entity.RolAdministrador)
	resp := doRequest(t, app, "Basic dXNlcjpwYXNz")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"id_usuario":    apphttp.GetUsuarioID(c),
			"identificador": apphttp.GetIdentificador(c),
			"rol":           apphttp.GetRol(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenParaRol(t, entity.RolRecursosHumanos))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(testUsuarioID), body["id_usuario"])
	assert.Equal(t, "cuenta@snti.mx", body["identificador"])
	assert.Equal(t, entity.RolRecursosHumanos, body["rol"])
}

func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	app := buildTestApp(entity.RolAdministrador)
	tok, err := pkgjwt.Generate(testJWTSecret, testUsuarioID, "cuenta@snti.mx", entity.RolAdministrador, testIssuer, -1)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
