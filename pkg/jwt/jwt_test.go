package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/snti-mx/snti-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "snti-api-test"
	testExpMin = 60
)

func TestGenerateAndParse_ConRol(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 42, "admin@snti.mx", "Administrador", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	id, err := claims.UsuarioID()
	require.NoError(t, err)
	assert.Equal(t, 42, id)
	assert.Equal(t, "admin@snti.mx", claims.Identificador)
	assert.Equal(t, "Administrador", claims.Rol)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestParse_TokenExpirado_RetornaError(t *testing.T) {
	// Expiración -1 minuto: el token nace vencido.
	tok, err := pkgjwt.Generate(testSecret, 1, "rh@snti.mx", "Recursos Humanos", testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 1, "rh@snti.mx", "Empleado", testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err, "firma con otro secret no debe validar")
}

func TestParse_TokenMalformado_RetornaError(t *testing.T) {
	_, err := pkgjwt.Parse(testSecret, "no.es.un-jwt")
	assert.Error(t, err)
}

func TestGenerate_SecretVacio_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate("", 1, "x", "Empleado", testIssuer, testExpMin)
	assert.Error(t, err)
}
