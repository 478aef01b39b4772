package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/snti-mx/snti-api/internal/application/auth"
	"github.com/snti-mx/snti-api/internal/application/dto"
	"github.com/snti-mx/snti-api/internal/domain"
	"github.com/snti-mx/snti-api/internal/domain/entity"
	"github.com/snti-mx/snti-api/internal/mocks"
	pkgjwt "github.com/snti-mx/snti-api/pkg/jwt"
)

var testJWT = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "snti-api-test"}

func hashDe(t *testing.T, contrasena string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(contrasena), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestCrearUsuario_HasheaYNoExponeLaContrasena(t *testing.T) {
	usuarioRepo := new(mocks.UsuarioRepository)
	uc := auth.NewAuthUseCase(usuarioRepo, new(mocks.TrabajadorRepository), testJWT)

	usuarioRepo.On("GetByIdentificador", mock.Anything, "admin@snti.mx").Return(nil, nil)
	usuarioRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.Usuario) bool {
		// Nunca se persiste la contraseña en claro.
		return u.ContrasenaHash != "secreta-123" &&
			bcrypt.CompareHashAndPassword([]byte(u.ContrasenaHash), []byte("secreta-123")) == nil
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Usuario).ID = 9
	}).Return(nil)

	out, err := uc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Identificador: "admin@snti.mx",
		Contrasena:    "secreta-123",
		Rol:           entity.RolAdministrador,
	})
	require.NoError(t, err)

	assert.Equal(t, 9, out.ID)
	assert.Equal(t, entity.RolAdministrador, out.Rol)
	usuarioRepo.AssertExpectations(t)
}

func TestCrearUsuario_SinRolAsignaEmpleado(t *testing.T) {
	usuarioRepo := new(mocks.UsuarioRepository)
	uc := auth.NewAuthUseCase(usuarioRepo, new(mocks.TrabajadorRepository), testJWT)

	usuarioRepo.On("GetByIdentificador", mock.Anything, "emp@snti.mx").Return(nil, nil)
	usuarioRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	out, err := uc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Identificador: "emp@snti.mx",
		Contrasena:    "secreta-123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RolEmpleado, out.Rol)
}

func TestCrearUsuario_IdentificadorDuplicado(t *testing.T) {
	usuarioRepo := new(mocks.UsuarioRepository)
	uc := auth.NewAuthUseCase(usuarioRepo, new(mocks.TrabajadorRepository), testJWT)

	usuarioRepo.On("GetByIdentificador", mock.Anything, "admin@snti.mx").
		Return(&entity.Usuario{ID: 1, Identificador: "admin@snti.mx"}, nil)

	_, err := uc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Identificador: "admin@snti.mx",
		Contrasena:    "secreta-123",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicado)
	usuarioRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCrearUsuario_UnaCuentaPorTrabajador(t *testing.T) {
	usuarioRepo := new(mocks.UsuarioRepository)
	trabRepo := new(mocks.TrabajadorRepository)
	uc := auth.NewAuthUseCase(usuarioRepo, trabRepo, testJWT)

	trabajadorID := 5
	usuarioRepo.On("GetByIdentificador", mock.Anything, "maria@snti.mx").Return(nil, nil)
	trabRepo.On("GetByID", mock.Anything, 5).Return(&entity.Trabajador{ID: 5}, nil)
	usuarioRepo.On("GetByTrabajador", mock.Anything, 5).
		Return(&entity.Usuario{ID: 2, TrabajadorID: &trabajadorID}, nil)

	_, err := uc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		TrabajadorID:  &trabajadorID,
		Identificador: "maria@snti.mx",
		Contrasena:    "secreta-123",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicado)
}

func TestCrearUsuario_TrabajadorInexistente(t *testing.T) {
	usuarioRepo := new(mocks.UsuarioRepository)
	trabRepo := new(mocks.TrabajadorRepository)
	uc := auth.NewAuthUseCase(usuarioRepo, trabRepo, testJWT)

	trabajadorID := 99
	usuarioRepo.On("GetByIdentificador", mock.Anything, "x@snti.mx").Return(nil, nil)
	trabRepo.On("GetByID", mock.Anything, 99).Return(nil, nil)

	_, err := uc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		TrabajadorID:  &trabajadorID,
		Identificador: "x@snti.mx",
		Contrasena:    "secreta-123",
	})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestLogin_CredencialesCorrectasEmiteToken(t *testing.T) {
	usuarioRepo := new(mocks.UsuarioRepository)
	uc := auth.NewAuthUseCase(usuarioRepo, new(mocks.TrabajadorRepository), testJWT)

	usuarioRepo.On("GetByIdentificador", mock.Anything, "admin@snti.mx").Return(&entity.Usuario{
		ID:             9,
		Identificador:  "admin@snti.mx",
		ContrasenaHash: hashDe(t, "secreta-123"),
		Rol:            entity.RolAdministrador,
	}, nil)
	usuarioRepo.On("RegistrarLogin", mock.Anything, 9).Return(nil)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Identificador: "admin@snti.mx",
		Contrasena:    "secreta-123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	claims, err := pkgjwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	id, err := claims.UsuarioID()
	require.NoError(t, err)
	assert.Equal(t, 9, id)
	assert.Equal(t, "admin@snti.mx", claims.Identificador)
	assert.Equal(t, entity.RolAdministrador, claims.Rol)
	assert.NotNil(t, out.Usuario.UltimoLogin)
	usuarioRepo.AssertExpectations(t)
}

func TestLogin_ContrasenaIncorrecta(t *testing.T) {
	usuarioRepo := new(mocks.UsuarioRepository)
	uc := auth.NewAuthUseCase(usuarioRepo, new(mocks.TrabajadorRepository), testJWT)

	usuarioRepo.On("GetByIdentificador", mock.Anything, "admin@snti.mx").Return(&entity.Usuario{
		ID:             9,
		ContrasenaHash: hashDe(t, "secreta-123"),
	}, nil)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Identificador: "admin@snti.mx",
		Contrasena:    "otra",
	})
	assert.ErrorIs(t, err, domain.ErrCredenciales)
	usuarioRepo.AssertNotCalled(t, "RegistrarLogin", mock.Anything, mock.Anything)
}

func TestLogin_CuentaInexistenteMismoError(t *testing.T) {
	usuarioRepo := new(mocks.UsuarioRepository)
	uc := auth.NewAuthUseCase(usuarioRepo, new(mocks.TrabajadorRepository), testJWT)

	usuarioRepo.On("GetByIdentificador", mock.Anything, "nadie@snti.mx").Return(nil, nil)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Identificador: "nadie@snti.mx",
		Contrasena:    "lo-que-sea",
	})
	// Cuenta inexistente y contraseña incorrecta responden idéntico.
	assert.ErrorIs(t, err, domain.ErrCredenciales)
}

func TestEmitirToken_RequiereCredenciales(t *testing.T) {
	usuarioRepo := new(mocks.UsuarioRepository)
	uc := auth.NewAuthUseCase(usuarioRepo, new(mocks.TrabajadorRepository), testJWT)

	usuarioRepo.On("GetByIdentificador", mock.Anything, "admin@snti.mx").Return(&entity.Usuario{
		ID:             9,
		Identificador:  "admin@snti.mx",
		ContrasenaHash: hashDe(t, "secreta-123"),
		Rol:            entity.RolAdministrador,
	}, nil)
	usuarioRepo.On("RegistrarLogin", mock.Anything, 9).Return(nil)

	out, err := uc.EmitirToken(context.Background(), dto.LoginRequest{
		Identificador: "admin@snti.mx",
		Contrasena:    "secreta-123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "60m", out.ExpiresIn)
}

func TestVerificarToken_ValidoDevuelveClaims(t *testing.T) {
	uc := auth.NewAuthUseCase(new(mocks.UsuarioRepository), new(mocks.TrabajadorRepository), testJWT)

	tok, err := pkgjwt.Generate(testJWT.Secret, 9, "admin@snti.mx", entity.RolAdministrador, testJWT.Issuer, testJWT.ExpMinutes)
	require.NoError(t, err)

	out, err := uc.VerificarToken(tok)
	require.NoError(t, err)
	assert.Equal(t, 9, out.UsuarioID)
	assert.Equal(t, "admin@snti.mx", out.Identificador)
	assert.Equal(t, entity.RolAdministrador, out.Rol)
}

func TestVerificarToken_InvalidoRetorna401(t *testing.T) {
	uc := auth.NewAuthUseCase(new(mocks.UsuarioRepository), new(mocks.TrabajadorRepository), testJWT)

	_, err := uc.VerificarToken("token.invalido.aqui")
	assert.ErrorIs(t, err, domain.ErrNoAutorizado)
}
