package auth

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/snti-mx/snti-api/internal/application/dto"
	"github.com/snti-mx/snti-api/internal/domain"
	"github.com/snti-mx/snti-api/internal/domain/entity"
	"github.com/snti-mx/snti-api/internal/domain/repository"
	"github.com/snti-mx/snti-api/pkg/jwt"
)

// JWTConfig configuración para emisión de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de cuentas y sesión: alta de usuario, login y
// emisión/verificación de tokens.
type AuthUseCase struct {
	usuarioRepo    repository.UsuarioRepository
	trabajadorRepo repository.TrabajadorRepository
	jwtCfg         JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, trabajadorRepo repository.TrabajadorRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, trabajadorRepo: trabajadorRepo, jwtCfg: jwtCfg}
}

// CrearUsuario da de alta una cuenta: hashea la contraseña con bcrypt y
// persiste. El identificador es único y un trabajador admite a lo más una
// cuenta; ambos choques devuelven ErrDuplicado.
func (uc *AuthUseCase) CrearUsuario(ctx context.Context, in dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	existente, err := uc.usuarioRepo.GetByIdentificador(ctx, in.Identificador)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicado
	}

	if in.TrabajadorID != nil {
		trabajador, err := uc.trabajadorRepo.GetByID(ctx, *in.TrabajadorID)
		if err != nil {
			return nil, err
		}
		if trabajador == nil {
			return nil, fmt.Errorf("%w: el trabajador %d no existe", domain.ErrEntradaInvalida, *in.TrabajadorID)
		}
		cuenta, err := uc.usuarioRepo.GetByTrabajador(ctx, *in.TrabajadorID)
		if err != nil {
			return nil, err
		}
		if cuenta != nil {
			return nil, domain.ErrDuplicado
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Contrasena), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	rol := in.Rol
	if rol == "" {
		rol = entity.RolEmpleado
	}
	now := time.Now()
	u := &entity.Usuario{
		TrabajadorID:         in.TrabajadorID,
		Identificador:        in.Identificador,
		ContrasenaHash:       string(hash),
		Rol:                  rol,
		FechaCreacion:        now,
		UltimoCambioPassword: now,
	}
	if err := uc.usuarioRepo.Create(ctx, u); err != nil {
		return nil, err
	}
	return toUsuarioResponse(u), nil
}

// Login verifica identificador/contraseña, registra el último login y emite un
// JWT. Cualquier fallo de credenciales responde lo mismo, sin distinguir si la
// cuenta existe. Los contadores de intentos fallidos no se tocan aquí.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := uc.usuarioRepo.GetByIdentificador(ctx, in.Identificador)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrCredenciales
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.ContrasenaHash), []byte(in.Contrasena)); err != nil {
		return nil, domain.ErrCredenciales
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Identificador, u.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	if err := uc.usuarioRepo.RegistrarLogin(ctx, u.ID); err != nil {
		return nil, err
	}
	ahora := time.Now()
	u.UltimoLogin = &ahora

	return &dto.LoginResponse{Token: token, Usuario: *toUsuarioResponse(u)}, nil
}

// EmitirToken valida credenciales y devuelve solo el token con su vigencia.
func (uc *AuthUseCase) EmitirToken(ctx context.Context, in dto.LoginRequest) (*dto.TokenResponse, error) {
	out, err := uc.Login(ctx, in)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{
		Token:     out.Token,
		ExpiresIn: fmt.Sprintf("%dm", uc.jwtCfg.ExpMinutes),
	}, nil
}

// VerificarToken valida firma y expiración y devuelve los claims decodificados.
func (uc *AuthUseCase) VerificarToken(tokenString string) (*dto.ClaimsResponse, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, tokenString)
	if err != nil {
		return nil, domain.ErrNoAutorizado
	}
	id, err := claims.UsuarioID()
	if err != nil {
		return nil, domain.ErrNoAutorizado
	}
	return &dto.ClaimsResponse{
		UsuarioID:     id,
		Identificador: claims.Identificador,
		Rol:           claims.Rol,
	}, nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:                   u.ID,
		TrabajadorID:         u.TrabajadorID,
		Identificador:        u.Identificador,
		Rol:                  u.Rol,
		IntentosFallidos:     u.IntentosFallidos,
		Bloqueado:            u.Bloqueado,
		FechaCreacion:        u.FechaCreacion,
		UltimoLogin:          u.UltimoLogin,
		UltimoCambioPassword: u.UltimoCambioPassword,
	}
}
