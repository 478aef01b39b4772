package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/snti-mx/snti-api/internal/domain"
	"github.com/snti-mx/snti-api/internal/domain/entity"
	"github.com/snti-mx/snti-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

const columnasUsuario = `
	id_usuario, id_trabajador, identificador, contrasena_hash, rol,
	intentos_fallidos, bloqueado, fecha_creacion, ultimo_login,
	ultimo_cambio_password`

// Create inserta una cuenta y asigna el ID generado. Identificador o
// trabajador repetidos (carrera contra la verificación previa) devuelven
// domain.ErrDuplicado.
func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (
			id_trabajador, identificador, contrasena_hash, rol,
			intentos_fallidos, bloqueado, fecha_creacion, ultimo_cambio_password
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id_usuario`
	err := r.q.QueryRow(ctx, query,
		u.TrabajadorID, u.Identificador, u.ContrasenaHash, u.Rol,
		u.IntentosFallidos, u.Bloqueado, u.FechaCreacion, u.UltimoCambioPassword,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta; nil si no existe.
func (r *UsuarioRepo) GetByID(ctx context.Context, id int) (*entity.Usuario, error) {
	return r.getBy(ctx, `WHERE id_usuario = $1`, id)
}

// GetByIdentificador obtiene una cuenta por su identificador de acceso.
func (r *UsuarioRepo) GetByIdentificador(ctx context.Context, identificador string) (*entity.Usuario, error) {
	return r.getBy(ctx, `WHERE identificador = $1`, identificador)
}

// GetByTrabajador obtiene la cuenta ligada a un trabajador, si la hay.
func (r *UsuarioRepo) GetByTrabajador(ctx context.Context, trabajadorID int) (*entity.Usuario, error) {
	return r.getBy(ctx, `WHERE id_trabajador = $1`, trabajadorID)
}

func (r *UsuarioRepo) getBy(ctx context.Context, where string, arg any) (*entity.Usuario, error) {
	query := `SELECT ` + columnasUsuario + ` FROM usuarios ` + where
	var u entity.Usuario
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.TrabajadorID, &u.Identificador, &u.ContrasenaHash, &u.Rol,
		&u.IntentosFallidos, &u.Bloqueado, &u.FechaCreacion, &u.UltimoLogin,
		&u.UltimoCambioPassword,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// RegistrarLogin marca el momento del último inicio de sesión exitoso.
func (r *UsuarioRepo) RegistrarLogin(ctx context.Context, id int) error {
	_, err := r.q.Exec(ctx, `UPDATE usuarios SET ultimo_login = now() WHERE id_usuario = $1`, id)
	if err != nil {
		return fmt.Errorf("registrar login: %w", err)
	}
	return nil
}
