package repository

import (
	"context"

	"github.com/snti-mx/snti-api/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para Usuario.
type UsuarioRepository interface {
	Create(ctx context.Context, u *entity.Usuario) error
	GetByID(ctx context.Context, id int) (*entity.Usuario, error)
	GetByIdentificador(ctx context.Context, identificador string) (*entity.Usuario, error)
	GetByTrabajador(ctx context.Context, trabajadorID int) (*entity.Usuario, error)
	// RegistrarLogin actualiza ultimo_login del usuario.
	RegistrarLogin(ctx context.Context, id int) error
}
