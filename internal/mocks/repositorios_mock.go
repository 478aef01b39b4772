// Package mocks contiene dobles de prueba (testify/mock) para los puertos de
// persistencia y almacenamiento.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/snti-mx/snti-api/internal/domain/entity"
	"github.com/snti-mx/snti-api/internal/domain/repository"
)

type TrabajadorRepository struct{ mock.Mock }

func (m *TrabajadorRepository) Create(ctx context.Context, t *entity.Trabajador) error {
	return m.Called(ctx, t).Error(0)
}

func (m *TrabajadorRepository) GetByID(ctx context.Context, id int) (*entity.Trabajador, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Trabajador), args.Error(1)
}

func (m *TrabajadorRepository) FindDuplicado(ctx context.Context, campos repository.CamposUnicosTrabajador) (*entity.Trabajador, error) {
	args := m.Called(ctx, campos)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Trabajador), args.Error(1)
}

func (m *TrabajadorRepository) List(ctx context.Context, limit, offset int) ([]*entity.Trabajador, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Trabajador), args.Error(1)
}

func (m *TrabajadorRepository) Update(ctx context.Context, t *entity.Trabajador) error {
	return m.Called(ctx, t).Error(0)
}

func (m *TrabajadorRepository) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type SeccionRepository struct{ mock.Mock }

func (m *SeccionRepository) Create(ctx context.Context, s *entity.Seccion) error {
	return m.Called(ctx, s).Error(0)
}

func (m *SeccionRepository) GetByID(ctx context.Context, id int) (*entity.Seccion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Seccion), args.Error(1)
}

func (m *SeccionRepository) List(ctx context.Context, limit, offset int) ([]*entity.Seccion, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Seccion), args.Error(1)
}

type DocumentoRepository struct{ mock.Mock }

func (m *DocumentoRepository) Create(ctx context.Context, d *entity.Documento) error {
	return m.Called(ctx, d).Error(0)
}

func (m *DocumentoRepository) GetByID(ctx context.Context, id int) (*entity.Documento, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Documento), args.Error(1)
}

func (m *DocumentoRepository) ListByTrabajador(ctx context.Context, trabajadorID int) ([]*entity.Documento, error) {
	args := m.Called(ctx, trabajadorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Documento), args.Error(1)
}

type HijoRepository struct{ mock.Mock }

func (m *HijoRepository) Create(ctx context.Context, h *entity.Hijo) error {
	return m.Called(ctx, h).Error(0)
}

func (m *HijoRepository) GetByID(ctx context.Context, id int) (*entity.Hijo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Hijo), args.Error(1)
}

func (m *HijoRepository) ListByTrabajador(ctx context.Context, trabajadorID int) ([]*entity.Hijo, error) {
	args := m.Called(ctx, trabajadorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Hijo), args.Error(1)
}

func (m *HijoRepository) Update(ctx context.Context, h *entity.Hijo) error {
	return m.Called(ctx, h).Error(0)
}

type UsuarioRepository struct{ mock.Mock }

func (m *UsuarioRepository) Create(ctx context.Context, u *entity.Usuario) error {
	return m.Called(ctx, u).Error(0)
}

func (m *UsuarioRepository) GetByID(ctx context.Context, id int) (*entity.Usuario, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Usuario), args.Error(1)
}

func (m *UsuarioRepository) GetByIdentificador(ctx context.Context, identificador string) (*entity.Usuario, error) {
	args := m.Called(ctx, identificador)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Usuario), args.Error(1)
}

func (m *UsuarioRepository) GetByTrabajador(ctx context.Context, trabajadorID int) (*entity.Usuario, error) {
	args := m.Called(ctx, trabajadorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Usuario), args.Error(1)
}

func (m *UsuarioRepository) RegistrarLogin(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}
