package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/snti-mx/snti-api/internal/domain/repository"
)

// FileStore doble del puerto de archivos.
type FileStore struct{ mock.Mock }

func (m *FileStore) Guardar(tipoDocumento, extension string, contenido []byte) (string, error) {
	args := m.Called(tipoDocumento, extension, contenido)
	return args.String(0), args.Error(1)
}

func (m *FileStore) Leer(ruta string) ([]byte, error) {
	args := m.Called(ruta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// HijoTxRunner doble del runner transaccional: ejecuta el callback en línea
// sobre los repos dobles inyectados, sin transacción real.
type HijoTxRunner struct {
	DocRepo  *DocumentoRepository
	HijoRepo *HijoRepository
	Err      error
}

func (r *HijoTxRunner) RunRegistroHijo(ctx context.Context, fn func(repository.DocumentoRepository, repository.HijoRepository) error) error {
	if r.Err != nil {
		return r.Err
	}
	return fn(r.DocRepo, r.HijoRepo)
}
