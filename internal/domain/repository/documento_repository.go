package repository

import (
	"context"

	"github.com/snti-mx/snti-api/internal/domain/entity"
)

// DocumentoRepository define el puerto de persistencia para Documento.
// Los documentos no se actualizan ni se borran: una nueva versión es una fila nueva.
type DocumentoRepository interface {
	Create(ctx context.Context, d *entity.Documento) error
	GetByID(ctx context.Context, id int) (*entity.Documento, error)
	ListByTrabajador(ctx context.Context, trabajadorID int) ([]*entity.Documento, error)
}
