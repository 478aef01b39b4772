package repository

import (
	"context"

	"github.com/snti-mx/snti-api/internal/domain/entity"
)

// HijoRepository define el puerto de persistencia para Hijo.
type HijoRepository interface {
	Create(ctx context.Context, h *entity.Hijo) error
	GetByID(ctx context.Context, id int) (*entity.Hijo, error)
	// ListByTrabajador devuelve solo hijos vigentes, con el documento del acta cargado.
	ListByTrabajador(ctx context.Context, trabajadorID int) ([]*entity.Hijo, error)
	Update(ctx context.Context, h *entity.Hijo) error
}
