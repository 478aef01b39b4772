package repository

import (
	"context"

	"github.com/snti-mx/snti-api/internal/domain/entity"
)

// SeccionRepository define el puerto de persistencia para Seccion.
type SeccionRepository interface {
	Create(ctx context.Context, s *entity.Seccion) error
	GetByID(ctx context.Context, id int) (*entity.Seccion, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Seccion, error)
}
