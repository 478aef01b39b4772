package repository

import (
	"context"

	"github.com/snti-mx/snti-api/internal/domain/entity"
)

// CamposUnicosTrabajador agrupa los cinco campos con constraint único para la
// verificación previa de duplicados.
type CamposUnicosTrabajador struct {
	CURP           string
	RFC            string
	Email          string
	NumeroEmpleado string
	NumeroPlaza    string
}

// TrabajadorRepository define el puerto de persistencia para Trabajador.
type TrabajadorRepository interface {
	Create(ctx context.Context, t *entity.Trabajador) error
	// GetByID devuelve el trabajador con su sección cargada, o nil si no existe.
	GetByID(ctx context.Context, id int) (*entity.Trabajador, error)
	// FindDuplicado busca un trabajador que choque con alguno de los campos
	// únicos; devuelve nil si no hay choque.
	FindDuplicado(ctx context.Context, campos CamposUnicosTrabajador) (*entity.Trabajador, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Trabajador, error)
	Update(ctx context.Context, t *entity.Trabajador) error
	// Delete es borrado físico; devuelve domain.ErrEnUso si hay filas que lo referencian.
	Delete(ctx context.Context, id int) error
}
