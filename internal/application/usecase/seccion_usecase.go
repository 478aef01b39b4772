package usecase

import (
	"context"

	"github.com/snti-mx/snti-api/internal/application/dto"
	"github.com/snti-mx/snti-api/internal/domain/entity"
	"github.com/snti-mx/snti-api/internal/domain/repository"
)

// SeccionUseCase casos de uso de secciones (alta y consulta).
type SeccionUseCase struct {
	repo repository.SeccionRepository
}

// NewSeccionUseCase construye el caso de uso con el puerto de persistencia.
func NewSeccionUseCase(repo repository.SeccionRepository) *SeccionUseCase {
	return &SeccionUseCase{repo: repo}
}

// Crear crea una sección. La unicidad del nombre no se exige en esta capa.
func (uc *SeccionUseCase) Crear(ctx context.Context, in dto.CrearSeccionRequest) (*dto.SeccionResponse, error) {
	s := &entity.Seccion{
		NombreSeccion: in.NombreSeccion,
		Descripcion:   in.Descripcion,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return toSeccionResponse(s), nil
}

// GetByID obtiene una sección por ID; nil si no existe.
func (uc *SeccionUseCase) GetByID(ctx context.Context, id int) (*dto.SeccionResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	return toSeccionResponse(s), nil
}

// List lista secciones con paginación.
func (uc *SeccionUseCase) List(ctx context.Context, limit, offset int) ([]dto.SeccionResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SeccionResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSeccionResponse(s))
	}
	return items, nil
}

func toSeccionResponse(s *entity.Seccion) *dto.SeccionResponse {
	if s == nil {
		return nil
	}
	return &dto.SeccionResponse{
		ID:            s.ID,
		NombreSeccion: s.NombreSeccion,
		Descripcion:   s.Descripcion,
	}
}
