package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/snti-mx/snti-api/internal/domain/entity"
	"github.com/snti-mx/snti-api/internal/domain/repository"
)

var _ repository.SeccionRepository = (*SeccionRepo)(nil)

// SeccionRepo implementación del puerto SeccionRepository sobre PostgreSQL.
type SeccionRepo struct {
	q Querier
}

// NewSeccionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSeccionRepository(q Querier) *SeccionRepo {
	return &SeccionRepo{q: q}
}

// Create inserta una sección y asigna el ID generado.
func (r *SeccionRepo) Create(ctx context.Context, s *entity.Seccion) error {
	query := `
		INSERT INTO secciones (nombre_seccion, descripcion)
		VALUES ($1, $2) RETURNING id_seccion`
	if err := r.q.QueryRow(ctx, query, s.NombreSeccion, s.Descripcion).Scan(&s.ID); err != nil {
		return fmt.Errorf("insert seccion: %w", err)
	}
	return nil
}

// GetByID obtiene una sección; nil si no existe.
func (r *SeccionRepo) GetByID(ctx context.Context, id int) (*entity.Seccion, error) {
	query := `SELECT id_seccion, nombre_seccion, descripcion FROM secciones WHERE id_seccion = $1`
	var s entity.Seccion
	err := r.q.QueryRow(ctx, query, id).Scan(&s.ID, &s.NombreSeccion, &s.Descripcion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get seccion by id: %w", err)
	}
	return &s, nil
}

// List lista secciones por nombre, con paginación.
func (r *SeccionRepo) List(ctx context.Context, limit, offset int) ([]*entity.Seccion, error) {
	query := `
		SELECT id_seccion, nombre_seccion, descripcion
		FROM secciones ORDER BY nombre_seccion LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list secciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Seccion
	for rows.Next() {
		var s entity.Seccion
		if err := rows.Scan(&s.ID, &s.NombreSeccion, &s.Descripcion); err != nil {
			return nil, fmt.Errorf("scan seccion: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
