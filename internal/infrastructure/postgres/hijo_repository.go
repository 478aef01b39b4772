package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/snti-mx/snti-api/internal/domain/entity"
	"github.com/snti-mx/snti-api/internal/domain/repository"
)

var _ repository.HijoRepository = (*HijoRepo)(nil)

// HijoRepo implementación del puerto HijoRepository sobre PostgreSQL.
type HijoRepo struct {
	q Querier
}

// NewHijoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewHijoRepository(q Querier) *HijoRepo {
	return &HijoRepo{q: q}
}

// Create inserta un hijo y asigna el ID generado. El documento del acta debe
// existir ya (misma transacción en el alta).
func (r *HijoRepo) Create(ctx context.Context, h *entity.Hijo) error {
	query := `
		INSERT INTO hijos (
			id_trabajador, nombre, apellido_paterno, apellido_materno,
			fecha_nacimiento, acta_nacimiento_id, vigente, fecha_registro
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id_hijo`
	err := r.q.QueryRow(ctx, query,
		h.TrabajadorID, h.Nombre, h.ApellidoPaterno, h.ApellidoMaterno,
		h.FechaNacimiento, h.ActaNacimientoID, h.Vigente, h.FechaRegistro,
	).Scan(&h.ID)
	if err != nil {
		return fmt.Errorf("insert hijo: %w", err)
	}
	return nil
}

// GetByID obtiene un hijo sin filtrar por vigencia; nil si no existe.
func (r *HijoRepo) GetByID(ctx context.Context, id int) (*entity.Hijo, error) {
	query := `
		SELECT id_hijo, id_trabajador, nombre, apellido_paterno, apellido_materno,
			fecha_nacimiento, acta_nacimiento_id, vigente, fecha_registro
		FROM hijos WHERE id_hijo = $1`
	var h entity.Hijo
	err := r.q.QueryRow(ctx, query, id).Scan(
		&h.ID, &h.TrabajadorID, &h.Nombre, &h.ApellidoPaterno, &h.ApellidoMaterno,
		&h.FechaNacimiento, &h.ActaNacimientoID, &h.Vigente, &h.FechaRegistro,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get hijo by id: %w", err)
	}
	return &h, nil
}

// ListByTrabajador lista los hijos vigentes de un trabajador con los metadatos
// del acta de nacimiento cargados.
func (r *HijoRepo) ListByTrabajador(ctx context.Context, trabajadorID int) ([]*entity.Hijo, error) {
	query := `
		SELECT h.id_hijo, h.id_trabajador, h.nombre, h.apellido_paterno,
			h.apellido_materno, h.fecha_nacimiento, h.acta_nacimiento_id,
			h.vigente, h.fecha_registro,
			d.tipo_documento, d.nombre_archivo, d.hash_archivo, d.tipo_archivo,
			d.ruta_almacenamiento, d.tamano_bytes, d.mimetype, d.fecha_subida
		FROM hijos h
		JOIN documentos d ON d.id_documento = h.acta_nacimiento_id
		WHERE h.id_trabajador = $1 AND h.vigente = true
		ORDER BY h.fecha_nacimiento`
	rows, err := r.q.Query(ctx, query, trabajadorID)
	if err != nil {
		return nil, fmt.Errorf("list hijos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Hijo
	for rows.Next() {
		var h entity.Hijo
		var d entity.Documento
		if err := rows.Scan(
			&h.ID, &h.TrabajadorID, &h.Nombre, &h.ApellidoPaterno,
			&h.ApellidoMaterno, &h.FechaNacimiento, &h.ActaNacimientoID,
			&h.Vigente, &h.FechaRegistro,
			&d.TipoDocumento, &d.NombreArchivo, &d.HashArchivo, &d.TipoArchivo,
			&d.RutaAlmacenamiento, &d.TamanoBytes, &d.Mimetype, &d.FechaSubida,
		); err != nil {
			return nil, fmt.Errorf("scan hijo: %w", err)
		}
		d.ID = h.ActaNacimientoID
		d.TrabajadorID = h.TrabajadorID
		h.ActaNacimiento = &d
		list = append(list, &h)
	}
	return list, rows.Err()
}

// Update sobreescribe los campos mutables del hijo, incluida la referencia al
// acta (reapuntada cuando hay documento nuevo) y la vigencia.
func (r *HijoRepo) Update(ctx context.Context, h *entity.Hijo) error {
	query := `
		UPDATE hijos SET
			nombre = $2, apellido_paterno = $3, apellido_materno = $4,
			fecha_nacimiento = $5, acta_nacimiento_id = $6, vigente = $7
		WHERE id_hijo = $1`
	_, err := r.q.Exec(ctx, query,
		h.ID, h.Nombre, h.ApellidoPaterno, h.ApellidoMaterno,
		h.FechaNacimiento, h.ActaNacimientoID, h.Vigente,
	)
	if err != nil {
		return fmt.Errorf("update hijo: %w", err)
	}
	return nil
}
