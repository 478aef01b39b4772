package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/snti-mx/snti-api/internal/domain/entity"
	"github.com/snti-mx/snti-api/internal/domain/repository"
)

var _ repository.DocumentoRepository = (*DocumentoRepo)(nil)

// DocumentoRepo implementación del puerto DocumentoRepository sobre PostgreSQL.
type DocumentoRepo struct {
	q Querier
}

// NewDocumentoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentoRepository(q Querier) *DocumentoRepo {
	return &DocumentoRepo{q: q}
}

// Create inserta la fila de metadatos del documento y asigna el ID generado.
func (r *DocumentoRepo) Create(ctx context.Context, d *entity.Documento) error {
	query := `
		INSERT INTO documentos (
			id_trabajador, tipo_documento, nombre_archivo, hash_archivo,
			descripcion, tipo_archivo, ruta_almacenamiento, tamano_bytes,
			es_publico, mimetype, metadata, fecha_subida
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id_documento`
	err := r.q.QueryRow(ctx, query,
		d.TrabajadorID, d.TipoDocumento, d.NombreArchivo, d.HashArchivo,
		d.Descripcion, d.TipoArchivo, d.RutaAlmacenamiento, d.TamanoBytes,
		d.EsPublico, d.Mimetype, d.Metadata, d.FechaSubida,
	).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("insert documento: %w", err)
	}
	return nil
}

// GetByID obtiene un documento; nil si no existe.
func (r *DocumentoRepo) GetByID(ctx context.Context, id int) (*entity.Documento, error) {
	query := `
		SELECT id_documento, id_trabajador, tipo_documento, nombre_archivo,
			hash_archivo, descripcion, tipo_archivo, ruta_almacenamiento,
			tamano_bytes, es_publico, mimetype, metadata, fecha_subida
		FROM documentos WHERE id_documento = $1`
	d, err := scanDocumento(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get documento by id: %w", err)
	}
	return d, nil
}

// ListByTrabajador lista los documentos de un trabajador, recientes primero.
func (r *DocumentoRepo) ListByTrabajador(ctx context.Context, trabajadorID int) ([]*entity.Documento, error) {
	query := `
		SELECT id_documento, id_trabajador, tipo_documento, nombre_archivo,
			hash_archivo, descripcion, tipo_archivo, ruta_almacenamiento,
			tamano_bytes, es_publico, mimetype, metadata, fecha_subida
		FROM documentos WHERE id_trabajador = $1 ORDER BY fecha_subida DESC`
	rows, err := r.q.Query(ctx, query, trabajadorID)
	if err != nil {
		return nil, fmt.Errorf("list documentos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Documento
	for rows.Next() {
		d, err := scanDocumento(rows)
		if err != nil {
			return nil, fmt.Errorf("scan documento: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func scanDocumento(row pgx.Row) (*entity.Documento, error) {
	var d entity.Documento
	var descripcion *string
	err := row.Scan(
		&d.ID, &d.TrabajadorID, &d.TipoDocumento, &d.NombreArchivo,
		&d.HashArchivo, &descripcion, &d.TipoArchivo, &d.RutaAlmacenamiento,
		&d.TamanoBytes, &d.EsPublico, &d.Mimetype, &d.Metadata, &d.FechaSubida,
	)
	if err != nil {
		return nil, err
	}
	if descripcion != nil {
		d.Descripcion = *descripcion
	}
	return &d, nil
}
