package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/snti-mx/snti-api/internal/domain"
	"github.com/snti-mx/snti-api/internal/domain/entity"
	"github.com/snti-mx/snti-api/internal/domain/repository"
)

var _ repository.TrabajadorRepository = (*TrabajadorRepo)(nil)

// TrabajadorRepo implementación del puerto TrabajadorRepository sobre PostgreSQL.
type TrabajadorRepo struct {
	q Querier
}

// NewTrabajadorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTrabajadorRepository(q Querier) *TrabajadorRepo {
	return &TrabajadorRepo{q: q}
}

const columnasTrabajador = `
	id_trabajador, nombre, apellido_paterno, apellido_materno, fecha_nacimiento,
	sexo, curp, rfc, email, situacion_sentimental, numero_hijos, numero_empleado,
	numero_plaza, fecha_ingreso, fecha_ingreso_gobierno, nivel_puesto,
	nombre_puesto, puesto_inpi, adscripcion, id_seccion, nivel_estudios,
	institucion_estudios, certificado_estudios, plaza_base, fecha_registro,
	fecha_actualizacion`

// Create inserta un trabajador y asigna el ID generado.
// Una violación de unicidad (carrera contra la verificación previa) se
// traduce a domain.ErrDuplicado.
func (r *TrabajadorRepo) Create(ctx context.Context, t *entity.Trabajador) error {
	query := `
		INSERT INTO trabajadores (
			nombre, apellido_paterno, apellido_materno, fecha_nacimiento, sexo,
			curp, rfc, email, situacion_sentimental, numero_hijos, numero_empleado,
			numero_plaza, fecha_ingreso, fecha_ingreso_gobierno, nivel_puesto,
			nombre_puesto, puesto_inpi, adscripcion, id_seccion, nivel_estudios,
			institucion_estudios, certificado_estudios, plaza_base, fecha_registro,
			fecha_actualizacion
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
		RETURNING id_trabajador`
	err := r.q.QueryRow(ctx, query,
		t.Nombre, t.ApellidoPaterno, t.ApellidoMaterno, t.FechaNacimiento, t.Sexo,
		t.CURP, t.RFC, t.Email, t.SituacionSentimental, t.NumeroHijos, t.NumeroEmpleado,
		t.NumeroPlaza, t.FechaIngreso, t.FechaIngresoGobierno, t.NivelPuesto,
		t.NombrePuesto, t.PuestoINPI, t.Adscripcion, t.SeccionID, t.NivelEstudios,
		t.InstitucionEstudios, t.CertificadoEstudios, t.PlazaBase, t.FechaRegistro,
		t.FechaActualizacion,
	).Scan(&t.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert trabajador: %w", err)
	}
	return nil
}

// GetByID obtiene un trabajador con su sección cargada; nil si no existe.
func (r *TrabajadorRepo) GetByID(ctx context.Context, id int) (*entity.Trabajador, error) {
	query := `
		SELECT t.id_trabajador, t.nombre, t.apellido_paterno, t.apellido_materno,
			t.fecha_nacimiento, t.sexo, t.curp, t.rfc, t.email,
			t.situacion_sentimental, t.numero_hijos, t.numero_empleado,
			t.numero_plaza, t.fecha_ingreso, t.fecha_ingreso_gobierno,
			t.nivel_puesto, t.nombre_puesto, t.puesto_inpi, t.adscripcion,
			t.id_seccion, t.nivel_estudios, t.institucion_estudios,
			t.certificado_estudios, t.plaza_base, t.fecha_registro,
			t.fecha_actualizacion,
			s.nombre_seccion, s.descripcion
		FROM trabajadores t
		JOIN secciones s ON s.id_seccion = t.id_seccion
		WHERE t.id_trabajador = $1`
	var t entity.Trabajador
	var seccion entity.Seccion
	err := r.q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Nombre, &t.ApellidoPaterno, &t.ApellidoMaterno,
		&t.FechaNacimiento, &t.Sexo, &t.CURP, &t.RFC, &t.Email,
		&t.SituacionSentimental, &t.NumeroHijos, &t.NumeroEmpleado,
		&t.NumeroPlaza, &t.FechaIngreso, &t.FechaIngresoGobierno,
		&t.NivelPuesto, &t.NombrePuesto, &t.PuestoINPI, &t.Adscripcion,
		&t.SeccionID, &t.NivelEstudios, &t.InstitucionEstudios,
		&t.CertificadoEstudios, &t.PlazaBase, &t.FechaRegistro,
		&t.FechaActualizacion,
		&seccion.NombreSeccion, &seccion.Descripcion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get trabajador by id: %w", err)
	}
	seccion.ID = t.SeccionID
	t.Seccion = &seccion
	return &t, nil
}

// FindDuplicado busca un trabajador que coincida en cualquiera de los campos
// únicos; nil si no hay choque.
func (r *TrabajadorRepo) FindDuplicado(ctx context.Context, campos repository.CamposUnicosTrabajador) (*entity.Trabajador, error) {
	query := `
		SELECT ` + columnasTrabajador + `
		FROM trabajadores
		WHERE curp = $1 OR rfc = $2 OR email = $3 OR numero_empleado = $4 OR numero_plaza = $5
		LIMIT 1`
	row := r.q.QueryRow(ctx, query,
		campos.CURP, campos.RFC, campos.Email, campos.NumeroEmpleado, campos.NumeroPlaza,
	)
	t, err := scanTrabajador(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find trabajador duplicado: %w", err)
	}
	return t, nil
}

// List lista trabajadores por fecha de registro descendente, con paginación.
func (r *TrabajadorRepo) List(ctx context.Context, limit, offset int) ([]*entity.Trabajador, error) {
	query := `
		SELECT ` + columnasTrabajador + `
		FROM trabajadores ORDER BY fecha_registro DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list trabajadores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Trabajador
	for rows.Next() {
		t, err := scanTrabajador(rows)
		if err != nil {
			return nil, fmt.Errorf("scan trabajador: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Update sobreescribe todos los campos mutables del trabajador.
func (r *TrabajadorRepo) Update(ctx context.Context, t *entity.Trabajador) error {
	query := `
		UPDATE trabajadores SET
			nombre = $2, apellido_paterno = $3, apellido_materno = $4,
			fecha_nacimiento = $5, sexo = $6, curp = $7, rfc = $8, email = $9,
			situacion_sentimental = $10, numero_hijos = $11, numero_empleado = $12,
			numero_plaza = $13, fecha_ingreso = $14, fecha_ingreso_gobierno = $15,
			nivel_puesto = $16, nombre_puesto = $17, puesto_inpi = $18,
			adscripcion = $19, id_seccion = $20, nivel_estudios = $21,
			institucion_estudios = $22, certificado_estudios = $23, plaza_base = $24,
			fecha_actualizacion = $25
		WHERE id_trabajador = $1`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.Nombre, t.ApellidoPaterno, t.ApellidoMaterno,
		t.FechaNacimiento, t.Sexo, t.CURP, t.RFC, t.Email,
		t.SituacionSentimental, t.NumeroHijos, t.NumeroEmpleado,
		t.NumeroPlaza, t.FechaIngreso, t.FechaIngresoGobierno,
		t.NivelPuesto, t.NombrePuesto, t.PuestoINPI,
		t.Adscripcion, t.SeccionID, t.NivelEstudios,
		t.InstitucionEstudios, t.CertificadoEstudios, t.PlazaBase,
		t.FechaActualizacion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("update trabajador: %w", err)
	}
	return nil
}

// Delete borra físicamente. Si hijos, documentos o usuarios lo referencian,
// la violación de llave foránea se traduce a domain.ErrEnUso.
func (r *TrabajadorRepo) Delete(ctx context.Context, id int) error {
	_, err := r.q.Exec(ctx, `DELETE FROM trabajadores WHERE id_trabajador = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrEnUso
		}
		return fmt.Errorf("delete trabajador: %w", err)
	}
	return nil
}

func scanTrabajador(row pgx.Row) (*entity.Trabajador, error) {
	var t entity.Trabajador
	err := row.Scan(
		&t.ID, &t.Nombre, &t.ApellidoPaterno, &t.ApellidoMaterno, &t.FechaNacimiento,
		&t.Sexo, &t.CURP, &t.RFC, &t.Email, &t.SituacionSentimental, &t.NumeroHijos,
		&t.NumeroEmpleado, &t.NumeroPlaza, &t.FechaIngreso, &t.FechaIngresoGobierno,
		&t.NivelPuesto, &t.NombrePuesto, &t.PuestoINPI, &t.Adscripcion, &t.SeccionID,
		&t.NivelEstudios, &t.InstitucionEstudios, &t.CertificadoEstudios, &t.PlazaBase,
		&t.FechaRegistro, &t.FechaActualizacion,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
