package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/snti-mx/snti-api/internal/application/dto"
	"github.com/snti-mx/snti-api/internal/domain"
	"github.com/snti-mx/snti-api/internal/domain/entity"
	"github.com/snti-mx/snti-api/internal/domain/repository"
)

const fechaISO = "2006-01-02"

// TrabajadorUseCase aplica las reglas de negocio del expediente de trabajadores.
type TrabajadorUseCase struct {
	repo        repository.TrabajadorRepository
	seccionRepo repository.SeccionRepository
}

// NewTrabajadorUseCase construye el caso de uso con sus puertos de persistencia.
func NewTrabajadorUseCase(repo repository.TrabajadorRepository, seccionRepo repository.SeccionRepository) *TrabajadorUseCase {
	return &TrabajadorUseCase{repo: repo, seccionRepo: seccionRepo}
}

// Crear registra un trabajador. Verifica primero los cinco campos únicos para
// reportar exactamente cuáles chocan; la carrera contra otra petición la
// resuelve el constraint (el repo traduce 23505 a ErrDuplicado).
func (uc *TrabajadorUseCase) Crear(ctx context.Context, in dto.CrearTrabajadorRequest) (*dto.TrabajadorResponse, error) {
	existente, err := uc.repo.FindDuplicado(ctx, repository.CamposUnicosTrabajador{
		CURP:           in.CURP,
		RFC:            in.RFC,
		Email:          in.Email,
		NumeroEmpleado: in.NumeroEmpleado,
		NumeroPlaza:    in.NumeroPlaza,
	})
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, &domain.ErrCamposDuplicados{Campos: camposDuplicados(existente, in)}
	}

	seccion, err := uc.seccionRepo.GetByID(ctx, in.SeccionID)
	if err != nil {
		return nil, err
	}
	if seccion == nil {
		return nil, fmt.Errorf("%w: la sección %d no existe", domain.ErrEntradaInvalida, in.SeccionID)
	}

	now := time.Now()
	t := &entity.Trabajador{
		Nombre:               in.Nombre,
		ApellidoPaterno:      in.ApellidoPaterno,
		ApellidoMaterno:      in.ApellidoMaterno,
		FechaNacimiento:      parseFecha(in.FechaNacimiento),
		Sexo:                 in.Sexo,
		CURP:                 in.CURP,
		RFC:                  in.RFC,
		Email:                in.Email,
		SituacionSentimental: in.SituacionSentimental,
		NumeroEmpleado:       in.NumeroEmpleado,
		NumeroPlaza:          in.NumeroPlaza,
		FechaIngreso:         parseFecha(in.FechaIngreso),
		FechaIngresoGobierno: parseFecha(in.FechaIngresoGobierno),
		NivelPuesto:          in.NivelPuesto,
		NombrePuesto:         in.NombrePuesto,
		PuestoINPI:           in.PuestoINPI,
		Adscripcion:          in.Adscripcion,
		SeccionID:            in.SeccionID,
		NivelEstudios:        in.NivelEstudios,
		InstitucionEstudios:  in.InstitucionEstudios,
		CertificadoEstudios:  in.CertificadoEstudios,
		PlazaBase:            in.PlazaBase,
		FechaRegistro:        now,
		FechaActualizacion:   now,
	}
	if in.NumeroHijos != nil {
		t.NumeroHijos = *in.NumeroHijos
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	t.Seccion = seccion
	return toTrabajadorResponse(t), nil
}

// GetByID obtiene un trabajador con su sección; nil si no existe.
func (uc *TrabajadorUseCase) GetByID(ctx context.Context, id int) (*dto.TrabajadorResponse, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	return toTrabajadorResponse(t), nil
}

// List lista trabajadores con paginación.
func (uc *TrabajadorUseCase) List(ctx context.Context, limit, offset int) (*dto.TrabajadorListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TrabajadorResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTrabajadorResponse(t))
	}
	return &dto.TrabajadorListResponse{Items: items, Limit: limit, Offset: offset}, nil
}

// Actualizar aplica un PATCH parcial: solo los campos enviados cambian y
// fecha_actualizacion se actualiza siempre.
func (uc *TrabajadorUseCase) Actualizar(ctx context.Context, id int, in dto.ActualizarTrabajadorRequest) (*dto.TrabajadorResponse, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNoEncontrado
	}

	if in.SeccionID != nil && *in.SeccionID != t.SeccionID {
		seccion, err := uc.seccionRepo.GetByID(ctx, *in.SeccionID)
		if err != nil {
			return nil, err
		}
		if seccion == nil {
			return nil, fmt.Errorf("%w: la sección %d no existe", domain.ErrEntradaInvalida, *in.SeccionID)
		}
		t.SeccionID = *in.SeccionID
		t.Seccion = seccion
	}

	aplicarCambios(t, in)
	t.FechaActualizacion = time.Now()

	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return toTrabajadorResponse(t), nil
}

// Eliminar borra físicamente un trabajador. Si hijos, documentos o usuarios lo
// referencian, el repo devuelve ErrEnUso y la fila queda intacta.
func (uc *TrabajadorUseCase) Eliminar(ctx context.Context, id int) error {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNoEncontrado
	}
	return uc.repo.Delete(ctx, id)
}

func aplicarCambios(t *entity.Trabajador, in dto.ActualizarTrabajadorRequest) {
	if in.Nombre != nil {
		t.Nombre = *in.Nombre
	}
	if in.ApellidoPaterno != nil {
		t.ApellidoPaterno = *in.ApellidoPaterno
	}
	if in.ApellidoMaterno != nil {
		t.ApellidoMaterno = in.ApellidoMaterno
	}
	if in.FechaNacimiento != nil {
		t.FechaNacimiento = parseFecha(*in.FechaNacimiento)
	}
	if in.Sexo != nil {
		t.Sexo = *in.Sexo
	}
	if in.CURP != nil {
		t.CURP = *in.CURP
	}
	if in.RFC != nil {
		t.RFC = *in.RFC
	}
	if in.Email != nil {
		t.Email = *in.Email
	}
	if in.SituacionSentimental != nil {
		t.SituacionSentimental = in.SituacionSentimental
	}
	if in.NumeroHijos != nil {
		t.NumeroHijos = *in.NumeroHijos
	}
	if in.NumeroEmpleado != nil {
		t.NumeroEmpleado = *in.NumeroEmpleado
	}
	if in.NumeroPlaza != nil {
		t.NumeroPlaza = *in.NumeroPlaza
	}
	if in.FechaIngreso != nil {
		t.FechaIngreso = parseFecha(*in.FechaIngreso)
	}
	if in.FechaIngresoGobierno != nil {
		t.FechaIngresoGobierno = parseFecha(*in.FechaIngresoGobierno)
	}
	if in.NivelPuesto != nil {
		t.NivelPuesto = *in.NivelPuesto
	}
	if in.NombrePuesto != nil {
		t.NombrePuesto = *in.NombrePuesto
	}
	if in.PuestoINPI != nil {
		t.PuestoINPI = in.PuestoINPI
	}
	if in.Adscripcion != nil {
		t.Adscripcion = *in.Adscripcion
	}
	if in.NivelEstudios != nil {
		t.NivelEstudios = in.NivelEstudios
	}
	if in.InstitucionEstudios != nil {
		t.InstitucionEstudios = in.InstitucionEstudios
	}
	if in.CertificadoEstudios != nil {
		t.CertificadoEstudios = in.CertificadoEstudios
	}
	if in.PlazaBase != nil {
		t.PlazaBase = in.PlazaBase
	}
}

// camposDuplicados nombra los campos únicos del request que coinciden con el
// registro existente, para el mensaje del 409.
func camposDuplicados(existente *entity.Trabajador, in dto.CrearTrabajadorRequest) []string {
	var campos []string
	if existente.CURP == in.CURP {
		campos = append(campos, "CURP")
	}
	if existente.RFC == in.RFC {
		campos = append(campos, "RFC")
	}
	if existente.Email == in.Email {
		campos = append(campos, "Email")
	}
	if existente.NumeroEmpleado == in.NumeroEmpleado {
		campos = append(campos, "Número de empleado")
	}
	if existente.NumeroPlaza == in.NumeroPlaza {
		campos = append(campos, "Número de plaza")
	}
	return campos
}

// parseFecha asume formato ya validado con datetime=2006-01-02.
func parseFecha(s string) time.Time {
	t, _ := time.Parse(fechaISO, s)
	return t
}

func toTrabajadorResponse(t *entity.Trabajador) *dto.TrabajadorResponse {
	if t == nil {
		return nil
	}
	resp := &dto.TrabajadorResponse{
		ID:                   t.ID,
		Nombre:               t.Nombre,
		ApellidoPaterno:      t.ApellidoPaterno,
		ApellidoMaterno:      t.ApellidoMaterno,
		FechaNacimiento:      t.FechaNacimiento.Format(fechaISO),
		Sexo:                 t.Sexo,
		CURP:                 t.CURP,
		RFC:                  t.RFC,
		Email:                t.Email,
		SituacionSentimental: t.SituacionSentimental,
		NumeroHijos:          t.NumeroHijos,
		NumeroEmpleado:       t.NumeroEmpleado,
		NumeroPlaza:          t.NumeroPlaza,
		FechaIngreso:         t.FechaIngreso.Format(fechaISO),
		FechaIngresoGobierno: t.FechaIngresoGobierno.Format(fechaISO),
		NivelPuesto:          t.NivelPuesto,
		NombrePuesto:         t.NombrePuesto,
		PuestoINPI:           t.PuestoINPI,
		Adscripcion:          t.Adscripcion,
		SeccionID:            t.SeccionID,
		NivelEstudios:        t.NivelEstudios,
		InstitucionEstudios:  t.InstitucionEstudios,
		CertificadoEstudios:  t.CertificadoEstudios,
		PlazaBase:            t.PlazaBase,
		FechaRegistro:        t.FechaRegistro,
		FechaActualizacion:   t.FechaActualizacion,
	}
	if t.Seccion != nil {
		resp.Seccion = &dto.SeccionResponse{
			ID:            t.Seccion.ID,
			NombreSeccion: t.Seccion.NombreSeccion,
			Descripcion:   t.Seccion.Descripcion,
		}
	}
	return resp
}
