package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/snti-mx/snti-api/internal/application/dto"
	"github.com/snti-mx/snti-api/internal/application/usecase"
	"github.com/snti-mx/snti-api/internal/domain"
	"github.com/snti-mx/snti-api/internal/domain/entity"
	"github.com/snti-mx/snti-api/internal/mocks"
)

func altaValida() dto.CrearTrabajadorRequest {
	return dto.CrearTrabajadorRequest{
		Nombre:               "María",
		ApellidoPaterno:      "González",
		FechaNacimiento:      "1985-03-12",
		Sexo:                 "F",
		CURP:                 "GOGM850312MDFNNR08",
		RFC:                  "GOGM850312AB1",
		Email:                "maria.gonzalez@snti.mx",
		NumeroEmpleado:       "0000012345",
		NumeroPlaza:          "PL123456",
		FechaIngreso:         "2010-01-15",
		FechaIngresoGobierno: "2008-06-01",
		NivelPuesto:          "Operativo",
		NombrePuesto:         "Analista",
		Adscripcion:          "Oficinas Centrales",
		SeccionID:            3,
	}
}

func TestCrear_TrabajadorNuevo(t *testing.T) {
	repo := new(mocks.TrabajadorRepository)
	seccionRepo := new(mocks.SeccionRepository)
	uc := usecase.NewTrabajadorUseCase(repo, seccionRepo)

	in := altaValida()
	repo.On("FindDuplicado", mock.Anything, mock.Anything).Return(nil, nil)
	seccionRepo.On("GetByID", mock.Anything, 3).Return(&entity.Seccion{ID: 3, NombreSeccion: "Sección 3"}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Trabajador")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Trabajador).ID = 7
		}).
		Return(nil)

	out, err := uc.Crear(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, 7, out.ID)
	assert.Equal(t, "GOGM850312MDFNNR08", out.CURP)
	assert.Equal(t, "1985-03-12", out.FechaNacimiento)
	require.NotNil(t, out.Seccion)
	assert.Equal(t, "Sección 3", out.Seccion.NombreSeccion)
	repo.AssertExpectations(t)
}

func TestCrear_DuplicadoReportaCampos(t *testing.T) {
	repo := new(mocks.TrabajadorRepository)
	seccionRepo := new(mocks.SeccionRepository)
	uc := usecase.NewTrabajadorUseCase(repo, seccionRepo)

	in := altaValida()
	// El existente choca en CURP y email pero no en el resto.
	existente := &entity.Trabajador{
		ID:             1,
		CURP:           in.CURP,
		RFC:            "OTRO850312AB1",
		Email:          in.Email,
		NumeroEmpleado: "9999999999",
		NumeroPlaza:    "PL999999",
	}
	repo.On("FindDuplicado", mock.Anything, mock.Anything).Return(existente, nil)

	out, err := uc.Crear(context.Background(), in)
	assert.Nil(t, out)
	require.Error(t, err)

	var dup *domain.ErrCamposDuplicados
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, []string{"CURP", "Email"}, dup.Campos)
	assert.ErrorIs(t, err, domain.ErrDuplicado)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCrear_SeccionInexistente(t *testing.T) {
	repo := new(mocks.TrabajadorRepository)
	seccionRepo := new(mocks.SeccionRepository)
	uc := usecase.NewTrabajadorUseCase(repo, seccionRepo)

	repo.On("FindDuplicado", mock.Anything, mock.Anything).Return(nil, nil)
	seccionRepo.On("GetByID", mock.Anything, 3).Return(nil, nil)

	_, err := uc.Crear(context.Background(), altaValida())
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestActualizar_ParcialSoloCambiaLoEnviado(t *testing.T) {
	repo := new(mocks.TrabajadorRepository)
	seccionRepo := new(mocks.SeccionRepository)
	uc := usecase.NewTrabajadorUseCase(repo, seccionRepo)

	actual := &entity.Trabajador{
		ID:             5,
		Nombre:         "María",
		Email:          "maria.gonzalez@snti.mx",
		NumeroEmpleado: "0000012345",
		SeccionID:      3,
	}
	repo.On("GetByID", mock.Anything, 5).Return(actual, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*entity.Trabajador")).Return(nil)

	nuevoEmail := "maria.g@snti.mx"
	out, err := uc.Actualizar(context.Background(), 5, dto.ActualizarTrabajadorRequest{Email: &nuevoEmail})
	require.NoError(t, err)

	assert.Equal(t, "maria.g@snti.mx", out.Email)
	assert.Equal(t, "María", out.Nombre, "los campos no enviados no cambian")
	assert.False(t, out.FechaActualizacion.IsZero(), "fecha_actualizacion debe actualizarse")
	seccionRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestActualizar_NoEncontrado(t *testing.T) {
	repo := new(mocks.TrabajadorRepository)
	uc := usecase.NewTrabajadorUseCase(repo, new(mocks.SeccionRepository))

	repo.On("GetByID", mock.Anything, 99).Return(nil, nil)

	_, err := uc.Actualizar(context.Background(), 99, dto.ActualizarTrabajadorRequest{})
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}

func TestActualizar_CambioDeSeccionValidaExistencia(t *testing.T) {
	repo := new(mocks.TrabajadorRepository)
	seccionRepo := new(mocks.SeccionRepository)
	uc := usecase.NewTrabajadorUseCase(repo, seccionRepo)

	repo.On("GetByID", mock.Anything, 5).Return(&entity.Trabajador{ID: 5, SeccionID: 3}, nil)
	seccionRepo.On("GetByID", mock.Anything, 8).Return(nil, nil)

	nueva := 8
	_, err := uc.Actualizar(context.Background(), 5, dto.ActualizarTrabajadorRequest{SeccionID: &nueva})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestEliminar_EnUsoConservaElRegistro(t *testing.T) {
	repo := new(mocks.TrabajadorRepository)
	uc := usecase.NewTrabajadorUseCase(repo, new(mocks.SeccionRepository))

	repo.On("GetByID", mock.Anything, 5).Return(&entity.Trabajador{ID: 5}, nil)
	repo.On("Delete", mock.Anything, 5).Return(domain.ErrEnUso)

	err := uc.Eliminar(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrEnUso)
}

func TestEliminar_NoEncontrado(t *testing.T) {
	repo := new(mocks.TrabajadorRepository)
	uc := usecase.NewTrabajadorUseCase(repo, new(mocks.SeccionRepository))

	repo.On("GetByID", mock.Anything, 99).Return(nil, nil)

	err := uc.Eliminar(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestList_PropagaErrorDelRepositorio(t *testing.T) {
	repo := new(mocks.TrabajadorRepository)
	uc := usecase.NewTrabajadorUseCase(repo, new(mocks.SeccionRepository))

	fallo := errors.New("conexión perdida")
	repo.On("List", mock.Anything, 20, 0).Return(nil, fallo)

	_, err := uc.List(context.Background(), 20, 0)
	assert.ErrorIs(t, err, fallo)
}
