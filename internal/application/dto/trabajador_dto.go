package dto

import "time"

// CrearTrabajadorRequest entrada para registrar un trabajador. Las reglas
// replican las del registro original: CURP de 18, RFC de 13, fechas ISO, etc.
type CrearTrabajadorRequest struct {
	Nombre               string  `json:"nombre" validate:"required,max=100"`
	ApellidoPaterno      string  `json:"apellido_paterno" validate:"required,max=100"`
	ApellidoMaterno      *string `json:"apellido_materno" validate:"omitempty,max=100"`
	FechaNacimiento      string  `json:"fecha_nacimiento" validate:"required,datetime=2006-01-02"`
	Sexo                 string  `json:"sexo" validate:"required,oneof=M F"`
	CURP                 string  `json:"curp" validate:"required,len=18,curp"`
	RFC                  string  `json:"rfc" validate:"required,len=13,rfc"`
	Email                string  `json:"email" validate:"required,email,max=150"`
	SituacionSentimental *string `json:"situacion_sentimental" validate:"omitempty,oneof=Soltero Casado Divorciado Viudo 'Union Libre'"`
	NumeroHijos          *int    `json:"numero_hijos" validate:"omitempty,gte=0"`
	NumeroEmpleado       string  `json:"numero_empleado" validate:"required,len=10"`
	NumeroPlaza          string  `json:"numero_plaza" validate:"required,len=8"`
	FechaIngreso         string  `json:"fecha_ingreso" validate:"required,datetime=2006-01-02"`
	FechaIngresoGobierno string  `json:"fecha_ingreso_gobierno" validate:"required,datetime=2006-01-02"`
	NivelPuesto          string  `json:"nivel_puesto" validate:"required,max=50"`
	NombrePuesto         string  `json:"nombre_puesto" validate:"required,max=100"`
	PuestoINPI           *string `json:"puesto_inpi" validate:"omitempty,max=100"`
	Adscripcion          string  `json:"adscripcion" validate:"required,max=100"`
	SeccionID            int     `json:"id_seccion" validate:"required,gte=1"`
	NivelEstudios        *string `json:"nivel_estudios" validate:"omitempty,max=100"`
	InstitucionEstudios  *string `json:"institucion_estudios" validate:"omitempty,max=200"`
	CertificadoEstudios  *bool   `json:"certificado_estudios"`
	PlazaBase            *string `json:"plaza_base" validate:"omitempty,max=10"`
}

// ActualizarTrabajadorRequest entrada para el PATCH parcial: mismas reglas
// que el alta pero todos los campos opcionales.
type ActualizarTrabajadorRequest struct {
	Nombre               *string `json:"nombre" validate:"omitempty,max=100"`
	ApellidoPaterno      *string `json:"apellido_paterno" validate:"omitempty,max=100"`
	ApellidoMaterno      *string `json:"apellido_materno" validate:"omitempty,max=100"`
	FechaNacimiento      *string `json:"fecha_nacimiento" validate:"omitempty,datetime=2006-01-02"`
	Sexo                 *string `json:"sexo" validate:"omitempty,oneof=M F"`
	CURP                 *string `json:"curp" validate:"omitempty,len=18,curp"`
	RFC                  *string `json:"rfc" validate:"omitempty,len=13,rfc"`
	Email                *string `json:"email" validate:"omitempty,email,max=150"`
	SituacionSentimental *string `json:"situacion_sentimental" validate:"omitempty,oneof=Soltero Casado Divorciado Viudo 'Union Libre'"`
	NumeroHijos          *int    `json:"numero_hijos" validate:"omitempty,gte=0"`
	NumeroEmpleado       *string `json:"numero_empleado" validate:"omitempty,len=10"`
	NumeroPlaza          *string `json:"numero_plaza" validate:"omitempty,len=8"`
	FechaIngreso         *string `json:"fecha_ingreso" validate:"omitempty,datetime=2006-01-02"`
	FechaIngresoGobierno *string `json:"fecha_ingreso_gobierno" validate:"omitempty,datetime=2006-01-02"`
	NivelPuesto          *string `json:"nivel_puesto" validate:"omitempty,max=50"`
	NombrePuesto         *string `json:"nombre_puesto" validate:"omitempty,max=100"`
	PuestoINPI           *string `json:"puesto_inpi" validate:"omitempty,max=100"`
	Adscripcion          *string `json:"adscripcion" validate:"omitempty,max=100"`
	SeccionID            *int    `json:"id_seccion" validate:"omitempty,gte=1"`
	NivelEstudios        *string `json:"nivel_estudios" validate:"omitempty,max=100"`
	InstitucionEstudios  *string `json:"institucion_estudios" validate:"omitempty,max=200"`
	CertificadoEstudios  *bool   `json:"certificado_estudios"`
	PlazaBase            *string `json:"plaza_base" validate:"omitempty,max=10"`
}

// TrabajadorResponse salida de un trabajador, con su sección si fue cargada.
type TrabajadorResponse struct {
	ID                   int              `json:"id_trabajador"`
	Nombre               string           `json:"nombre"`
	ApellidoPaterno      string           `json:"apellido_paterno"`
	ApellidoMaterno      *string          `json:"apellido_materno,omitempty"`
	FechaNacimiento      string           `json:"fecha_nacimiento"`
	Sexo                 string           `json:"sexo"`
	CURP                 string           `json:"curp"`
	RFC                  string           `json:"rfc"`
	Email                string           `json:"email"`
	SituacionSentimental *string          `json:"situacion_sentimental,omitempty"`
	NumeroHijos          int              `json:"numero_hijos"`
	NumeroEmpleado       string           `json:"numero_empleado"`
	NumeroPlaza          string           `json:"numero_plaza"`
	FechaIngreso         string           `json:"fecha_ingreso"`
	FechaIngresoGobierno string           `json:"fecha_ingreso_gobierno"`
	NivelPuesto          string           `json:"nivel_puesto"`
	NombrePuesto         string           `json:"nombre_puesto"`
	PuestoINPI           *string          `json:"puesto_inpi,omitempty"`
	Adscripcion          string           `json:"adscripcion"`
	SeccionID            int              `json:"id_seccion"`
	NivelEstudios        *string          `json:"nivel_estudios,omitempty"`
	InstitucionEstudios  *string          `json:"institucion_estudios,omitempty"`
	CertificadoEstudios  *bool            `json:"certificado_estudios,omitempty"`
	PlazaBase            *string          `json:"plaza_base,omitempty"`
	FechaRegistro        time.Time        `json:"fecha_registro"`
	FechaActualizacion   time.Time        `json:"fecha_actualizacion"`
	Seccion              *SeccionResponse `json:"seccion,omitempty"`
}

// TrabajadorListResponse lista paginada de trabajadores.
type TrabajadorListResponse struct {
	Items  []TrabajadorResponse `json:"items"`
	Limit  int                  `json:"limit"`
	Offset int                  `json:"offset"`
}
