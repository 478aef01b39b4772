package entity

import "time"

// Valores válidos para Trabajador.Sexo.
const (
	SexoMasculino = "M"
	SexoFemenino  = "F"
)

// Situaciones sentimentales reconocidas.
const (
	SituacionSoltero    = "Soltero"
	SituacionCasado     = "Casado"
	SituacionDivorciado = "Divorciado"
	SituacionViudo      = "Viudo"
	SituacionUnionLibre = "Union Libre"
)

// Trabajador es el expediente central del sistema: identidad personal,
// identificadores de gobierno (CURP/RFC) y datos laborales del empleado.
// CURP, RFC, email, número de empleado y número de plaza son únicos.
type Trabajador struct {
	ID                   int
	Nombre               string
	ApellidoPaterno      string
	ApellidoMaterno      *string
	FechaNacimiento      time.Time
	Sexo                 string // M | F
	CURP                 string // 18 caracteres
	RFC                  string // 13 caracteres
	Email                string
	SituacionSentimental *string
	NumeroHijos          int
	NumeroEmpleado       string // 10 caracteres
	NumeroPlaza          string // 8 caracteres
	FechaIngreso         time.Time
	FechaIngresoGobierno time.Time
	NivelPuesto          string
	NombrePuesto         string
	PuestoINPI           *string
	Adscripcion          string
	SeccionID            int
	NivelEstudios        *string
	InstitucionEstudios  *string
	CertificadoEstudios  *bool
	PlazaBase            *string
	FechaRegistro        time.Time
	FechaActualizacion   time.Time

	// Seccion se carga en las lecturas que incluyen la relación.
	Seccion *Seccion
}
