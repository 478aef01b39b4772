package dto

import "time"

// ArchivoSubido transporta un archivo del multipart al caso de uso: nombre
// original, MIME declarado y el contenido completo ya leído.
type ArchivoSubido struct {
	NombreOriginal string
	Mimetype       string
	Contenido      []byte
}

// RegistrarHijoRequest entrada del formulario multipart de alta de hijo.
// El acta de nacimiento viaja aparte como ArchivoSubido.
type RegistrarHijoRequest struct {
	TrabajadorID    int    `form:"id_trabajador" validate:"required,gte=1"`
	Nombre          string `form:"nombre" validate:"required,max=100"`
	ApellidoPaterno string `form:"apellido_paterno" validate:"required,max=100"`
	ApellidoMaterno string `form:"apellido_materno" validate:"required,max=100"`
	FechaNacimiento string `form:"fecha_nacimiento" validate:"required,datetime=2006-01-02"`
}

// ActualizarHijoRequest entrada del PUT parcial; el acta nueva es opcional.
type ActualizarHijoRequest struct {
	Nombre          *string `form:"nombre" validate:"omitempty,max=100"`
	ApellidoPaterno *string `form:"apellido_paterno" validate:"omitempty,max=100"`
	ApellidoMaterno *string `form:"apellido_materno" validate:"omitempty,max=100"`
	FechaNacimiento *string `form:"fecha_nacimiento" validate:"omitempty,datetime=2006-01-02"`
	Vigente         *bool   `form:"vigente"`
}

// HijoResponse salida de un hijo con la referencia a su acta.
type HijoResponse struct {
	ID               int                `json:"id_hijo"`
	TrabajadorID     int                `json:"id_trabajador"`
	Nombre           string             `json:"nombre"`
	ApellidoPaterno  string             `json:"apellido_paterno"`
	ApellidoMaterno  string             `json:"apellido_materno"`
	FechaNacimiento  string             `json:"fecha_nacimiento"`
	ActaNacimientoID int                `json:"acta_nacimiento_id"`
	Vigente          bool               `json:"vigente"`
	FechaRegistro    time.Time          `json:"fecha_registro"`
	Documento        *DocumentoResponse `json:"documento,omitempty"`
}

// RegistroHijoResponse salida del alta: el hijo y el documento creado.
type RegistroHijoResponse struct {
	Hijo      HijoResponse      `json:"hijo"`
	Documento DocumentoResponse `json:"documento"`
}
