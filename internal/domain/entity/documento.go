package entity

import "time"

// Tipos de documento conocidos. El tipo también nombra el subdirectorio de
// almacenamiento donde se guarda el archivo.
const (
	TipoActaNacimiento = "actas_nacimiento"
)

// MIME types aceptados para actas de nacimiento.
var MimesActaNacimiento = []string{
	"application/pdf",
	"image/jpeg",
	"image/png",
}

// Documento es la fila de metadatos de un archivo subido. Es inmutable una vez
// creada: una actualización de acta crea un documento nuevo y reapunta la
// referencia (patrón supersede), la fila anterior se conserva.
type Documento struct {
	ID                 int
	TrabajadorID       int
	TipoDocumento      string
	NombreArchivo      string // nombre original del archivo subido
	HashArchivo        string // SHA-256 hex del contenido
	Descripcion        string
	TipoArchivo        string // extensión sin punto: pdf, jpg, png
	RutaAlmacenamiento string // relativa al directorio de uploads
	TamanoBytes        int64
	EsPublico          bool
	Mimetype           string
	Metadata           map[string]string
	FechaSubida        time.Time
}
