package dto

import "time"

// DocumentoResponse metadatos de un documento; nunca incluye el contenido.
type DocumentoResponse struct {
	ID            int       `json:"id_documento"`
	TrabajadorID  int       `json:"id_trabajador"`
	TipoDocumento string    `json:"tipo_documento"`
	NombreArchivo string    `json:"nombre_archivo"`
	HashArchivo   string    `json:"hash_archivo"`
	Descripcion   string    `json:"descripcion,omitempty"`
	TipoArchivo   string    `json:"tipo_archivo"`
	TamanoBytes   int64     `json:"tamano_bytes"`
	Mimetype      string    `json:"mimetype"`
	FechaSubida   time.Time `json:"fecha_subida"`
}

// DescargaDocumento es el resultado de una descarga: metadatos + contenido.
type DescargaDocumento struct {
	NombreArchivo string
	Mimetype      string
	Contenido     []byte
}
