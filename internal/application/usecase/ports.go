package usecase

import (
	"context"

	"github.com/snti-mx/snti-api/internal/domain/repository"
)

// FileStore es el puerto de almacenamiento de archivos subidos. Guardar genera
// el nombre en disco y devuelve la ruta relativa bajo el subdirectorio del tipo.
type FileStore interface {
	Guardar(tipoDocumento, extension string, contenido []byte) (ruta string, err error)
	Leer(ruta string) ([]byte, error)
}

// HijoTxRunner ejecuta la secuencia documento→hijo dentro de una transacción:
// o se insertan ambas filas o ninguna.
type HijoTxRunner interface {
	RunRegistroHijo(ctx context.Context, fn func(
		docRepo repository.DocumentoRepository,
		hijoRepo repository.HijoRepository,
	) error) error
}
