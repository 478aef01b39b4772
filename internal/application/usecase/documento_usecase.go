package usecase

import (
	"context"
	"fmt"

	"github.com/snti-mx/snti-api/internal/application/dto"
	"github.com/snti-mx/snti-api/internal/domain"
	"github.com/snti-mx/snti-api/internal/domain/entity"
	"github.com/snti-mx/snti-api/internal/domain/repository"
)

// DocumentoUseCase consulta de metadatos y descarga de documentos subidos.
type DocumentoUseCase struct {
	repo  repository.DocumentoRepository
	store FileStore
}

// NewDocumentoUseCase construye el caso de uso.
func NewDocumentoUseCase(repo repository.DocumentoRepository, store FileStore) *DocumentoUseCase {
	return &DocumentoUseCase{repo: repo, store: store}
}

// ListByTrabajador devuelve los metadatos de los documentos de un trabajador.
func (uc *DocumentoUseCase) ListByTrabajador(ctx context.Context, trabajadorID int) ([]dto.DocumentoResponse, error) {
	list, err := uc.repo.ListByTrabajador(ctx, trabajadorID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DocumentoResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDocumentoResponse(d))
	}
	return items, nil
}

// Descargar lee los bytes almacenados de un documento y los devuelve con su
// nombre original y mimetype.
func (uc *DocumentoUseCase) Descargar(ctx context.Context, id int) (*dto.DescargaDocumento, error) {
	doc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNoEncontrado
	}
	contenido, err := uc.store.Leer(doc.RutaAlmacenamiento)
	if err != nil {
		return nil, fmt.Errorf("leer documento %d: %w", id, err)
	}
	return &dto.DescargaDocumento{
		NombreArchivo: doc.NombreArchivo,
		Mimetype:      doc.Mimetype,
		Contenido:     contenido,
	}, nil
}

func toDocumentoResponse(d *entity.Documento) *dto.DocumentoResponse {
	if d == nil {
		return nil
	}
	return &dto.DocumentoResponse{
		ID:            d.ID,
		TrabajadorID:  d.TrabajadorID,
		TipoDocumento: d.TipoDocumento,
		NombreArchivo: d.NombreArchivo,
		HashArchivo:   d.HashArchivo,
		Descripcion:   d.Descripcion,
		TipoArchivo:   d.TipoArchivo,
		TamanoBytes:   d.TamanoBytes,
		Mimetype:      d.Mimetype,
		FechaSubida:   d.FechaSubida,
	}
}
