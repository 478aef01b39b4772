package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/snti-mx/snti-api/internal/application/dto"
	"github.com/snti-mx/snti-api/internal/domain"
	"github.com/snti-mx/snti-api/internal/domain/entity"
	"github.com/snti-mx/snti-api/internal/domain/repository"
	"github.com/snti-mx/snti-api/pkg/checksum"
)

// HijoUseCase casos de uso de hijos de trabajadores, incluida la gestión del
// acta de nacimiento. Las escrituras documento→hijo van en una sola
// transacción para no dejar documentos huérfanos si la segunda falla.
type HijoUseCase struct {
	hijoRepo       repository.HijoRepository
	trabajadorRepo repository.TrabajadorRepository
	tx             HijoTxRunner
	store          FileStore
}

// NewHijoUseCase construye el caso de uso.
func NewHijoUseCase(
	hijoRepo repository.HijoRepository,
	trabajadorRepo repository.TrabajadorRepository,
	tx HijoTxRunner,
	store FileStore,
) *HijoUseCase {
	return &HijoUseCase{hijoRepo: hijoRepo, trabajadorRepo: trabajadorRepo, tx: tx, store: store}
}

// Registrar da de alta un hijo con su acta de nacimiento: guarda el archivo,
// calcula su huella SHA-256 y crea documento e hijo atómicamente.
func (uc *HijoUseCase) Registrar(ctx context.Context, in dto.RegistrarHijoRequest, acta dto.ArchivoSubido) (*dto.RegistroHijoResponse, error) {
	trabajador, err := uc.trabajadorRepo.GetByID(ctx, in.TrabajadorID)
	if err != nil {
		return nil, err
	}
	if trabajador == nil {
		return nil, fmt.Errorf("%w: el trabajador %d no existe", domain.ErrEntradaInvalida, in.TrabajadorID)
	}
	if !mimePermitido(acta.Mimetype) {
		return nil, fmt.Errorf("%w: tipo de archivo no permitido (%s)", domain.ErrEntradaInvalida, acta.Mimetype)
	}

	doc := uc.nuevoDocumentoActa(in.TrabajadorID, acta,
		fmt.Sprintf("Acta de nacimiento de %s %s %s", in.Nombre, in.ApellidoPaterno, in.ApellidoMaterno),
		map[string]string{"relacion": "hijo", "tipo": "acta_nacimiento"},
	)
	ruta, err := uc.store.Guardar(entity.TipoActaNacimiento, doc.TipoArchivo, acta.Contenido)
	if err != nil {
		return nil, fmt.Errorf("guardar acta: %w", err)
	}
	doc.RutaAlmacenamiento = ruta

	hijo := &entity.Hijo{
		TrabajadorID:    in.TrabajadorID,
		Nombre:          in.Nombre,
		ApellidoPaterno: in.ApellidoPaterno,
		ApellidoMaterno: in.ApellidoMaterno,
		FechaNacimiento: parseFecha(in.FechaNacimiento),
		Vigente:         true,
		FechaRegistro:   time.Now(),
	}

	err = uc.tx.RunRegistroHijo(ctx, func(docRepo repository.DocumentoRepository, hijoRepo repository.HijoRepository) error {
		if err := docRepo.Create(ctx, doc); err != nil {
			return err
		}
		hijo.ActaNacimientoID = doc.ID
		return hijoRepo.Create(ctx, hijo)
	})
	if err != nil {
		return nil, err
	}

	hijo.ActaNacimiento = doc
	return &dto.RegistroHijoResponse{
		Hijo:      *toHijoResponse(hijo),
		Documento: *toDocumentoResponse(doc),
	}, nil
}

// ListByTrabajador devuelve los hijos vigentes de un trabajador con la
// referencia a su acta.
func (uc *HijoUseCase) ListByTrabajador(ctx context.Context, trabajadorID int) ([]dto.HijoResponse, error) {
	list, err := uc.hijoRepo.ListByTrabajador(ctx, trabajadorID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.HijoResponse, 0, len(list))
	for _, h := range list {
		items = append(items, *toHijoResponse(h))
	}
	return items, nil
}

// Actualizar aplica un cambio parcial. Si viene acta nueva se crea un
// documento nuevo y se reapunta la referencia en la misma transacción; el
// documento anterior se conserva como histórico.
func (uc *HijoUseCase) Actualizar(ctx context.Context, id int, in dto.ActualizarHijoRequest, acta *dto.ArchivoSubido) (*dto.HijoResponse, error) {
	hijo, err := uc.hijoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if hijo == nil {
		return nil, domain.ErrNoEncontrado
	}

	if in.Nombre != nil {
		hijo.Nombre = *in.Nombre
	}
	if in.ApellidoPaterno != nil {
		hijo.ApellidoPaterno = *in.ApellidoPaterno
	}
	if in.ApellidoMaterno != nil {
		hijo.ApellidoMaterno = *in.ApellidoMaterno
	}
	if in.FechaNacimiento != nil {
		hijo.FechaNacimiento = parseFecha(*in.FechaNacimiento)
	}
	if in.Vigente != nil {
		hijo.Vigente = *in.Vigente
	}

	if acta == nil {
		if err := uc.hijoRepo.Update(ctx, hijo); err != nil {
			return nil, err
		}
		return toHijoResponse(hijo), nil
	}

	if !mimePermitido(acta.Mimetype) {
		return nil, fmt.Errorf("%w: tipo de archivo no permitido (%s)", domain.ErrEntradaInvalida, acta.Mimetype)
	}
	doc := uc.nuevoDocumentoActa(hijo.TrabajadorID, *acta,
		fmt.Sprintf("Acta de nacimiento actualizada de %s %s %s", hijo.Nombre, hijo.ApellidoPaterno, hijo.ApellidoMaterno),
		map[string]string{"relacion": "hijo", "tipo": "acta_nacimiento", "actualizacion": "true"},
	)
	ruta, err := uc.store.Guardar(entity.TipoActaNacimiento, doc.TipoArchivo, acta.Contenido)
	if err != nil {
		return nil, fmt.Errorf("guardar acta: %w", err)
	}
	doc.RutaAlmacenamiento = ruta

	err = uc.tx.RunRegistroHijo(ctx, func(docRepo repository.DocumentoRepository, hijoRepo repository.HijoRepository) error {
		if err := docRepo.Create(ctx, doc); err != nil {
			return err
		}
		hijo.ActaNacimientoID = doc.ID
		return hijoRepo.Update(ctx, hijo)
	})
	if err != nil {
		return nil, err
	}

	hijo.ActaNacimiento = doc
	return toHijoResponse(hijo), nil
}

// Baja retira al hijo: vigente pasa a false y deja de listarse. No hay borrado
// físico; el acta y el registro se conservan.
func (uc *HijoUseCase) Baja(ctx context.Context, id int) error {
	hijo, err := uc.hijoRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if hijo == nil {
		return domain.ErrNoEncontrado
	}
	hijo.Vigente = false
	return uc.hijoRepo.Update(ctx, hijo)
}

func (uc *HijoUseCase) nuevoDocumentoActa(trabajadorID int, acta dto.ArchivoSubido, descripcion string, metadata map[string]string) *entity.Documento {
	return &entity.Documento{
		TrabajadorID:  trabajadorID,
		TipoDocumento: entity.TipoActaNacimiento,
		NombreArchivo: acta.NombreOriginal,
		HashArchivo:   checksum.SHA256Hex(acta.Contenido),
		Descripcion:   descripcion,
		TipoArchivo:   extension(acta.NombreOriginal),
		TamanoBytes:   int64(len(acta.Contenido)),
		EsPublico:     false,
		Mimetype:      acta.Mimetype,
		Metadata:      metadata,
		FechaSubida:   time.Now(),
	}
}

func mimePermitido(mime string) bool {
	for _, m := range entity.MimesActaNacimiento {
		if m == mime {
			return true
		}
	}
	return false
}

func extension(nombre string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(nombre), "."))
	if ext == "" {
		return "bin"
	}
	return ext
}

func toHijoResponse(h *entity.Hijo) *dto.HijoResponse {
	if h == nil {
		return nil
	}
	resp := &dto.HijoResponse{
		ID:               h.ID,
		TrabajadorID:     h.TrabajadorID,
		Nombre:           h.Nombre,
		ApellidoPaterno:  h.ApellidoPaterno,
		ApellidoMaterno:  h.ApellidoMaterno,
		FechaNacimiento:  h.FechaNacimiento.Format(fechaISO),
		ActaNacimientoID: h.ActaNacimientoID,
		Vigente:          h.Vigente,
		FechaRegistro:    h.FechaRegistro,
	}
	if h.ActaNacimiento != nil {
		resp.Documento = toDocumentoResponse(h.ActaNacimiento)
	}
	return resp
}
