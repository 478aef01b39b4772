package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/snti-mx/snti-api/internal/application/usecase"
)

var _ usecase.FileStore = (*LocalStore)(nil)

// LocalStore guarda los archivos subidos en el sistema de archivos local,
// bajo un subdirectorio por tipo de documento y con nombre generado por el
// servidor (UUID), nunca el nombre original del cliente.
type LocalStore struct {
	baseDir string
}

// NewLocalStore crea el directorio base si no existe.
func NewLocalStore(baseDir string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de uploads: %w", err)
	}
	return &LocalStore{baseDir: baseDir}, nil
}

// Guardar escribe el contenido bajo <base>/<tipoDocumento>/<uuid>.<ext> y
// devuelve la ruta relativa al directorio base.
func (s *LocalStore) Guardar(tipoDocumento, extension string, contenido []byte) (string, error) {
	dir := filepath.Join(s.baseDir, tipoDocumento)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("crear directorio %s: %w", tipoDocumento, err)
	}
	nombre := uuid.New().String() + "." + extension
	if err := os.WriteFile(filepath.Join(dir, nombre), contenido, 0o644); err != nil {
		return "", fmt.Errorf("escribir archivo: %w", err)
	}
	return filepath.Join(tipoDocumento, nombre), nil
}

// Leer devuelve el contenido de una ruta relativa previamente guardada.
// Rechaza rutas que intenten escapar del directorio base.
func (s *LocalStore) Leer(ruta string) ([]byte, error) {
	limpia := filepath.Clean(ruta)
	if strings.HasPrefix(limpia, "..") || filepath.IsAbs(limpia) {
		return nil, fmt.Errorf("ruta inválida: %s", ruta)
	}
	contenido, err := os.ReadFile(filepath.Join(s.baseDir, limpia))
	if err != nil {
		return nil, fmt.Errorf("leer archivo: %w", err)
	}
	return contenido, nil
}
