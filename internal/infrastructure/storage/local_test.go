package storage_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snti-mx/snti-api/internal/infrastructure/storage"
)

func TestGuardarYLeer(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	contenido := []byte("%PDF-1.4 acta")
	ruta, err := store.Guardar("actas_nacimiento", "pdf", contenido)
	require.NoError(t, err)

	assert.Equal(t, "actas_nacimiento", filepath.Dir(ruta), "la ruta es relativa al directorio base")
	assert.True(t, strings.HasSuffix(ruta, ".pdf"))
	assert.NotContains(t, ruta, "acta-original.pdf", "el nombre del cliente no se usa en disco")

	leido, err := store.Leer(ruta)
	require.NoError(t, err)
	assert.Equal(t, contenido, leido)
}

func TestGuardar_NombresUnicosPorSubida(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	contenido := []byte("mismo contenido")
	ruta1, err := store.Guardar("actas_nacimiento", "pdf", contenido)
	require.NoError(t, err)
	ruta2, err := store.Guardar("actas_nacimiento", "pdf", contenido)
	require.NoError(t, err)

	assert.NotEqual(t, ruta1, ruta2, "dos subidas idénticas son archivos distintos")
}

func TestLeer_RechazaRutasFueraDelBase(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	casos := []string{
		"../fuera.txt",
		"actas_nacimiento/../../fuera.txt",
		"/etc/passwd",
	}
	for _, ruta := range casos {
		_, err := store.Leer(ruta)
		assert.Error(t, err, "ruta %q debe rechazarse", ruta)
	}
}

func TestLeer_ArchivoInexistente(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Leer("actas_nacimiento/no-existe.pdf")
	assert.Error(t, err)
}
