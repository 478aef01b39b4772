package checksum

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256Hex calcula el digest SHA-256 del contenido completo y lo devuelve en hex.
// Se almacena junto al documento como huella de integridad; no se usa para
// deduplicar (dos subidas idénticas producen dos documentos con el mismo hash).
func SHA256Hex(contenido []byte) string {
	sum := sha256.Sum256(contenido)
	return hex.EncodeToString(sum[:])
}
