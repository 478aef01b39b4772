package checksum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/snti-mx/snti-api/pkg/checksum"
)

func TestSHA256Hex_VectorConocido(t *testing.T) {
	// Vector estándar de "abc".
	assert.Equal(t,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		checksum.SHA256Hex([]byte("abc")))
}

func TestSHA256Hex_Deterministico(t *testing.T) {
	contenido := []byte("%PDF-1.4 acta de nacimiento")
	assert.Equal(t, checksum.SHA256Hex(contenido), checksum.SHA256Hex(contenido))
	assert.NotEqual(t, checksum.SHA256Hex(contenido), checksum.SHA256Hex([]byte("otro contenido")))
}

func TestSHA256Hex_Vacio(t *testing.T) {
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		checksum.SHA256Hex(nil))
}
