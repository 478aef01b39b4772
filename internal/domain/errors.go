package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNoEncontrado    = errors.New("recurso no encontrado")
	ErrDuplicado       = errors.New("recurso duplicado")
	ErrEnUso           = errors.New("el recurso está siendo utilizado en otras tablas")
	ErrCredenciales    = errors.New("credenciales inválidas")
	ErrNoAutorizado    = errors.New("no autorizado")
	ErrProhibido       = errors.New("acceso denegado")
	ErrEntradaInvalida = errors.New("entrada inválida")
)

// ErrCamposDuplicados detalla qué campos únicos chocan con un registro existente
// (CURP, RFC, Email, etc.). Envuelve ErrDuplicado para que errors.Is siga funcionando.
type ErrCamposDuplicados struct {
	Campos []string
}

func (e *ErrCamposDuplicados) Error() string {
	msg := "ya existe un registro con los siguientes datos: "
	for i, c := range e.Campos {
		if i > 0 {
			msg += ", "
		}
		msg += c
	}
	return msg
}

// Unwrap permite errors.Is(err, ErrDuplicado).
func (e *ErrCamposDuplicados) Unwrap() error {
	return ErrDuplicado
}
