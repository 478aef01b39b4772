package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdministrador    = "Administrador"
	RolRecursosHumanos  = "Recursos Humanos"
	RolEmpleado         = "Empleado"
)

// Usuario es la cuenta de acceso al sistema, opcionalmente ligada uno a uno
// con un Trabajador. Nunca guarda la contraseña en claro.
//
// IntentosFallidos y Bloqueado existen en el esquema pero la política de
// bloqueo por intentos no está cableada al login.
type Usuario struct {
	ID                   int
	TrabajadorID         *int // a lo más una cuenta por trabajador
	Identificador        string
	ContrasenaHash       string // bcrypt
	Rol                  string
	IntentosFallidos     int
	Bloqueado            bool
	FechaCreacion        time.Time
	UltimoLogin          *time.Time
	UltimoCambioPassword time.Time
}

// RolValido indica si el rol es uno de los reconocidos por el sistema.
func RolValido(rol string) bool {
	switch rol {
	case RolAdministrador, RolRecursosHumanos, RolEmpleado:
		return true
	}
	return false
}
