package entity

import "time"

// Hijo es un dependiente de un Trabajador. Siempre referencia el documento de
// su acta de nacimiento. La baja es lógica: Vigente pasa a false y el registro
// deja de aparecer en los listados.
type Hijo struct {
	ID               int
	TrabajadorID     int
	Nombre           string
	ApellidoPaterno  string
	ApellidoMaterno  string
	FechaNacimiento  time.Time
	ActaNacimientoID int
	Vigente          bool
	FechaRegistro    time.Time

	// ActaNacimiento se carga en las lecturas que incluyen la relación.
	ActaNacimiento *Documento
}
