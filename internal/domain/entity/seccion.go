package entity

// Seccion es la unidad organizacional a la que se adscribe un Trabajador.
type Seccion struct {
	ID            int
	NombreSeccion string
	Descripcion   *string
}
