package dto

// CrearSeccionRequest entrada para crear una sección.
type CrearSeccionRequest struct {
	NombreSeccion string  `json:"nombre_seccion" validate:"required,max=100"`
	Descripcion   *string `json:"descripcion" validate:"omitempty,max=500"`
}

// SeccionResponse salida de una sección.
type SeccionResponse struct {
	ID            int     `json:"id_seccion"`
	NombreSeccion string  `json:"nombre_seccion"`
	Descripcion   *string `json:"descripcion,omitempty"`
}
