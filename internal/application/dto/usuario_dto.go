package dto

import "time"

// CrearUsuarioRequest entrada para crear una cuenta. La contraseña viaja en
// claro solo en el request; se hashea en el caso de uso.
type CrearUsuarioRequest struct {
	TrabajadorID  *int   `json:"id_trabajador" validate:"omitempty,gte=1"`
	Identificador string `json:"identificador" validate:"required,min=4,max=50"`
	Contrasena    string `json:"contrasena" validate:"required,min=8,max=72"`
	Rol           string `json:"rol" validate:"omitempty,oneof=Administrador 'Recursos Humanos' Empleado"`
}

// LoginRequest entrada para iniciar sesión.
type LoginRequest struct {
	Identificador string `json:"identificador" validate:"required"`
	Contrasena    string `json:"contrasena" validate:"required"`
}

// UsuarioResponse salida de una cuenta (sin hash de contraseña).
type UsuarioResponse struct {
	ID                   int        `json:"id_usuario"`
	TrabajadorID         *int       `json:"id_trabajador,omitempty"`
	Identificador        string     `json:"identificador"`
	Rol                  string     `json:"rol"`
	IntentosFallidos     int        `json:"intentos_fallidos"`
	Bloqueado            bool       `json:"bloqueado"`
	FechaCreacion        time.Time  `json:"fecha_creacion"`
	UltimoLogin          *time.Time `json:"ultimo_login,omitempty"`
	UltimoCambioPassword time.Time  `json:"ultimo_cambio_password"`
}

// LoginResponse salida del login con el token de sesión.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}

// TokenResponse salida de POST /auth/token: solo el token y su vigencia.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn string `json:"expiresIn"`
}

// ClaimsResponse salida de GET /auth/verify con los claims decodificados.
type ClaimsResponse struct {
	UsuarioID     int    `json:"id_usuario"`
	Identificador string `json:"identificador"`
	Rol           string `json:"rol"`
}
