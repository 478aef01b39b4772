package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/snti-mx/snti-api/internal/application/auth"
	"github.com/snti-mx/snti-api/internal/application/usecase"
	"github.com/snti-mx/snti-api/internal/domain/entity"
	"github.com/snti-mx/snti-api/pkg/validate"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TrabajadorUC   *usecase.TrabajadorUseCase
	SeccionUC      *usecase.SeccionUseCase
	HijoUC         *usecase.HijoUseCase
	DocumentoUC    *usecase.DocumentoUseCase
	AuthUC         *auth.AuthUseCase
	Validator      *validate.Validator
	JWTSecret      string
	MaxUploadBytes int64
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	gestion := RequireRole(entity.RolAdministrador, entity.RolRecursosHumanos)

	// Usuarios y auth (login y token públicos, el resto protegido)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Validator)
	users := api.Group("/users")
	users.Post("/login", authHandler.Login)
	users.Post("/", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RolAdministrador), authHandler.CrearUsuario)

	authGroup := api.Group("/auth")
	authGroup.Post("/token", authHandler.EmitirToken)
	authGroup.Get("/verify", authHandler.VerificarToken)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Trabajadores (protegido, gestión; DELETE solo Administrador)
	trabajadores := protected.Group("/trabajadores", gestion)
	trabajadorHandler := NewTrabajadorHandler(deps.TrabajadorUC, deps.Validator)
	trabajadores.Post("/", trabajadorHandler.Crear)
	trabajadores.Get("/", trabajadorHandler.List)
	trabajadores.Get("/:id", trabajadorHandler.GetByID)
	trabajadores.Patch("/:id", trabajadorHandler.Actualizar)
	trabajadores.Delete("/:id", RequireRole(entity.RolAdministrador), trabajadorHandler.Eliminar)

	// Secciones (protegido; alta solo gestión)
	secciones := protected.Group("/secciones")
	seccionHandler := NewSeccionHandler(deps.SeccionUC, deps.Validator)
	secciones.Post("/", gestion, seccionHandler.Crear)
	secciones.Get("/", seccionHandler.List)
	secciones.Get("/:id", seccionHandler.GetByID)

	// Hijos (protegido, gestión)
	hijos := protected.Group("/hijos", gestion)
	hijoHandler := NewHijoHandler(deps.HijoUC, deps.Validator, deps.MaxUploadBytes)
	hijos.Post("/", hijoHandler.Registrar)
	hijos.Get("/trabajador/:id_trabajador", hijoHandler.ListByTrabajador)
	hijos.Put("/:id_hijo", hijoHandler.Actualizar)
	hijos.Delete("/:id_hijo", hijoHandler.Baja)

	// Documentos (protegido, gestión)
	documentos := protected.Group("/documentos", gestion)
	documentoHandler := NewDocumentoHandler(deps.DocumentoUC)
	documentos.Get("/trabajador/:id_trabajador", documentoHandler.ListByTrabajador)
	documentos.Get("/:id/descargar", documentoHandler.Descargar)
}
