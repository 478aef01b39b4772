package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/snti-mx/snti-api/internal/application/auth"
	"github.com/snti-mx/snti-api/internal/application/usecase"
	"github.com/snti-mx/snti-api/internal/infrastructure/postgres"
	"github.com/snti-mx/snti-api/internal/infrastructure/storage"
	httpRouter "github.com/snti-mx/snti-api/internal/interfaces/http"
	"github.com/snti-mx/snti-api/pkg/config"
	"github.com/snti-mx/snti-api/pkg/logger"
	"github.com/snti-mx/snti-api/pkg/validate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.DB.Migrate {
		if err := postgres.RunMigrations(cfg.DB, log); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	store, err := storage.NewLocalStore(cfg.Uploads.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("directorio de archivos")
	}

	trabajadorRepo := postgres.NewTrabajadorRepository(pool)
	seccionRepo := postgres.NewSeccionRepository(pool)
	documentoRepo := postgres.NewDocumentoRepository(pool)
	hijoRepo := postgres.NewHijoRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	trabajadorUC := usecase.NewTrabajadorUseCase(trabajadorRepo, seccionRepo)
	seccionUC := usecase.NewSeccionUseCase(seccionRepo)
	hijoUC := usecase.NewHijoUseCase(hijoRepo, trabajadorRepo, txRunner, store)
	documentoUC := usecase.NewDocumentoUseCase(documentoRepo, store)
	authUC := auth.NewAuthUseCase(usuarioRepo, trabajadorRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    int(cfg.Uploads.MaxSizeBytes()) + 1024*1024,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SNTI API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		TrabajadorUC:   trabajadorUC,
		SeccionUC:      seccionUC,
		HijoUC:         hijoUC,
		DocumentoUC:    documentoUC,
		AuthUC:         authUC,
		Validator:      validate.New(),
		JWTSecret:      cfg.JWT.Secret,
		MaxUploadBytes: cfg.Uploads.MaxSizeBytes(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
