package postgres

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // driver database/sql "pgx"

	"github.com/snti-mx/snti-api/pkg/config"
	"github.com/snti-mx/snti-api/pkg/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations aplica las migraciones SQL embebidas que falten. Usa una
// conexión database/sql propia, separada del pool pgx de la aplicación.
func RunMigrations(cfg config.DBConfig, log *logger.Logger) error {
	db, err := sql.Open("pgx", cfg.ConnectionString())
	if err != nil {
		return fmt.Errorf("abrir conexión de migraciones: %w", err)
	}
	defer db.Close()

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("cargar migraciones embebidas: %w", err)
	}

	driver, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	if err != nil {
		return fmt.Errorf("crear driver de migraciones: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "pgx5", driver)
	if err != nil {
		return fmt.Errorf("inicializar migrador: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("aplicar migraciones: %w", err)
	}

	version, dirty, _ := m.Version()
	if dirty {
		log.Warn().Uint("version", version).Msg("migraciones en estado dirty")
	} else {
		log.Info().Uint("version", version).Msg("migraciones aplicadas")
	}
	return nil
}
