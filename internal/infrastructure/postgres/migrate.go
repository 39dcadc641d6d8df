package postgres

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// ErrNoChange lo devuelve Migrate cuando la base ya está en la versión pedida.
var ErrNoChange = migrate.ErrNoChange

// Migrate aplica las migraciones embebidas en la dirección indicada ("up" o "down").
// Devuelve ErrNoChange si la base ya estaba en la versión destino.
func Migrate(dsn, direction string) error {
	if dsn == "" {
		return errors.New("migrate: DSN vacío; defina DATABASE_URL o DB_*")
	}
	if direction != "up" && direction != "down" {
		return fmt.Errorf("migrate: dirección debe ser up o down, recibido %q", direction)
	}

	source, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("migrate source: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", source, dsn)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	if direction == "up" {
		return m.Up()
	}
	return m.Down()
}
