// migrate aplica las migraciones SQL embebidas; uso: go run ./cmd/migrate -direction=up
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/roofguard-api/internal/infrastructure/postgres"
	"github.com/jhoicas/roofguard-api/pkg/config"
	"github.com/jhoicas/roofguard-api/pkg/logger"
)

func main() {
	direction := flag.String("direction", "up", "Dirección de la migración: up o down")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Named("migrate")

	if err := postgres.Migrate(cfg.DB.ConnectionString(), *direction); err != nil {
		if errors.Is(err, postgres.ErrNoChange) {
			log.Info().Str("direction", *direction).Msg("sin cambios; la base ya está en la versión destino")
			return
		}
		log.Fatal().Err(err).Str("direction", *direction).Msg("migración fallida")
	}
	log.Info().Str("direction", *direction).Msg("migraciones aplicadas")
}
