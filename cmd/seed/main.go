// seed carga el tenant de demostración (owner@acme.test); uso: go run ./cmd/seed
// Requiere las migraciones aplicadas.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jhoicas/roofguard-api/internal/application/auth"
	"github.com/jhoicas/roofguard-api/internal/application/demo"
	"github.com/jhoicas/roofguard-api/internal/application/safety"
	"github.com/jhoicas/roofguard-api/internal/infrastructure/postgres"
	"github.com/jhoicas/roofguard-api/pkg/config"
	"github.com/jhoicas/roofguard-api/pkg/jwt"
	"github.com/jhoicas/roofguard-api/pkg/locale"
	"github.com/jhoicas/roofguard-api/pkg/logger"
	"github.com/jhoicas/roofguard-api/pkg/password"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Named("seed")
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	templateRepo := postgres.NewCertificationTemplateRepository(pool)

	codec, err := jwt.NewCodec(cfg.JWT)
	if err != nil {
		log.Fatal().Err(err).Msg("codec JWT")
	}
	seeder := &demo.Seeder{
		Auth: auth.NewAuthUseCase(
			postgres.NewTxRunner(pool), userRepo, auth.NewSessionLoader(userRepo), codec,
			password.NewHasher(cfg.Auth.BcryptCost),
			locale.NewResolver(cfg.App.DefaultLocale),
		),
		Employees: safety.NewEmployeeUseCase(employeeRepo),
		Templates: safety.NewCertificationTemplateUseCase(templateRepo),
		Certifications: safety.NewCertificationUseCase(
			postgres.NewCertificationRepository(pool), employeeRepo, templateRepo, cfg.Safety.CertWarningWindow(),
		),
		Incidents: safety.NewIncidentUseCase(postgres.NewIncidentRepository(pool), employeeRepo),
	}

	res, err := seeder.Run(ctx)
	if errors.Is(err, demo.ErrAlreadySeeded) {
		log.Info().Str("email", demo.OwnerEmail).Msg("el tenant de demostración ya existe; sin cambios")
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("carga de demostración fallida")
	}
	log.Info().
		Str("org_id", res.OrgID).
		Str("email", demo.OwnerEmail).
		Msg("tenant de demostración cargado; login con owner@acme.test / Password123!")
}
