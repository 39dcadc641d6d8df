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
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/roofguard-api/internal/application/auth"
	"github.com/jhoicas/roofguard-api/internal/application/safety"
	"github.com/jhoicas/roofguard-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/roofguard-api/internal/infrastructure/pdf"
	"github.com/jhoicas/roofguard-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/roofguard-api/internal/interfaces/http"
	"github.com/jhoicas/roofguard-api/pkg/config"
	"github.com/jhoicas/roofguard-api/pkg/jwt"
	"github.com/jhoicas/roofguard-api/pkg/locale"
	"github.com/jhoicas/roofguard-api/pkg/logger"
	"github.com/jhoicas/roofguard-api/pkg/password"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	orgRepo := postgres.NewOrganizationRepository(pool)
	membershipRepo := postgres.NewMembershipRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	certRepo := postgres.NewCertificationRepository(pool)
	templateRepo := postgres.NewCertificationTemplateRepository(pool)
	incidentRepo := postgres.NewIncidentRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	codec, err := jwt.NewCodec(cfg.JWT)
	if err != nil {
		log.Fatal().Err(err).Msg("codec JWT")
	}
	sessions := auth.NewSessionLoader(userRepo)
	authUC := auth.NewAuthUseCase(
		txRunner, userRepo, sessions, codec,
		password.NewHasher(cfg.Auth.BcryptCost),
		locale.NewResolver(cfg.App.DefaultLocale),
	)

	organizationUC := usecase.NewOrganizationUseCase(orgRepo, membershipRepo)
	employeeUC := safety.NewEmployeeUseCase(employeeRepo)
	certUC := safety.NewCertificationUseCase(certRepo, employeeRepo, templateRepo, cfg.Safety.CertWarningWindow())
	templateUC := safety.NewCertificationTemplateUseCase(templateRepo)
	incidentUC := safety.NewIncidentUseCase(incidentRepo, employeeRepo)

	// PDF: registro OSHA 300 de lesiones y enfermedades laborales
	oshaUC := safety.NewOSHALogUseCase(incidentRepo, infrapdf.NewMarotoPDFGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log.Named("http")),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "RoofGuard API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		Tokens:          codec,
		Sessions:        sessions,
		OrganizationUC:  organizationUC,
		EmployeeUC:      employeeUC,
		CertificationUC: certUC,
		TemplateUC:      templateUC,
		IncidentUC:      incidentUC,
		OSHALogUC:       oshaUC,
		Log:             log,
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
