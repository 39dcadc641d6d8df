package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/roofguard-api/internal/application/auth"
	"github.com/jhoicas/roofguard-api/internal/application/safety"
	"github.com/jhoicas/roofguard-api/internal/application/usecase"
	"github.com/jhoicas/roofguard-api/internal/domain/entity"
	"github.com/jhoicas/roofguard-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	Tokens          TokenVerifier
	Sessions        SessionReader
	OrganizationUC  *usecase.OrganizationUseCase
	EmployeeUC      *safety.EmployeeUseCase
	CertificationUC *safety.CertificationUseCase
	TemplateUC      *safety.CertificationTemplateUseCase
	IncidentUC      *safety.IncidentUseCase
	OSHALogUC       *safety.OSHALogUseCase
	Log             *logger.Logger
}

// Router registra las rutas de la API.
// RequireRole se registra por ruta: los middlewares de grupo no ven c.Params("orgId").
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	authn := AuthMiddleware(deps.Tokens, deps.Sessions, log.Named("auth"))

	// Auth: register/login públicos, me protegido
	authHandler := NewAuthHandler(deps.AuthUC, log)
	authGroup := app.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", authn, authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	api := app.Group("/api", authn)

	// Organización activa por header x-org-id
	orgHandler := NewOrganizationHandler(deps.OrganizationUC, log)
	api.Get("/organization", RequireRole(entity.RoleWorker), orgHandler.Get)
	api.Get("/organization/members", RequireRole(entity.RoleManager), orgHandler.ListMembers)

	orgs := api.Group("/orgs/:orgId")

	// Employees
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC, log)
	orgs.Get("/employees", RequireRole(entity.RoleWorker), employeeHandler.List)
	orgs.Post("/employees", RequireRole(entity.RoleManager), employeeHandler.Create)
	orgs.Get("/employees/:id", RequireRole(entity.RoleWorker), employeeHandler.GetByID)
	orgs.Put("/employees/:id", RequireRole(entity.RoleManager), employeeHandler.Update)
	orgs.Delete("/employees/:id", RequireRole(entity.RoleOwner), employeeHandler.Delete)

	// Certifications
	certHandler := NewCertificationHandler(deps.CertificationUC, log)
	orgs.Get("/certifications", RequireRole(entity.RoleWorker), certHandler.List)
	orgs.Post("/certifications", RequireRole(entity.RoleManager), certHandler.Create)
	orgs.Delete("/certifications/:id", RequireRole(entity.RoleManager), certHandler.Delete)

	templateHandler := NewCertificationTemplateHandler(deps.TemplateUC, log)
	orgs.Get("/certification-templates", RequireRole(entity.RoleManager), templateHandler.List)
	orgs.Post("/certification-templates", RequireRole(entity.RoleManager), templateHandler.Create)

	// Incidents; osha300.pdf antes de /:id
	incidentHandler := NewIncidentHandler(deps.IncidentUC, deps.OSHALogUC, log)
	orgs.Get("/incidents", RequireRole(entity.RoleWorker), incidentHandler.List)
	orgs.Post("/incidents", RequireRole(entity.RoleWorker), incidentHandler.Report)
	orgs.Get("/incidents/osha300.pdf", RequireRole(entity.RoleManager), incidentHandler.OSHALog)
	orgs.Get("/incidents/:id", RequireRole(entity.RoleWorker), incidentHandler.GetByID)
	orgs.Patch("/incidents/:id/status", RequireRole(entity.RoleManager), incidentHandler.UpdateStatus)
}
