package repository

import (
	"context"
	"time"

	"github.com/jhoicas/roofguard-api/internal/domain/entity"
)

// Todas las consultas de registros de seguridad se filtran por organización:
// un registro de otra organización se comporta como inexistente.

// EmployeeFilter filtros opcionales del listado de empleados.
type EmployeeFilter struct {
	Active *bool
}

// EmployeeRepository puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(ctx context.Context, e *entity.Employee) error
	GetByID(ctx context.Context, orgID, id string) (*entity.Employee, error)
	Update(ctx context.Context, e *entity.Employee) error
	Delete(ctx context.Context, orgID, id string) (bool, error)
	ListByOrganization(ctx context.Context, orgID string, f EmployeeFilter, limit, offset int) ([]*entity.Employee, int, error)
}

// CertificationFilter filtros opcionales del listado de certificaciones.
type CertificationFilter struct {
	EmployeeID    string
	ExpiresBefore *time.Time // solo las que vencen antes de esta fecha (incluye vencidas)
}

// CertificationRepository puerto de persistencia para Certification.
type CertificationRepository interface {
	Create(ctx context.Context, c *entity.Certification) error
	GetByID(ctx context.Context, orgID, id string) (*entity.Certification, error)
	Delete(ctx context.Context, orgID, id string) (bool, error)
	ListByOrganization(ctx context.Context, orgID string, f CertificationFilter) ([]*entity.Certification, error)
}

// CertificationTemplateRepository puerto de persistencia para CertificationTemplate.
// Create devuelve domain.ErrConflict si el nombre ya existe en la organización.
type CertificationTemplateRepository interface {
	Create(ctx context.Context, t *entity.CertificationTemplate) error
	GetByID(ctx context.Context, orgID, id string) (*entity.CertificationTemplate, error)
	ListByOrganization(ctx context.Context, orgID string) ([]*entity.CertificationTemplate, error)
}

// IncidentFilter filtros opcionales del listado de incidentes.
type IncidentFilter struct {
	Status entity.IncidentStatus
}

// IncidentRepository puerto de persistencia para Incident.
type IncidentRepository interface {
	Create(ctx context.Context, i *entity.Incident) error
	GetByID(ctx context.Context, orgID, id string) (*entity.Incident, error)
	UpdateStatus(ctx context.Context, orgID, id string, status entity.IncidentStatus, updatedAt time.Time) error
	ListByOrganization(ctx context.Context, orgID string, f IncidentFilter, limit, offset int) ([]*entity.Incident, int, error)
	// ListForOSHALog devuelve los incidentes ocurridos en [from, to) con el empleado afectado.
	ListForOSHALog(ctx context.Context, orgID string, from, to time.Time) ([]entity.OSHALogEntry, error)
}
