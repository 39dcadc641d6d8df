// Package safetytest provee repositorios en memoria de registros de seguridad para tests.
package safetytest

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/roofguard-api/internal/domain"
	"github.com/jhoicas/roofguard-api/internal/domain/entity"
	"github.com/jhoicas/roofguard-api/internal/domain/repository"
)

var (
	_ repository.EmployeeRepository      = (*Employees)(nil)
	_ repository.CertificationRepository = (*Certifications)(nil)
	_ repository.IncidentRepository      = (*Incidents)(nil)

	_ repository.CertificationTemplateRepository = (*CertificationTemplates)(nil)
)

// Employees repositorio de empleados en memoria; un registro de otra organización no existe.
type Employees struct {
	mu   sync.Mutex
	rows map[string]entity.Employee
}

// NewEmployees construye el repositorio vacío.
func NewEmployees() *Employees { return &Employees{rows: map[string]entity.Employee{}} }

func (m *Employees) Create(_ context.Context, e *entity.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[e.ID] = *e
	return nil
}

func (m *Employees) GetByID(_ context.Context, orgID, id string) (*entity.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.rows[id]
	if !ok || e.OrganizationID != orgID {
		return nil, nil
	}
	return &e, nil
}

func (m *Employees) Update(_ context.Context, e *entity.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[e.ID] = *e
	return nil
}

func (m *Employees) Delete(_ context.Context, orgID, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.rows[id]
	if !ok || e.OrganizationID != orgID {
		return false, nil
	}
	delete(m.rows, id)
	return true, nil
}

func (m *Employees) ListByOrganization(_ context.Context, orgID string, f repository.EmployeeFilter, limit, offset int) ([]*entity.Employee, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []*entity.Employee
	for _, e := range m.rows {
		if e.OrganizationID != orgID || (f.Active != nil && e.Active != *f.Active) {
			continue
		}
		cp := e
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].FirstName < all[j].FirstName })
	total := len(all)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

// Certifications repositorio de certificaciones en memoria.
type Certifications struct {
	mu   sync.Mutex
	rows map[string]entity.Certification
}

// NewCertifications construye el repositorio vacío.
func NewCertifications() *Certifications {
	return &Certifications{rows: map[string]entity.Certification{}}
}

func (m *Certifications) Create(_ context.Context, c *entity.Certification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[c.ID] = *c
	return nil
}

func (m *Certifications) GetByID(_ context.Context, orgID, id string) (*entity.Certification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.rows[id]
	if !ok || c.OrganizationID != orgID {
		return nil, nil
	}
	return &c, nil
}

func (m *Certifications) Delete(_ context.Context, orgID, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.rows[id]
	if !ok || c.OrganizationID != orgID {
		return false, nil
	}
	delete(m.rows, id)
	return true, nil
}

func (m *Certifications) ListByOrganization(_ context.Context, orgID string, f repository.CertificationFilter) ([]*entity.Certification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Certification
	for _, c := range m.rows {
		if c.OrganizationID != orgID {
			continue
		}
		if f.EmployeeID != "" && c.EmployeeID != f.EmployeeID {
			continue
		}
		if f.ExpiresBefore != nil && (c.ExpiresAt == nil || !c.ExpiresAt.Before(*f.ExpiresBefore)) {
			continue
		}
		cp := c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// CertificationTemplates repositorio de plantillas en memoria; rechaza nombres repetidos por organización.
type CertificationTemplates struct {
	mu   sync.Mutex
	rows map[string]entity.CertificationTemplate
}

// NewCertificationTemplates construye el repositorio vacío.
func NewCertificationTemplates() *CertificationTemplates {
	return &CertificationTemplates{rows: map[string]entity.CertificationTemplate{}}
}

func (m *CertificationTemplates) Create(_ context.Context, t *entity.CertificationTemplate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.rows {
		if existing.OrganizationID == t.OrganizationID && existing.Name == t.Name {
			return fmt.Errorf("plantilla %q: %w", t.Name, domain.ErrConflict)
		}
	}
	m.rows[t.ID] = *t
	return nil
}

func (m *CertificationTemplates) GetByID(_ context.Context, orgID, id string) (*entity.CertificationTemplate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.rows[id]
	if !ok || t.OrganizationID != orgID {
		return nil, nil
	}
	return &t, nil
}

func (m *CertificationTemplates) ListByOrganization(_ context.Context, orgID string) ([]*entity.CertificationTemplate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.CertificationTemplate
	for _, t := range m.rows {
		if t.OrganizationID != orgID {
			continue
		}
		cp := t
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Incidents repositorio de incidentes en memoria; usa employees para armar el registro OSHA.
type Incidents struct {
	mu        sync.Mutex
	rows      map[string]entity.Incident
	employees *Employees
}

// NewIncidents construye el repositorio vacío.
func NewIncidents(employees *Employees) *Incidents {
	return &Incidents{rows: map[string]entity.Incident{}, employees: employees}
}

func (m *Incidents) Create(_ context.Context, i *entity.Incident) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[i.ID] = *i
	return nil
}

func (m *Incidents) GetByID(_ context.Context, orgID, id string) (*entity.Incident, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.rows[id]
	if !ok || i.OrganizationID != orgID {
		return nil, nil
	}
	return &i, nil
}

func (m *Incidents) UpdateStatus(_ context.Context, orgID, id string, status entity.IncidentStatus, updatedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.rows[id]
	if !ok || i.OrganizationID != orgID {
		return nil
	}
	i.Status = status
	i.UpdatedAt = updatedAt
	m.rows[id] = i
	return nil
}

func (m *Incidents) ListByOrganization(_ context.Context, orgID string, f repository.IncidentFilter, limit, offset int) ([]*entity.Incident, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []*entity.Incident
	for _, i := range m.rows {
		if i.OrganizationID != orgID || (f.Status != "" && i.Status != f.Status) {
			continue
		}
		cp := i
		all = append(all, &cp)
	}
	sort.Slice(all, func(a, b int) bool { return all[a].OccurredAt.After(all[b].OccurredAt) })
	total := len(all)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (m *Incidents) ListForOSHALog(ctx context.Context, orgID string, from, to time.Time) ([]entity.OSHALogEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.OSHALogEntry
	for _, i := range m.rows {
		if i.OrganizationID != orgID || i.OccurredAt.Before(from) || !i.OccurredAt.Before(to) {
			continue
		}
		entry := entity.OSHALogEntry{Incident: i}
		if i.EmployeeID != "" {
			if e, _ := m.employees.GetByID(ctx, orgID, i.EmployeeID); e != nil {
				entry.EmployeeName = e.FullName()
				entry.JobTitle = e.JobTitle
			}
		}
		out = append(out, entry)
	}
	return out, nil
}
