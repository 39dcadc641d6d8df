package safety

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/roofguard-api/internal/domain/entity"
	"github.com/jhoicas/roofguard-api/internal/domain/repository"
)

type captureGenerator struct {
	header  OSHALogHeader
	entries []entity.OSHALogEntry
}

func (g *captureGenerator) GenerateOSHALog(_ context.Context, header OSHALogHeader, entries []entity.OSHALogEntry) ([]byte, error) {
	g.header = header
	g.entries = entries
	return []byte("%PDF-1.4 test"), nil
}

func fixedClock(t time.Time) func() time.Time { return func() time.Time { return t } }

// errBadUUID lo que devuelve Postgres al comparar una columna UUID con texto arbitrario (22P02).
var errBadUUID = errors.New("invalid input syntax for type uuid")

// Los repositorios uuid* fallan como Postgres ante un ID que no es UUID.
// Los métodos no sobrescritos no deben alcanzarse.
type uuidEmployees struct{ repository.EmployeeRepository }

func (uuidEmployees) GetByID(context.Context, string, string) (*entity.Employee, error) {
	return nil, errBadUUID
}
func (uuidEmployees) Update(context.Context, *entity.Employee) error { return errBadUUID }
func (uuidEmployees) Delete(context.Context, string, string) (bool, error) {
	return false, errBadUUID
}

type uuidCertifications struct{ repository.CertificationRepository }

func (uuidCertifications) Delete(context.Context, string, string) (bool, error) {
	return false, errBadUUID
}
func (uuidCertifications) ListByOrganization(context.Context, string, repository.CertificationFilter) ([]*entity.Certification, error) {
	return nil, errBadUUID
}

type uuidTemplates struct{ repository.CertificationTemplateRepository }

func (uuidTemplates) GetByID(context.Context, string, string) (*entity.CertificationTemplate, error) {
	return nil, errBadUUID
}

type uuidIncidents struct{ repository.IncidentRepository }

func (uuidIncidents) GetByID(context.Context, string, string) (*entity.Incident, error) {
	return nil, errBadUUID
}
func (uuidIncidents) UpdateStatus(context.Context, string, string, entity.IncidentStatus, time.Time) error {
	return errBadUUID
}
