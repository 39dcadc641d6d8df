package safety

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/roofguard-api/internal/application/safety/safetytest"
	"github.com/jhoicas/roofguard-api/internal/domain"
	"github.com/jhoicas/roofguard-api/internal/domain/entity"
)

func TestOSHALogUseCase_SoloRegistrablesDelAnio(t *testing.T) {
	employees := safetytest.NewEmployees()
	require.NoError(t, employees.Create(context.Background(), &entity.Employee{
		ID: "emp-1", OrganizationID: "org-1", FirstName: "Rosa", LastName: "Díaz", JobTitle: "Roofer",
	}))
	incidents := safetytest.NewIncidents(employees)
	add := func(id string, at time.Time, sev entity.IncidentSeverity, org string) {
		require.NoError(t, incidents.Create(context.Background(), &entity.Incident{
			ID: id, OrganizationID: org, EmployeeID: "emp-1", OccurredAt: at, Severity: sev, Status: entity.IncidentOpen,
		}))
	}
	add("late", time.Date(2024, 11, 3, 9, 0, 0, 0, time.UTC), entity.SeverityLostTime, "org-1")
	add("early", time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC), entity.SeverityRecordable, "org-1")
	add("near", time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC), entity.SeverityNearMiss, "org-1")
	add("prev-year", time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC), entity.SeverityFatality, "org-1")
	add("other-org", time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC), entity.SeverityFatality, "org-2")

	gen := &captureGenerator{}
	uc := NewOSHALogUseCase(incidents, gen)

	pdf, name, err := uc.DownloadPDF(context.Background(), "org-1", "Acme Roofing", 2024)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "osha300-2024.pdf", name)
	assert.Equal(t, OSHALogHeader{OrganizationName: "Acme Roofing", Year: 2024}, gen.header)

	require.Len(t, gen.entries, 2)
	assert.Equal(t, "early", gen.entries[0].Incident.ID)
	assert.Equal(t, "late", gen.entries[1].Incident.ID)
	assert.Equal(t, "Rosa Díaz", gen.entries[0].EmployeeName)
}

func TestOSHALogUseCase_AnioFueraDeRango(t *testing.T) {
	uc := NewOSHALogUseCase(safetytest.NewIncidents(safetytest.NewEmployees()), &captureGenerator{})
	_, _, err := uc.DownloadPDF(context.Background(), "org-1", "Acme", 1900)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
