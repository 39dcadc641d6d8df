package safety

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/roofguard-api/internal/application/dto"
	"github.com/jhoicas/roofguard-api/internal/application/safety/safetytest"
	"github.com/jhoicas/roofguard-api/internal/domain"
)

var incidentNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newIncidentFixture(t *testing.T) (*IncidentUseCase, *safetytest.Incidents, string) {
	t.Helper()
	employees := safetytest.NewEmployees()
	emp, err := NewEmployeeUseCase(employees).Create(context.Background(), "org-1", dto.CreateEmployeeRequest{FirstName: "Rosa", LastName: "Díaz", JobTitle: "Roofer"})
	require.NoError(t, err)
	incidents := safetytest.NewIncidents(employees)
	uc := NewIncidentUseCase(incidents, employees)
	uc.now = fixedClock(incidentNow)
	return uc, incidents, emp.ID
}

func validIncident(empID string) dto.CreateIncidentRequest {
	return dto.CreateIncidentRequest{
		EmployeeID:    empID,
		OccurredAt:    incidentNow.Add(-48 * time.Hour),
		Location:      "123 Main St, north slope",
		Description:   "Slipped on wet shingles, harness arrested fall",
		Severity:      "NEAR_MISS",
		EstimatedCost: "150.456",
	}
}

func TestIncidentUseCase_Reportar(t *testing.T) {
	uc, _, empID := newIncidentFixture(t)

	out, err := uc.Report(context.Background(), "org-1", "user-1", validIncident(empID))
	require.NoError(t, err)
	assert.Equal(t, "OPEN", out.Status)
	assert.Equal(t, "user-1", out.ReportedBy)
	assert.Equal(t, "150.46", out.EstimatedCost)
	require.NotNil(t, out.EmployeeID)
	assert.Equal(t, empID, *out.EmployeeID)
}

func TestIncidentUseCase_ReportarSinEmpleado(t *testing.T) {
	uc, _, _ := newIncidentFixture(t)
	in := validIncident("")
	in.EstimatedCost = ""

	out, err := uc.Report(context.Background(), "org-1", "user-1", in)
	require.NoError(t, err)
	assert.Nil(t, out.EmployeeID)
	assert.Equal(t, "0.00", out.EstimatedCost)
}

func TestIncidentUseCase_ReportarInvalido(t *testing.T) {
	uc, _, empID := newIncidentFixture(t)
	ctx := context.Background()

	neg := validIncident(empID)
	neg.EstimatedCost = "-1"
	_, err := uc.Report(ctx, "org-1", "user-1", neg)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	future := validIncident(empID)
	future.OccurredAt = incidentNow.Add(72 * time.Hour)
	_, err = uc.Report(ctx, "org-1", "user-1", future)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Report(ctx, "org-2", "user-1", validIncident(empID))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIncidentUseCase_Transiciones(t *testing.T) {
	uc, _, empID := newIncidentFixture(t)
	ctx := context.Background()
	created, err := uc.Report(ctx, "org-1", "user-1", validIncident(empID))
	require.NoError(t, err)

	out, err := uc.UpdateStatus(ctx, "org-1", created.ID, dto.UpdateIncidentStatusRequest{Status: "CLOSED"})
	require.NoError(t, err)
	assert.Equal(t, "CLOSED", out.Status)

	_, err = uc.UpdateStatus(ctx, "org-1", created.ID, dto.UpdateIncidentStatusRequest{Status: "OPEN"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	out, err = uc.UpdateStatus(ctx, "org-1", created.ID, dto.UpdateIncidentStatusRequest{Status: "INVESTIGATING"})
	require.NoError(t, err)
	assert.Equal(t, "INVESTIGATING", out.Status)

	_, err = uc.UpdateStatus(ctx, "org-2", created.ID, dto.UpdateIncidentStatusRequest{Status: "CLOSED"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIncidentUseCase_ListarPorEstado(t *testing.T) {
	uc, _, empID := newIncidentFixture(t)
	ctx := context.Background()
	first, _ := uc.Report(ctx, "org-1", "user-1", validIncident(empID))
	_, _ = uc.Report(ctx, "org-1", "user-1", validIncident(empID))
	_, err := uc.UpdateStatus(ctx, "org-1", first.ID, dto.UpdateIncidentStatusRequest{Status: "CLOSED"})
	require.NoError(t, err)

	open, err := uc.List(ctx, "org-1", "open", dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, open.Page.Total)

	_, err = uc.List(ctx, "org-1", "ARCHIVED", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestIncidentUseCase_CostoFueraDeRango(t *testing.T) {
	uc, _, empID := newIncidentFixture(t)
	ctx := context.Background()

	tooBig := validIncident(empID)
	tooBig.EstimatedCost = "10000000000"
	_, err := uc.Report(ctx, "org-1", "user-1", tooBig)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	rounded := validIncident(empID)
	rounded.EstimatedCost = "9999999999.999"
	_, err = uc.Report(ctx, "org-1", "user-1", rounded)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "redondea a 10000000000.00")

	maxCost := validIncident(empID)
	maxCost.EstimatedCost = "9999999999.99"
	out, err := uc.Report(ctx, "org-1", "user-1", maxCost)
	require.NoError(t, err)
	assert.Equal(t, "9999999999.99", out.EstimatedCost)
}

func TestIncidentUseCase_IDNoUUIDNoLlegaALaBase(t *testing.T) {
	uc := NewIncidentUseCase(uuidIncidents{}, uuidEmployees{})
	uc.now = fixedClock(incidentNow)
	ctx := context.Background()

	_, err := uc.GetByID(ctx, "org-1", "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.UpdateStatus(ctx, "org-1", "42", dto.UpdateIncidentStatusRequest{Status: "CLOSED"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Report(ctx, "org-1", "user-1", validIncident("rosa"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
