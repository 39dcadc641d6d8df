package demo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/roofguard-api/internal/application/auth"
	"github.com/jhoicas/roofguard-api/internal/application/auth/authtest"
	"github.com/jhoicas/roofguard-api/internal/application/demo"
	"github.com/jhoicas/roofguard-api/internal/application/dto"
	"github.com/jhoicas/roofguard-api/internal/application/safety"
	"github.com/jhoicas/roofguard-api/internal/application/safety/safetytest"
	"github.com/jhoicas/roofguard-api/internal/domain/repository"
	"github.com/jhoicas/roofguard-api/pkg/config"
	"github.com/jhoicas/roofguard-api/pkg/jwt"
	"github.com/jhoicas/roofguard-api/pkg/locale"
	"github.com/jhoicas/roofguard-api/pkg/password"
)

type fixture struct {
	seeder    *demo.Seeder
	auth      *auth.AuthUseCase
	employees *safety.EmployeeUseCase
	templates *safety.CertificationTemplateUseCase
	certs     *safety.CertificationUseCase
	incidents *safety.IncidentUseCase
}

func newFixture(t *testing.T, now time.Time) fixture {
	t.Helper()
	store := authtest.NewStore()
	codec, err := jwt.NewCodec(config.JWTConfig{Secret: "test-secret", Issuer: "roofguard-test", TTL: jwt.DefaultTTL})
	require.NoError(t, err)
	authUC := auth.NewAuthUseCase(store, store, auth.NewSessionLoader(store), codec, password.NewHasher(bcrypt.MinCost), locale.NewResolver("en"))

	employeeRepo := safetytest.NewEmployees()
	templateRepo := safetytest.NewCertificationTemplates()
	f := fixture{
		auth:      authUC,
		employees: safety.NewEmployeeUseCase(employeeRepo),
		templates: safety.NewCertificationTemplateUseCase(templateRepo),
		certs:     safety.NewCertificationUseCase(safetytest.NewCertifications(), employeeRepo, templateRepo, 30*24*time.Hour),
		incidents: safety.NewIncidentUseCase(safetytest.NewIncidents(employeeRepo), employeeRepo),
	}
	f.seeder = &demo.Seeder{
		Auth:           f.auth,
		Employees:      f.employees,
		Templates:      f.templates,
		Certifications: f.certs,
		Incidents:      f.incidents,
		Now:            func() time.Time { return now },
	}
	return f
}

func TestSeeder_CargaTenantDeDemostracion(t *testing.T) {
	now := time.Now().UTC()
	f := newFixture(t, now)
	ctx := context.Background()

	res, err := f.seeder.Run(ctx)
	require.NoError(t, err)

	login, err := f.auth.Login(ctx, dto.LoginRequest{Email: demo.OwnerEmail, Password: demo.OwnerPassword})
	require.NoError(t, err)
	require.Len(t, login.User.Orgs, 1)
	assert.Equal(t, demo.OrgName, login.User.Orgs[0].Name)
	assert.Equal(t, "OWNER", login.User.Orgs[0].Role)
	assert.Equal(t, res.OrgID, login.User.Orgs[0].ID)

	emps, err := f.employees.List(ctx, res.OrgID, repository.EmployeeFilter{}, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, emps.Items, 2)
	jane, john := emps.Items[0], emps.Items[1]
	assert.Equal(t, "Jane Doe", jane.FirstName+" "+jane.LastName)
	assert.Equal(t, "Roofer", jane.JobTitle)
	assert.Equal(t, now.AddDate(-1, 0, 0).Format("2006-01-02"), *jane.HiredAt)
	assert.Equal(t, "Foreman", john.JobTitle)
	assert.Equal(t, now.AddDate(-2, 0, 0).Format("2006-01-02"), *john.HiredAt)

	tpls, err := f.templates.List(ctx, res.OrgID)
	require.NoError(t, err)
	require.Len(t, tpls.Items, 2)
	assert.Equal(t, "Fall Protection", tpls.Items[0].Name)
	assert.Equal(t, 730, tpls.Items[0].ValidDays)
	assert.Equal(t, "Forklift Operator", tpls.Items[1].Name)
	assert.Equal(t, 1095, tpls.Items[1].ValidDays)

	certs, err := f.certs.List(ctx, res.OrgID, jane.ID, -1)
	require.NoError(t, err)
	require.Len(t, certs.Items, 1)
	cert := certs.Items[0]
	issued := now.AddDate(0, 0, -60)
	assert.Equal(t, "Forklift Operator", cert.Name)
	assert.Equal(t, issued.Format("2006-01-02"), cert.IssuedAt)
	require.NotNil(t, cert.ExpiresAt)
	day := time.Date(issued.Year(), issued.Month(), issued.Day(), 0, 0, 0, 0, time.UTC)
	assert.Equal(t, day.AddDate(0, 0, 1095).Format("2006-01-02"), *cert.ExpiresAt)
	assert.Equal(t, "VALID", cert.Status)

	incs, err := f.incidents.List(ctx, res.OrgID, "", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, incs.Items, 1)
	inc := incs.Items[0]
	assert.Equal(t, "FIRST_AID", inc.Severity)
	assert.Equal(t, "Atlanta job site", inc.Location)
	assert.Equal(t, "Minor cut while handling shingles", inc.Description)
	require.NotNil(t, inc.EmployeeID)
	assert.Equal(t, jane.ID, *inc.EmployeeID)
	assert.Equal(t, res.OwnerID, inc.ReportedBy)
	assert.WithinDuration(t, now.AddDate(0, 0, -7), inc.OccurredAt, time.Second)
}

func TestSeeder_SegundaEjecucionNoDuplica(t *testing.T) {
	f := newFixture(t, time.Now().UTC())
	ctx := context.Background()

	res, err := f.seeder.Run(ctx)
	require.NoError(t, err)

	_, err = f.seeder.Run(ctx)
	assert.ErrorIs(t, err, demo.ErrAlreadySeeded)

	emps, err := f.employees.List(ctx, res.OrgID, repository.EmployeeFilter{}, dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, emps.Page.Total)
}
