// Package demo carga el tenant de demostración a través de los casos de uso, con las mismas
// validaciones que la API.
package demo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/roofguard-api/internal/application/auth"
	"github.com/jhoicas/roofguard-api/internal/application/dto"
	"github.com/jhoicas/roofguard-api/internal/application/safety"
	"github.com/jhoicas/roofguard-api/internal/domain"
)

// Credenciales del dueño del tenant de demostración.
const (
	OwnerEmail    = "owner@acme.test"
	OwnerPassword = "Password123!"
	OrgName       = "Acme Roofing"
)

const dateLayout = "2006-01-02"

// ErrAlreadySeeded el dueño de demostración ya existe; no se carga nada.
var ErrAlreadySeeded = errors.New("el tenant de demostración ya existe")

// Seeder casos de uso que usa la carga.
type Seeder struct {
	Auth           *auth.AuthUseCase
	Employees      *safety.EmployeeUseCase
	Templates      *safety.CertificationTemplateUseCase
	Certifications *safety.CertificationUseCase
	Incidents      *safety.IncidentUseCase
	Now            func() time.Time
}

// Result IDs creados.
type Result struct {
	OwnerID     string
	OrgID       string
	EmployeeIDs []string
	TemplateIDs []string
}

type employeeSeed struct {
	first, last, title string
	yearsAgo           int
}

var employees = []employeeSeed{
	{"Jane", "Doe", "Roofer", 1},
	{"John", "Smith", "Foreman", 2},
}

var templates = []dto.CreateCertificationTemplateRequest{
	{Name: "Forklift Operator", ValidDays: 1095},
	{Name: "Fall Protection", ValidDays: 730},
}

// Run crea dueño, organización, empleados, plantillas, la certificación de montacargas de Jane
// y un incidente de primeros auxilios. Si el dueño ya existe devuelve ErrAlreadySeeded.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	today := now().UTC()

	reg, err := s.Auth.Register(ctx, dto.RegisterRequest{
		Email:    OwnerEmail,
		Password: OwnerPassword,
		Name:     "Acme Owner",
		OrgName:  OrgName,
		Locale:   "en",
	})
	if errors.Is(err, domain.ErrEmailAlreadyExists) {
		return nil, ErrAlreadySeeded
	}
	if err != nil {
		return nil, fmt.Errorf("registrar dueño: %w", err)
	}
	res := &Result{OwnerID: reg.User.ID, OrgID: reg.Org.ID}

	for _, e := range employees {
		out, err := s.Employees.Create(ctx, res.OrgID, dto.CreateEmployeeRequest{
			FirstName: e.first,
			LastName:  e.last,
			JobTitle:  e.title,
			HiredAt:   today.AddDate(-e.yearsAgo, 0, 0).Format(dateLayout),
		})
		if err != nil {
			return nil, fmt.Errorf("empleado %s: %w", e.first, err)
		}
		res.EmployeeIDs = append(res.EmployeeIDs, out.ID)
	}

	for _, t := range templates {
		out, err := s.Templates.Create(ctx, res.OrgID, t)
		if err != nil {
			return nil, fmt.Errorf("plantilla %s: %w", t.Name, err)
		}
		res.TemplateIDs = append(res.TemplateIDs, out.ID)
	}

	jane := res.EmployeeIDs[0]
	if _, err := s.Certifications.Create(ctx, res.OrgID, dto.CreateCertificationRequest{
		EmployeeID: jane,
		TemplateID: res.TemplateIDs[0],
		IssuedAt:   today.AddDate(0, 0, -60).Format(dateLayout),
	}); err != nil {
		return nil, fmt.Errorf("certificación: %w", err)
	}

	if _, err := s.Incidents.Report(ctx, res.OrgID, res.OwnerID, dto.CreateIncidentRequest{
		EmployeeID:  jane,
		OccurredAt:  today.AddDate(0, 0, -7),
		Location:    "Atlanta job site",
		Description: "Minor cut while handling shingles",
		Severity:    "FIRST_AID",
	}); err != nil {
		return nil, fmt.Errorf("incidente: %w", err)
	}
	return res, nil
}
