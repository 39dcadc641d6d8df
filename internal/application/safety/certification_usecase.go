package safety

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/roofguard-api/internal/application/dto"
	"github.com/jhoicas/roofguard-api/internal/domain"
	"github.com/jhoicas/roofguard-api/internal/domain/entity"
	"github.com/jhoicas/roofguard-api/internal/domain/repository"
)

// CertificationUseCase registro y seguimiento de vencimientos de certificaciones.
type CertificationUseCase struct {
	certs     repository.CertificationRepository
	employees repository.EmployeeRepository
	templates repository.CertificationTemplateRepository
	warning   time.Duration
	now       func() time.Time
}

// NewCertificationUseCase construye el caso de uso; warning es la ventana para marcar EXPIRING.
func NewCertificationUseCase(
	certs repository.CertificationRepository,
	employees repository.EmployeeRepository,
	templates repository.CertificationTemplateRepository,
	warning time.Duration,
) *CertificationUseCase {
	return &CertificationUseCase{certs: certs, employees: employees, templates: templates, warning: warning, now: time.Now}
}

// Create registra una certificación para un empleado de la organización.
// Devuelve domain.ErrNotFound si el empleado o la plantilla no pertenecen a orgID.
func (uc *CertificationUseCase) Create(ctx context.Context, orgID string, in dto.CreateCertificationRequest) (*dto.CertificationResponse, error) {
	issuedAt, err := time.Parse(dateLayout, strings.TrimSpace(in.IssuedAt))
	if err != nil {
		return nil, fmt.Errorf("%w: issuedAt no tiene formato YYYY-MM-DD", domain.ErrInvalidInput)
	}
	expiresAt, err := parseOptionalDate(in.ExpiresAt)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)

	templateID := strings.TrimSpace(in.TemplateID)
	if templateID != "" {
		tpl, err := uc.template(ctx, orgID, templateID)
		if err != nil {
			return nil, err
		}
		if name == "" {
			name = tpl.Name
		}
		if expiresAt == nil {
			exp := tpl.ExpiresFrom(issuedAt)
			expiresAt = &exp
		}
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name es obligatorio cuando no se indica templateId", domain.ErrInvalidInput)
	}
	if expiresAt != nil && expiresAt.Before(issuedAt) {
		return nil, fmt.Errorf("%w: expiresAt es anterior a issuedAt", domain.ErrInvalidInput)
	}

	if !validID(in.EmployeeID) {
		return nil, fmt.Errorf("empleado %s: %w", in.EmployeeID, domain.ErrNotFound)
	}
	emp, err := uc.employees.GetByID(ctx, orgID, in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, fmt.Errorf("empleado %s: %w", in.EmployeeID, domain.ErrNotFound)
	}

	now := uc.now().UTC()
	c := &entity.Certification{
		ID:             uuid.New().String(),
		OrganizationID: orgID,
		EmployeeID:     emp.ID,
		TemplateID:     templateID,
		Name:           name,
		Issuer:         strings.TrimSpace(in.Issuer),
		IssuedAt:       issuedAt,
		ExpiresAt:      expiresAt,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.certs.Create(ctx, c); err != nil {
		return nil, err
	}
	return uc.toResponse(c, now), nil
}

// List devuelve las certificaciones; expiringWithinDays >= 0 limita a las que vencen
// dentro de esa cantidad de días (incluye las ya vencidas).
func (uc *CertificationUseCase) List(ctx context.Context, orgID, employeeID string, expiringWithinDays int) (*dto.CertificationListResponse, error) {
	if employeeID != "" && !validID(employeeID) {
		return nil, fmt.Errorf("%w: employeeId debe ser un UUID", domain.ErrInvalidInput)
	}
	now := uc.now().UTC()
	f := repository.CertificationFilter{EmployeeID: employeeID}
	if expiringWithinDays >= 0 {
		y, m, d := now.Date()
		limit := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, expiringWithinDays+1)
		f.ExpiresBefore = &limit
	}
	list, err := uc.certs.ListByOrganization(ctx, orgID, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CertificationResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *uc.toResponse(c, now))
	}
	return &dto.CertificationListResponse{Items: items}, nil
}

// Delete elimina una certificación de la organización.
func (uc *CertificationUseCase) Delete(ctx context.Context, orgID, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	deleted, err := uc.certs.Delete(ctx, orgID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func (uc *CertificationUseCase) template(ctx context.Context, orgID, id string) (*entity.CertificationTemplate, error) {
	if !validID(id) {
		return nil, fmt.Errorf("plantilla %s: %w", id, domain.ErrNotFound)
	}
	tpl, err := uc.templates.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, fmt.Errorf("plantilla %s: %w", id, domain.ErrNotFound)
	}
	return tpl, nil
}

func (uc *CertificationUseCase) toResponse(c *entity.Certification, now time.Time) *dto.CertificationResponse {
	return &dto.CertificationResponse{
		ID:         c.ID,
		OrgID:      c.OrganizationID,
		EmployeeID: c.EmployeeID,
		TemplateID: optionalString(c.TemplateID),
		Name:       c.Name,
		Issuer:     c.Issuer,
		IssuedAt:   c.IssuedAt.Format(dateLayout),
		ExpiresAt:  formatOptionalDate(c.ExpiresAt),
		Status:     string(c.StatusAt(now, uc.warning)),
		CreatedAt:  c.CreatedAt,
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
