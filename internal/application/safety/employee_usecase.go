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

// EmployeeUseCase casos de uso CRUD para empleados de una organización.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
	now  func() time.Time
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, now: time.Now}
}

// Create registra un empleado activo.
func (uc *EmployeeUseCase) Create(ctx context.Context, orgID string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	hiredAt, err := parseOptionalDate(in.HiredAt)
	if err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	e := &entity.Employee{
		ID:             uuid.New().String(),
		OrganizationID: orgID,
		FirstName:      strings.TrimSpace(in.FirstName),
		LastName:       strings.TrimSpace(in.LastName),
		JobTitle:       strings.TrimSpace(in.JobTitle),
		Phone:          strings.TrimSpace(in.Phone),
		Email:          strings.ToLower(strings.TrimSpace(in.Email)),
		HiredAt:        hiredAt,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if e.FirstName == "" {
		return nil, fmt.Errorf("%w: firstName es requerido", domain.ErrInvalidInput)
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

// GetByID devuelve domain.ErrNotFound si el empleado no existe en la organización.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, orgID, id string) (*dto.EmployeeResponse, error) {
	if !validID(id) {
		return nil, domain.ErrNotFound
	}
	e, err := uc.repo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return toEmployeeResponse(e), nil
}

// Update aplica los campos presentes.
func (uc *EmployeeUseCase) Update(ctx context.Context, orgID, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if !validID(id) {
		return nil, domain.ErrNotFound
	}
	e, err := uc.repo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if in.FirstName != nil {
		name := strings.TrimSpace(*in.FirstName)
		if name == "" {
			return nil, fmt.Errorf("%w: firstName no puede quedar vacío", domain.ErrInvalidInput)
		}
		e.FirstName = name
	}
	if in.LastName != nil {
		e.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.JobTitle != nil {
		e.JobTitle = strings.TrimSpace(*in.JobTitle)
	}
	if in.Phone != nil {
		e.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Email != nil {
		e.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.HiredAt != nil {
		hiredAt, err := parseOptionalDate(*in.HiredAt)
		if err != nil {
			return nil, err
		}
		e.HiredAt = hiredAt
	}
	if in.Active != nil {
		e.Active = *in.Active
	}
	e.UpdatedAt = uc.now().UTC()
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

// Delete elimina el empleado y, en cascada, sus certificaciones.
func (uc *EmployeeUseCase) Delete(ctx context.Context, orgID, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	deleted, err := uc.repo.Delete(ctx, orgID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

// List lista empleados con paginación.
func (uc *EmployeeUseCase) List(ctx context.Context, orgID string, f repository.EmployeeFilter, page dto.PageRequest) (*dto.EmployeeListResponse, error) {
	page.DefaultPage()
	list, total, err := uc.repo.ListByOrganization(ctx, orgID, f, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmployeeResponse(e))
	}
	return &dto.EmployeeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:        e.ID,
		OrgID:     e.OrganizationID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		JobTitle:  e.JobTitle,
		Phone:     e.Phone,
		Email:     e.Email,
		HiredAt:   formatOptionalDate(e.HiredAt),
		Active:    e.Active,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// validID informa si id tiene la forma canónica de un UUID; otro valor no puede
// existir en las columnas UUID y se trata como inexistente.
func validID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha %q no tiene formato YYYY-MM-DD", domain.ErrInvalidInput, s)
	}
	return &t, nil
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
