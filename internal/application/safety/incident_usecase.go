package safety

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/roofguard-api/internal/application/dto"
	"github.com/jhoicas/roofguard-api/internal/domain"
	"github.com/jhoicas/roofguard-api/internal/domain/entity"
	"github.com/jhoicas/roofguard-api/internal/domain/repository"
)

// maxEstimatedCost primer valor que no cabe en NUMERIC(12,2).
var maxEstimatedCost = decimal.New(1, 10)

// IncidentUseCase reporte y seguimiento de incidentes.
type IncidentUseCase struct {
	incidents repository.IncidentRepository
	employees repository.EmployeeRepository
	now       func() time.Time
}

// NewIncidentUseCase construye el caso de uso.
func NewIncidentUseCase(incidents repository.IncidentRepository, employees repository.EmployeeRepository) *IncidentUseCase {
	return &IncidentUseCase{incidents: incidents, employees: employees, now: time.Now}
}

// Report registra un incidente en estado OPEN a nombre de reportedBy.
func (uc *IncidentUseCase) Report(ctx context.Context, orgID, reportedBy string, in dto.CreateIncidentRequest) (*dto.IncidentResponse, error) {
	severity := entity.IncidentSeverity(in.Severity)
	if !severity.Valid() {
		return nil, fmt.Errorf("%w: severidad %q desconocida", domain.ErrInvalidInput, in.Severity)
	}
	now := uc.now().UTC()
	if in.OccurredAt.After(now.Add(time.Hour)) {
		return nil, fmt.Errorf("%w: occurredAt está en el futuro", domain.ErrInvalidInput)
	}
	cost := decimal.Zero
	if s := strings.TrimSpace(in.EstimatedCost); s != "" {
		d, err := decimal.NewFromString(s)
		if err != nil || d.IsNegative() {
			return nil, fmt.Errorf("%w: estimatedCost inválido", domain.ErrInvalidInput)
		}
		cost = d.Round(2)
		if cost.GreaterThanOrEqual(maxEstimatedCost) {
			return nil, fmt.Errorf("%w: estimatedCost debe ser menor que 10000000000", domain.ErrInvalidInput)
		}
	}
	if in.EmployeeID != "" {
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
	}

	i := &entity.Incident{
		ID:             uuid.New().String(),
		OrganizationID: orgID,
		ReportedBy:     reportedBy,
		EmployeeID:     in.EmployeeID,
		OccurredAt:     in.OccurredAt.UTC(),
		Location:       strings.TrimSpace(in.Location),
		Description:    strings.TrimSpace(in.Description),
		Severity:       severity,
		Status:         entity.IncidentOpen,
		DaysAway:       in.DaysAway,
		DaysRestricted: in.DaysRestricted,
		EstimatedCost:  cost,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.incidents.Create(ctx, i); err != nil {
		return nil, err
	}
	return toIncidentResponse(i), nil
}

// GetByID devuelve domain.ErrNotFound si el incidente no existe en la organización.
func (uc *IncidentUseCase) GetByID(ctx context.Context, orgID, id string) (*dto.IncidentResponse, error) {
	if !validID(id) {
		return nil, domain.ErrNotFound
	}
	i, err := uc.incidents.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if i == nil {
		return nil, domain.ErrNotFound
	}
	return toIncidentResponse(i), nil
}

// UpdateStatus cambia el estado; una transición no permitida devuelve domain.ErrConflict.
func (uc *IncidentUseCase) UpdateStatus(ctx context.Context, orgID, id string, in dto.UpdateIncidentStatusRequest) (*dto.IncidentResponse, error) {
	next := entity.IncidentStatus(in.Status)
	if !next.Valid() {
		return nil, fmt.Errorf("%w: estado %q desconocido", domain.ErrInvalidInput, in.Status)
	}
	if !validID(id) {
		return nil, domain.ErrNotFound
	}
	i, err := uc.incidents.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if i == nil {
		return nil, domain.ErrNotFound
	}
	if !i.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: no se puede pasar de %s a %s", domain.ErrConflict, i.Status, next)
	}
	i.Status = next
	i.UpdatedAt = uc.now().UTC()
	if err := uc.incidents.UpdateStatus(ctx, orgID, id, next, i.UpdatedAt); err != nil {
		return nil, err
	}
	return toIncidentResponse(i), nil
}

// List lista incidentes con paginación y filtro opcional por estado.
func (uc *IncidentUseCase) List(ctx context.Context, orgID string, status string, page dto.PageRequest) (*dto.IncidentListResponse, error) {
	f := repository.IncidentFilter{}
	if status != "" {
		f.Status = entity.IncidentStatus(strings.ToUpper(status))
		if !f.Status.Valid() {
			return nil, fmt.Errorf("%w: estado %q desconocido", domain.ErrInvalidInput, status)
		}
	}
	page.DefaultPage()
	list, total, err := uc.incidents.ListByOrganization(ctx, orgID, f, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.IncidentResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toIncidentResponse(i))
	}
	return &dto.IncidentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

func toIncidentResponse(i *entity.Incident) *dto.IncidentResponse {
	var employeeID *string
	if i.EmployeeID != "" {
		id := i.EmployeeID
		employeeID = &id
	}
	return &dto.IncidentResponse{
		ID:             i.ID,
		OrgID:          i.OrganizationID,
		ReportedBy:     i.ReportedBy,
		EmployeeID:     employeeID,
		OccurredAt:     i.OccurredAt,
		Location:       i.Location,
		Description:    i.Description,
		Severity:       string(i.Severity),
		Status:         string(i.Status),
		DaysAway:       i.DaysAway,
		DaysRestricted: i.DaysRestricted,
		EstimatedCost:  i.EstimatedCost.StringFixed(2),
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}
