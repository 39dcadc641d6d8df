package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/roofguard-api/internal/domain"
	"github.com/jhoicas/roofguard-api/internal/domain/entity"
	"github.com/jhoicas/roofguard-api/internal/domain/repository"
)

var _ repository.IncidentRepository = (*IncidentRepo)(nil)

// IncidentRepo implementación del puerto IncidentRepository sobre PostgreSQL.
type IncidentRepo struct {
	db Querier
}

// NewIncidentRepository construye el adaptador de persistencia para incidentes.
func NewIncidentRepository(db Querier) *IncidentRepo {
	return &IncidentRepo{db: db}
}

const incidentColumns = `i.id, i.organization_id, i.reported_by, i.employee_id, i.occurred_at, i.location,
	i.description, i.severity, i.status, i.days_away, i.days_restricted, i.estimated_cost, i.created_at, i.updated_at`

// Create persiste un incidente.
func (r *IncidentRepo) Create(ctx context.Context, i *entity.Incident) error {
	query := `
		INSERT INTO incidents (id, organization_id, reported_by, employee_id, occurred_at, location, description,
			severity, status, days_away, days_restricted, estimated_cost, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.Exec(ctx, query,
		i.ID, i.OrganizationID, nullString(i.ReportedBy), nullString(i.EmployeeID), i.OccurredAt, i.Location,
		i.Description, string(i.Severity), string(i.Status), i.DaysAway, i.DaysRestricted, i.EstimatedCost,
		i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("empleado %s: %w", i.EmployeeID, domain.ErrNotFound)
		}
		return fmt.Errorf("insert incident: %w", err)
	}
	return nil
}

// GetByID obtiene un incidente de la organización.
func (r *IncidentRepo) GetByID(ctx context.Context, orgID, id string) (*entity.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents i WHERE i.id = $1 AND i.organization_id = $2`
	i, err := scanIncident(r.db.QueryRow(ctx, query, id, orgID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get incident: %w", err)
	}
	return i, nil
}

// UpdateStatus actualiza el estado del incidente.
func (r *IncidentRepo) UpdateStatus(ctx context.Context, orgID, id string, status entity.IncidentStatus, updatedAt time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE incidents SET status = $3, updated_at = $4 WHERE id = $1 AND organization_id = $2`,
		id, orgID, string(status), updatedAt,
	)
	if err != nil {
		return fmt.Errorf("update incident status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByOrganization lista incidentes del más reciente al más antiguo con el total sin paginar.
func (r *IncidentRepo) ListByOrganization(ctx context.Context, orgID string, f repository.IncidentFilter, limit, offset int) ([]*entity.Incident, int, error) {
	where := "i.organization_id = $1"
	args := []any{orgID}
	if f.Status != "" {
		args = append(args, string(f.Status))
		where += fmt.Sprintf(" AND i.status = $%d", len(args))
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM incidents i WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count incidents: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM incidents i WHERE %s ORDER BY i.occurred_at DESC, i.id LIMIT $%d OFFSET $%d`,
		incidentColumns, where, len(args)-1, len(args))
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list incidents: %w", err)
	}
	defer rows.Close()
	var list []*entity.Incident
	for rows.Next() {
		i, err := scanIncident(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan incident: %w", err)
		}
		list = append(list, i)
	}
	return list, total, rows.Err()
}

// ListForOSHALog devuelve los incidentes de [from, to) con nombre y puesto del empleado afectado.
func (r *IncidentRepo) ListForOSHALog(ctx context.Context, orgID string, from, to time.Time) ([]entity.OSHALogEntry, error) {
	query := `SELECT ` + incidentColumns + `, e.first_name, e.last_name, e.job_title
		FROM incidents i
		LEFT JOIN employees e ON e.id = i.employee_id
		WHERE i.organization_id = $1 AND i.occurred_at >= $2 AND i.occurred_at < $3
		ORDER BY i.occurred_at`
	rows, err := r.db.Query(ctx, query, orgID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list osha log: %w", err)
	}
	defer rows.Close()
	var out []entity.OSHALogEntry
	for rows.Next() {
		var (
			i                  entity.Incident
			reportedBy, empID  *string
			severity, status   string
			first, last, title *string
		)
		if err := rows.Scan(
			&i.ID, &i.OrganizationID, &reportedBy, &empID, &i.OccurredAt, &i.Location,
			&i.Description, &severity, &status, &i.DaysAway, &i.DaysRestricted, &i.EstimatedCost,
			&i.CreatedAt, &i.UpdatedAt, &first, &last, &title,
		); err != nil {
			return nil, fmt.Errorf("scan osha log: %w", err)
		}
		i.ReportedBy, i.EmployeeID = derefString(reportedBy), derefString(empID)
		i.Severity, i.Status = entity.IncidentSeverity(severity), entity.IncidentStatus(status)
		entry := entity.OSHALogEntry{Incident: i, JobTitle: derefString(title)}
		if first != nil {
			emp := entity.Employee{FirstName: *first, LastName: derefString(last)}
			entry.EmployeeName = emp.FullName()
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

func scanIncident(row pgx.Row) (*entity.Incident, error) {
	var (
		i                 entity.Incident
		reportedBy, empID *string
		severity, status  string
	)
	if err := row.Scan(
		&i.ID, &i.OrganizationID, &reportedBy, &empID, &i.OccurredAt, &i.Location,
		&i.Description, &severity, &status, &i.DaysAway, &i.DaysRestricted, &i.EstimatedCost,
		&i.CreatedAt, &i.UpdatedAt,
	); err != nil {
		return nil, err
	}
	i.ReportedBy, i.EmployeeID = derefString(reportedBy), derefString(empID)
	i.Severity, i.Status = entity.IncidentSeverity(severity), entity.IncidentStatus(status)
	return &i, nil
}
