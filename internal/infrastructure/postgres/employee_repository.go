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

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	db Querier
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(db Querier) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

const employeeColumns = `id, organization_id, first_name, last_name, job_title, phone, email, hired_at, active, created_at, updated_at`

// Create persiste un nuevo empleado.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, query,
		e.ID, e.OrganizationID, e.FirstName, e.LastName, e.JobTitle, e.Phone, e.Email,
		e.HiredAt, e.Active, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado de la organización.
func (r *EmployeeRepo) GetByID(ctx context.Context, orgID, id string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1 AND organization_id = $2`
	e, err := scanEmployee(r.db.QueryRow(ctx, query, id, orgID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// Update actualiza los datos del empleado.
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	query := `
		UPDATE employees SET first_name = $3, last_name = $4, job_title = $5, phone = $6, email = $7,
			hired_at = $8, active = $9, updated_at = $10
		WHERE id = $1 AND organization_id = $2`
	tag, err := r.db.Exec(ctx, query,
		e.ID, e.OrganizationID, e.FirstName, e.LastName, e.JobTitle, e.Phone, e.Email,
		e.HiredAt, e.Active, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un empleado; sus certificaciones caen en cascada y sus incidentes quedan sin empleado.
func (r *EmployeeRepo) Delete(ctx context.Context, orgID, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id = $1 AND organization_id = $2`, id, orgID)
	if err != nil {
		return false, fmt.Errorf("delete employee: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListByOrganization lista empleados con paginación y devuelve el total sin paginar.
func (r *EmployeeRepo) ListByOrganization(ctx context.Context, orgID string, f repository.EmployeeFilter, limit, offset int) ([]*entity.Employee, int, error) {
	where := "organization_id = $1"
	args := []any{orgID}
	if f.Active != nil {
		args = append(args, *f.Active)
		where += fmt.Sprintf(" AND active = $%d", len(args))
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count employees: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM employees WHERE %s ORDER BY last_name, first_name, id LIMIT $%d OFFSET $%d`,
		employeeColumns, where, len(args)-1, len(args))
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, total, rows.Err()
}

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var (
		e       entity.Employee
		hiredAt *time.Time
	)
	if err := row.Scan(
		&e.ID, &e.OrganizationID, &e.FirstName, &e.LastName, &e.JobTitle, &e.Phone, &e.Email,
		&hiredAt, &e.Active, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	e.HiredAt = hiredAt
	return &e, nil
}
