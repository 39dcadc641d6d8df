package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/roofguard-api/internal/domain"
	"github.com/jhoicas/roofguard-api/internal/domain/entity"
	"github.com/jhoicas/roofguard-api/internal/domain/repository"
)

var _ repository.CertificationRepository = (*CertificationRepo)(nil)

// CertificationRepo implementación del puerto CertificationRepository sobre PostgreSQL.
type CertificationRepo struct {
	db Querier
}

// NewCertificationRepository construye el adaptador de persistencia para certificaciones.
func NewCertificationRepository(db Querier) *CertificationRepo {
	return &CertificationRepo{db: db}
}

const certificationColumns = `id, organization_id, employee_id, template_id, name, issuer, issued_at, expires_at, created_at, updated_at`

// Create persiste una certificación.
func (r *CertificationRepo) Create(ctx context.Context, c *entity.Certification) error {
	query := `
		INSERT INTO certifications (` + certificationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.OrganizationID, c.EmployeeID, nullString(c.TemplateID), c.Name, c.Issuer, c.IssuedAt, c.ExpiresAt,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("empleado %s: %w", c.EmployeeID, domain.ErrNotFound)
		}
		return fmt.Errorf("insert certification: %w", err)
	}
	return nil
}

// GetByID obtiene una certificación de la organización.
func (r *CertificationRepo) GetByID(ctx context.Context, orgID, id string) (*entity.Certification, error) {
	query := `SELECT ` + certificationColumns + ` FROM certifications WHERE id = $1 AND organization_id = $2`
	c, err := scanCertification(r.db.QueryRow(ctx, query, id, orgID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get certification: %w", err)
	}
	return c, nil
}

// Delete elimina una certificación de la organización.
func (r *CertificationRepo) Delete(ctx context.Context, orgID, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM certifications WHERE id = $1 AND organization_id = $2`, id, orgID)
	if err != nil {
		return false, fmt.Errorf("delete certification: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListByOrganization lista certificaciones ordenadas por vencimiento (las que no vencen al final).
func (r *CertificationRepo) ListByOrganization(ctx context.Context, orgID string, f repository.CertificationFilter) ([]*entity.Certification, error) {
	where := "organization_id = $1"
	args := []any{orgID}
	if f.EmployeeID != "" {
		args = append(args, f.EmployeeID)
		where += fmt.Sprintf(" AND employee_id = $%d", len(args))
	}
	if f.ExpiresBefore != nil {
		args = append(args, *f.ExpiresBefore)
		where += fmt.Sprintf(" AND expires_at IS NOT NULL AND expires_at < $%d", len(args))
	}
	query := `SELECT ` + certificationColumns + ` FROM certifications WHERE ` + where +
		` ORDER BY expires_at ASC NULLS LAST, name`
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list certifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Certification
	for rows.Next() {
		c, err := scanCertification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan certification: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func scanCertification(row pgx.Row) (*entity.Certification, error) {
	var (
		c          entity.Certification
		templateID *string
	)
	if err := row.Scan(
		&c.ID, &c.OrganizationID, &c.EmployeeID, &templateID, &c.Name, &c.Issuer, &c.IssuedAt, &c.ExpiresAt,
		&c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	c.TemplateID = derefString(templateID)
	return &c, nil
}
