package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/roofguard-api/internal/domain"
	"github.com/jhoicas/roofguard-api/internal/domain/entity"
	"github.com/jhoicas/roofguard-api/internal/domain/repository"
)

var _ repository.CertificationTemplateRepository = (*CertificationTemplateRepo)(nil)

// CertificationTemplateRepo implementación del puerto CertificationTemplateRepository sobre PostgreSQL.
type CertificationTemplateRepo struct {
	db Querier
}

// NewCertificationTemplateRepository construye el adaptador de persistencia para plantillas.
func NewCertificationTemplateRepository(db Querier) *CertificationTemplateRepo {
	return &CertificationTemplateRepo{db: db}
}

const templateColumns = `id, organization_id, name, valid_days, created_at, updated_at`

// Create persiste una plantilla; el nombre es único por organización.
func (r *CertificationTemplateRepo) Create(ctx context.Context, t *entity.CertificationTemplate) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO certification_templates (`+templateColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		t.ID, t.OrganizationID, t.Name, t.ValidDays, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("plantilla %q: %w", t.Name, domain.ErrConflict)
		}
		return fmt.Errorf("insert certification template: %w", err)
	}
	return nil
}

// GetByID obtiene una plantilla de la organización; nil si no existe.
func (r *CertificationTemplateRepo) GetByID(ctx context.Context, orgID, id string) (*entity.CertificationTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM certification_templates WHERE id = $1 AND organization_id = $2`
	t, err := scanTemplate(r.db.QueryRow(ctx, query, id, orgID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get certification template: %w", err)
	}
	return t, nil
}

// ListByOrganization lista las plantillas ordenadas por nombre.
func (r *CertificationTemplateRepo) ListByOrganization(ctx context.Context, orgID string) ([]*entity.CertificationTemplate, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+templateColumns+` FROM certification_templates WHERE organization_id = $1 ORDER BY name`, orgID)
	if err != nil {
		return nil, fmt.Errorf("list certification templates: %w", err)
	}
	defer rows.Close()
	var list []*entity.CertificationTemplate
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan certification template: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func scanTemplate(row pgx.Row) (*entity.CertificationTemplate, error) {
	var t entity.CertificationTemplate
	if err := row.Scan(&t.ID, &t.OrganizationID, &t.Name, &t.ValidDays, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}
