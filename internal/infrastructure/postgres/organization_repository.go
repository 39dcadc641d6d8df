package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/roofguard-api/internal/domain"
	"github.com/jhoicas/roofguard-api/internal/domain/entity"
	"github.com/jhoicas/roofguard-api/internal/domain/repository"
)

var (
	_ repository.OrganizationRepository = (*OrganizationRepo)(nil)
	_ repository.MembershipRepository   = (*MembershipRepo)(nil)
)

// OrganizationRepo implementación del puerto OrganizationRepository sobre PostgreSQL.
type OrganizationRepo struct {
	db Querier
}

// NewOrganizationRepository construye el adaptador de persistencia para organizaciones.
func NewOrganizationRepository(db Querier) *OrganizationRepo {
	return &OrganizationRepo{db: db}
}

// Create persiste una nueva organización.
func (r *OrganizationRepo) Create(ctx context.Context, org *entity.Organization) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO organizations (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		org.ID, org.Name, org.CreatedAt, org.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert organization: %w", err)
	}
	return nil
}

// GetByID obtiene una organización por ID.
func (r *OrganizationRepo) GetByID(ctx context.Context, id string) (*entity.Organization, error) {
	var o entity.Organization
	err := r.db.QueryRow(ctx,
		`SELECT id, name, created_at, updated_at FROM organizations WHERE id = $1`, id,
	).Scan(&o.ID, &o.Name, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}
	return &o, nil
}

// MembershipRepo implementación del puerto MembershipRepository sobre PostgreSQL.
type MembershipRepo struct {
	db Querier
}

// NewMembershipRepository construye el adaptador de persistencia para membresías.
func NewMembershipRepository(db Querier) *MembershipRepo {
	return &MembershipRepo{db: db}
}

// Create persiste una membresía; el par (organización, usuario) es único.
func (r *MembershipRepo) Create(ctx context.Context, m *entity.Membership) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO memberships (id, organization_id, user_id, role, created_at) VALUES ($1, $2, $3, $4, $5)`,
		m.ID, m.OrganizationID, m.UserID, string(m.Role), m.CreatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrConflict
		case isForeignKeyViolation(err):
			return fmt.Errorf("%w: usuario u organización inexistente", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert membership: %w", err)
	}
	return nil
}

// ListByOrganization lista las membresías de una organización.
func (r *MembershipRepo) ListByOrganization(ctx context.Context, orgID string) ([]*entity.Membership, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, organization_id, user_id, role, created_at
		 FROM memberships WHERE organization_id = $1 ORDER BY created_at`, orgID)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	defer rows.Close()
	var list []*entity.Membership
	for rows.Next() {
		var (
			m    entity.Membership
			role string
		)
		if err := rows.Scan(&m.ID, &m.OrganizationID, &m.UserID, &role, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan membership: %w", err)
		}
		m.Role = entity.Role(role)
		list = append(list, &m)
	}
	return list, rows.Err()
}
