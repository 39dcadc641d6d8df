package repository

import (
	"context"

	"github.com/jhoicas/roofguard-api/internal/domain/entity"
)

// OrganizationRepository define el puerto de persistencia para Organization.
type OrganizationRepository interface {
	Create(ctx context.Context, org *entity.Organization) error
	GetByID(ctx context.Context, id string) (*entity.Organization, error)
}

// MembershipRepository define el puerto de persistencia para Membership.
type MembershipRepository interface {
	Create(ctx context.Context, m *entity.Membership) error
	ListByOrganization(ctx context.Context, orgID string) ([]*entity.Membership, error)
}
