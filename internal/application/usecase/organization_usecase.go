package usecase

import (
	"context"

	"github.com/jhoicas/roofguard-api/internal/application/dto"
	"github.com/jhoicas/roofguard-api/internal/domain"
	"github.com/jhoicas/roofguard-api/internal/domain/entity"
	"github.com/jhoicas/roofguard-api/internal/domain/repository"
)

// OrganizationUseCase consultas sobre la organización activa de la petición.
type OrganizationUseCase struct {
	orgs        repository.OrganizationRepository
	memberships repository.MembershipRepository
}

// NewOrganizationUseCase construye el caso de uso con los puertos de persistencia.
func NewOrganizationUseCase(orgs repository.OrganizationRepository, memberships repository.MembershipRepository) *OrganizationUseCase {
	return &OrganizationUseCase{orgs: orgs, memberships: memberships}
}

// Get devuelve la organización con el rol del usuario que consulta.
func (uc *OrganizationUseCase) Get(ctx context.Context, orgID string, role entity.Role) (*dto.OrganizationResponse, error) {
	org, err := uc.orgs.GetByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.OrganizationResponse{ID: org.ID, Name: org.Name, Role: role.String()}, nil
}

// ListMembers lista las membresías de la organización.
func (uc *OrganizationUseCase) ListMembers(ctx context.Context, orgID string) (*dto.MemberListResponse, error) {
	list, err := uc.memberships.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MemberResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MemberResponse{UserID: m.UserID, Role: m.Role.String(), JoinedAt: m.CreatedAt})
	}
	return &dto.MemberListResponse{Items: items}, nil
}
