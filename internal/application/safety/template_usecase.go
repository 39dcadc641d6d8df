package safety

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/roofguard-api/internal/application/dto"
	"github.com/jhoicas/roofguard-api/internal/domain/entity"
	"github.com/jhoicas/roofguard-api/internal/domain/repository"
)

// CertificationTemplateUseCase catálogo de tipos de certificación de la organización.
type CertificationTemplateUseCase struct {
	templates repository.CertificationTemplateRepository
	now       func() time.Time
}

// NewCertificationTemplateUseCase construye el caso de uso.
func NewCertificationTemplateUseCase(templates repository.CertificationTemplateRepository) *CertificationTemplateUseCase {
	return &CertificationTemplateUseCase{templates: templates, now: time.Now}
}

// Create define una plantilla; domain.ErrConflict si el nombre ya existe en la organización.
func (uc *CertificationTemplateUseCase) Create(ctx context.Context, orgID string, in dto.CreateCertificationTemplateRequest) (*dto.CertificationTemplateResponse, error) {
	now := uc.now().UTC()
	t := &entity.CertificationTemplate{
		ID:             uuid.New().String(),
		OrganizationID: orgID,
		Name:           strings.TrimSpace(in.Name),
		ValidDays:      in.ValidDays,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.templates.Create(ctx, t); err != nil {
		return nil, err
	}
	return toTemplateResponse(t), nil
}

// List devuelve las plantillas ordenadas por nombre.
func (uc *CertificationTemplateUseCase) List(ctx context.Context, orgID string) (*dto.CertificationTemplateListResponse, error) {
	list, err := uc.templates.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CertificationTemplateResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTemplateResponse(t))
	}
	return &dto.CertificationTemplateListResponse{Items: items}, nil
}

func toTemplateResponse(t *entity.CertificationTemplate) *dto.CertificationTemplateResponse {
	return &dto.CertificationTemplateResponse{
		ID:        t.ID,
		OrgID:     t.OrganizationID,
		Name:      t.Name,
		ValidDays: t.ValidDays,
		CreatedAt: t.CreatedAt,
	}
}
