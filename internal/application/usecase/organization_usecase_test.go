package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/roofguard-api/internal/application/auth/authtest"
	"github.com/jhoicas/roofguard-api/internal/application/usecase"
	"github.com/jhoicas/roofguard-api/internal/domain"
	"github.com/jhoicas/roofguard-api/internal/domain/entity"
)

func TestOrganizationUseCase_Get(t *testing.T) {
	store := authtest.NewStore()
	orgID := store.SeedOrg("Acme Roofing")
	uc := usecase.NewOrganizationUseCase(store.Organizations(), store.Memberships())

	out, err := uc.Get(context.Background(), orgID, entity.RoleManager)
	require.NoError(t, err)
	assert.Equal(t, "Acme Roofing", out.Name)
	assert.Equal(t, "MANAGER", out.Role)

	_, err = uc.Get(context.Background(), "missing", entity.RoleOwner)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrganizationUseCase_ListMembers(t *testing.T) {
	store := authtest.NewStore()
	orgID := store.SeedOrg("Acme Roofing")
	owner := store.SeedUser("owner@example.com", "Password123!", "")
	worker := store.SeedUser("worker@example.com", "Password123!", "")
	store.SetRole(owner, orgID, entity.RoleOwner)
	store.SetRole(worker, orgID, entity.RoleWorker)
	store.SetRole(worker, store.SeedOrg("Other"), entity.RoleOwner)

	uc := usecase.NewOrganizationUseCase(store.Organizations(), store.Memberships())
	out, err := uc.ListMembers(context.Background(), orgID)
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
}
