package safety

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/roofguard-api/internal/application/dto"
	"github.com/jhoicas/roofguard-api/internal/application/safety/safetytest"
	"github.com/jhoicas/roofguard-api/internal/domain"
	"github.com/jhoicas/roofguard-api/internal/domain/repository"
)

func TestEmployeeUseCase_CrearYObtener(t *testing.T) {
	uc := NewEmployeeUseCase(safetytest.NewEmployees())
	ctx := context.Background()

	created, err := uc.Create(ctx, "org-1", dto.CreateEmployeeRequest{
		FirstName: " Rosa ", LastName: "Díaz", JobTitle: "Roofer", Email: "Rosa@Example.com", HiredAt: "2024-03-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "Rosa", created.FirstName)
	assert.Equal(t, "rosa@example.com", created.Email)
	assert.True(t, created.Active)
	require.NotNil(t, created.HiredAt)
	assert.Equal(t, "2024-03-01", *created.HiredAt)

	got, err := uc.GetByID(ctx, "org-1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = uc.GetByID(ctx, "org-2", created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "otra organización no ve el empleado")
}

func TestEmployeeUseCase_FechaInvalida(t *testing.T) {
	uc := NewEmployeeUseCase(safetytest.NewEmployees())
	_, err := uc.Create(context.Background(), "org-1", dto.CreateEmployeeRequest{FirstName: "A", HiredAt: "01/03/2024"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEmployeeUseCase_ActualizarParcial(t *testing.T) {
	uc := NewEmployeeUseCase(safetytest.NewEmployees())
	ctx := context.Background()
	created, err := uc.Create(ctx, "org-1", dto.CreateEmployeeRequest{FirstName: "Luis", JobTitle: "Helper"})
	require.NoError(t, err)

	title := "Foreman"
	inactive := false
	updated, err := uc.Update(ctx, "org-1", created.ID, dto.UpdateEmployeeRequest{JobTitle: &title, Active: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "Luis", updated.FirstName)
	assert.Equal(t, "Foreman", updated.JobTitle)
	assert.False(t, updated.Active)

	blank := "  "
	_, err = uc.Update(ctx, "org-1", created.ID, dto.UpdateEmployeeRequest{FirstName: &blank})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEmployeeUseCase_EliminarYListar(t *testing.T) {
	uc := NewEmployeeUseCase(safetytest.NewEmployees())
	ctx := context.Background()
	a, _ := uc.Create(ctx, "org-1", dto.CreateEmployeeRequest{FirstName: "Ana"})
	_, _ = uc.Create(ctx, "org-1", dto.CreateEmployeeRequest{FirstName: "Beto"})
	_, _ = uc.Create(ctx, "org-2", dto.CreateEmployeeRequest{FirstName: "Carla"})

	list, err := uc.List(ctx, "org-1", repository.EmployeeFilter{}, dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, list.Page.Total)
	assert.Equal(t, 20, list.Page.Limit)

	require.NoError(t, uc.Delete(ctx, "org-1", a.ID))
	assert.ErrorIs(t, uc.Delete(ctx, "org-1", a.ID), domain.ErrNotFound)

	list, err = uc.List(ctx, "org-1", repository.EmployeeFilter{}, dto.PageRequest{Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Page.Total)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Beto", list.Items[0].FirstName)
}

func TestEmployeeUseCase_IDNoUUIDEsInexistente(t *testing.T) {
	uc := NewEmployeeUseCase(uuidEmployees{})
	ctx := context.Background()
	name := "Luis"

	for _, id := range []string{"not-a-uuid", "123", "{6ba7b810-9dad-11d1-80b4-00c04fd430c8}"} {
		_, err := uc.GetByID(ctx, "org-1", id)
		assert.ErrorIs(t, err, domain.ErrNotFound, id)
		_, err = uc.Update(ctx, "org-1", id, dto.UpdateEmployeeRequest{FirstName: &name})
		assert.ErrorIs(t, err, domain.ErrNotFound, id)
		assert.ErrorIs(t, uc.Delete(ctx, "org-1", id), domain.ErrNotFound, id)
	}
}
