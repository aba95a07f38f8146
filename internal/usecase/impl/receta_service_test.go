package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "recetario/internal/domain/errors"
	"recetario/internal/infra/persistence/memory"
	"recetario/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecetaServiceForTest(t *testing.T) usecase.RecetaUsecase {
	t.Helper()

	return NewRecetaService(RecetaServiceParams{
		RecetaRepo: memory.NewRecetaRepository(memory.NewStore()),
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func strPtr(s string) *string { return &s }

func TestRecetaService_Create_DefaultsAbsentFields(t *testing.T) {
	svc := newRecetaServiceForTest(t)
	ctx := context.Background()

	receta, err := svc.Create(ctx, &usecase.CreateRecetaInput{Titulo: strPtr("Gazpacho")})
	require.NoError(t, err)

	assert.NotZero(t, receta.ID)
	assert.Equal(t, "Gazpacho", receta.Titulo)
	assert.Empty(t, receta.Descripcion)
	assert.Empty(t, receta.Ingredientes)
	assert.Empty(t, receta.PasosPreparacion)
	assert.Equal(t, uint(1), receta.AutorID)
}

func TestRecetaService_Create_EmptyInput(t *testing.T) {
	svc := newRecetaServiceForTest(t)

	receta, err := svc.Create(context.Background(), &usecase.CreateRecetaInput{})
	require.NoError(t, err)
	assert.Empty(t, receta.Titulo)
	assert.Equal(t, uint(1), receta.AutorID)
}

func TestRecetaService_Update_MergesOnlySuppliedFields(t *testing.T) {
	svc := newRecetaServiceForTest(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &usecase.CreateRecetaInput{
		Titulo:           strPtr("Paella"),
		Descripcion:      strPtr("Arroz con cosas"),
		Ingredientes:     strPtr("Arroz, Azafrán"),
		PasosPreparacion: strPtr("1. Sofreír\n2. Añadir arroz"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, &usecase.UpdateRecetaInput{
		Descripcion: strPtr("Arroz valenciano"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Paella", updated.Titulo)
	assert.Equal(t, "Arroz valenciano", updated.Descripcion)
	assert.Equal(t, "Arroz, Azafrán", updated.Ingredientes)
	assert.Equal(t, "1. Sofreír\n2. Añadir arroz", updated.PasosPreparacion)

	// The merge must also be visible on a fresh read.
	fetched, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Arroz valenciano", fetched.Descripcion)
	assert.Equal(t, "Paella", fetched.Titulo)
}

func TestRecetaService_Update_NotFound(t *testing.T) {
	svc := newRecetaServiceForTest(t)

	_, err := svc.Update(context.Background(), 99, &usecase.UpdateRecetaInput{Titulo: strPtr("x")})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRecetaNotFound)
}

func TestRecetaService_Delete_ReturnsRemovedReceta(t *testing.T) {
	svc := newRecetaServiceForTest(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &usecase.CreateRecetaInput{Titulo: strPtr("Fabada")})
	require.NoError(t, err)

	removed, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fabada", removed.Titulo)

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrRecetaNotFound)
}

func TestRecetaService_Delete_MissingLeavesCatalogUntouched(t *testing.T) {
	svc := newRecetaServiceForTest(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &usecase.CreateRecetaInput{Titulo: strPtr("Cocido")})
	require.NoError(t, err)

	_, err = svc.Delete(ctx, 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRecetaNotFound)

	recetas, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, recetas, 1)
}

func TestRecetaService_List_OrderedByID(t *testing.T) {
	svc := newRecetaServiceForTest(t)
	ctx := context.Background()

	for _, titulo := range []string{"Primera", "Segunda", "Tercera"} {
		_, err := svc.Create(ctx, &usecase.CreateRecetaInput{Titulo: strPtr(titulo)})
		require.NoError(t, err)
	}

	recetas, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, recetas, 3)
	assert.Equal(t, "Primera", recetas[0].Titulo)
	assert.Equal(t, "Segunda", recetas[1].Titulo)
	assert.Equal(t, "Tercera", recetas[2].Titulo)
}
