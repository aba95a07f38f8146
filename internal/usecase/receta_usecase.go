package usecase

import (
	"context"

	"recetario/internal/domain/entity"
)

// CreateRecetaInput carries the fields for recipe creation. Every field is
// optional: nil pointers fall back to empty strings, and a nil author falls
// back to user id 1. Pointer fields make "absent" explicit instead of
// relying on untyped key lookups.
type CreateRecetaInput struct {
	Titulo           *string `json:"titulo"`
	Descripcion      *string `json:"descripcion"`
	Ingredientes     *string `json:"ingredientes"`
	PasosPreparacion *string `json:"pasos_preparacion"`
	AutorID          *uint   `json:"autor_id"`
}

// UpdateRecetaInput carries a partial update: only non-nil fields are merged
// over the stored recipe.
type UpdateRecetaInput struct {
	Titulo           *string `json:"titulo"`
	Descripcion      *string `json:"descripcion"`
	Ingredientes     *string `json:"ingredientes"`
	PasosPreparacion *string `json:"pasos_preparacion"`
	AutorID          *uint   `json:"autor_id"`
}

// RecetaUsecase defines the interface for recipe catalog operations.
type RecetaUsecase interface {
	// List returns all recipes ordered by ascending ID.
	List(ctx context.Context) ([]*entity.Receta, error)

	// Get returns a single recipe.
	Get(ctx context.Context, id uint) (*entity.Receta, error)

	// Create stores a new recipe, applying defaults for absent fields.
	Create(ctx context.Context, input *CreateRecetaInput) (*entity.Receta, error)

	// Update merges the supplied fields over the stored recipe and returns
	// the updated entity.
	Update(ctx context.Context, id uint, input *UpdateRecetaInput) (*entity.Receta, error)

	// Delete removes a recipe and returns the removed entity so callers can
	// reference its title in the confirmation.
	Delete(ctx context.Context, id uint) (*entity.Receta, error)
}
