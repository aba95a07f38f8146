package repository

import (
	"context"
	"errors"

	"recetario/internal/domain/entity"
)

// ErrRecetaNotFound is a domain-specific error returned when a recipe is not found.
var ErrRecetaNotFound = errors.New("receta not found")

// RecetaRepository defines the standard operations for recipe persistence.
type RecetaRepository interface {
	// Create persists a new recipe and assigns its ID. The author
	// reference is stored as given; its existence is not validated here.
	Create(ctx context.Context, receta *entity.Receta) error

	// FindByID retrieves a single recipe by its unique ID.
	FindByID(ctx context.Context, id uint) (*entity.Receta, error)

	// List returns all recipes ordered by ascending ID.
	List(ctx context.Context) ([]*entity.Receta, error)

	// FindByAutor returns all recipes authored by the given user, ordered
	// by ascending ID.
	FindByAutor(ctx context.Context, autorID uint) ([]*entity.Receta, error)

	// Update overwrites the stored row with the given recipe's fields.
	// Returns ErrRecetaNotFound when the ID does not exist.
	Update(ctx context.Context, receta *entity.Receta) error

	// Delete removes the recipe with the given ID. The boolean reports
	// whether a row was actually removed.
	Delete(ctx context.Context, id uint) (bool, error)

	// Count returns the number of stored recipes.
	Count(ctx context.Context) (int64, error)
}
