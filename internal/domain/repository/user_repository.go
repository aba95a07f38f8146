// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"recetario/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("usuario not found")

// ErrDuplicateUser is returned when an insert would violate the username or
// email uniqueness constraint.
var ErrDuplicateUser = errors.New("usuario already exists")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
// Implementations hand out copies; callers never receive handles into storage.
type UserRepository interface {
	// Create persists a new user and assigns its ID.
	// Returns ErrDuplicateUser when username or email is already taken.
	Create(ctx context.Context, user *entity.Usuario) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uint) (*entity.Usuario, error)

	// FindByUsername retrieves a single user by their username.
	FindByUsername(ctx context.Context, username string) (*entity.Usuario, error)

	// FindByUsernameOrEmail retrieves the first user matching either value.
	// Used by the registration uniqueness check.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.Usuario, error)

	// List returns all users ordered by ascending ID.
	List(ctx context.Context) ([]*entity.Usuario, error)

	// Count returns the number of stored users.
	Count(ctx context.Context) (int64, error)
}
