// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"recetario/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Phone    int64  `json:"phone"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
//
// Register and Login return the full stored record, password digest
// included. That is the published contract of this API; strip the digest
// here once the contract allows it.
type UserUsecase interface {
	// Register creates a new user after checking username/email uniqueness.
	Register(ctx context.Context, input *RegisterInput) (*entity.Usuario, error)

	// Login verifies credentials and returns the matching user.
	Login(ctx context.Context, input *LoginInput) (*entity.Usuario, error)

	// List returns all users ordered by ascending ID.
	List(ctx context.Context) ([]*entity.Usuario, error)

	// GetByID returns a single user.
	GetByID(ctx context.Context, id uint) (*entity.Usuario, error)
}
