// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Usuario is the core account entity. The store assigns its integer ID on
// creation; username and email are each unique across all rows.
type Usuario struct {
	ID       uint   `json:"id"`       // Store-assigned identifier, unique and ascending.
	Username string `json:"username"` // Login identifier, unique across all users.
	Email    string `json:"email"`    // Contact email, unique across all users.
	Password string `json:"password"` // Bcrypt digest of the password, never the plaintext.
	Phone    int64  `json:"phone"`    // Contact phone number.

	// Recetas is the reverse side of the author relationship. It is a
	// derived read view, populated only when explicitly loaded.
	Recetas []Receta `json:"recetas,omitempty"`
}
