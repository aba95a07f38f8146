package entity

// Receta is a single catalog recipe. Ingredients and preparation steps are
// stored as opaque delimited text, not structured collections.
type Receta struct {
	ID               uint   `json:"id"`                // Store-assigned identifier, unique and ascending.
	Titulo           string `json:"titulo"`            // Recipe title.
	Descripcion      string `json:"descripcion"`       // Freeform description.
	Ingredientes     string `json:"ingredientes"`      // Comma-delimited ingredient list, opaque text.
	PasosPreparacion string `json:"pasos_preparacion"` // Newline-delimited steps, opaque text.
	AutorID          uint   `json:"autor_id"`          // References a Usuario id; not enforced at write time.
}
