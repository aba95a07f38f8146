// Package memory contains a non-persistent implementation of the persistence
// layer backed by in-process maps. It implements the same repository
// contracts as the sqlite backend and is selected by configuration.
package memory

import (
	"sync"

	"recetario/internal/domain/entity"
)

// Store owns all in-memory rows. All access goes through the mutex, and all
// reads return copies so callers never hold handles into storage. During a
// transaction the manager holds the write lock for the whole callback, so
// intermediate state is never observable and a rollback can only undo the
// transaction's own writes.
type Store struct {
	mu sync.RWMutex

	usuarios map[uint]entity.Usuario
	recetas  map[uint]entity.Receta

	nextUsuarioID uint
	nextRecetaID  uint
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		usuarios:      make(map[uint]entity.Usuario),
		recetas:       make(map[uint]entity.Receta),
		nextUsuarioID: 1,
		nextRecetaID:  1,
	}
}

// snapshot captures the full store state for transactional rollback.
type snapshot struct {
	usuarios      map[uint]entity.Usuario
	recetas       map[uint]entity.Receta
	nextUsuarioID uint
	nextRecetaID  uint
}

// takeSnapshot copies the current state. Callers must hold the write lock.
func (s *Store) takeSnapshot() snapshot {
	usuarios := make(map[uint]entity.Usuario, len(s.usuarios))
	for id, u := range s.usuarios {
		usuarios[id] = u
	}
	recetas := make(map[uint]entity.Receta, len(s.recetas))
	for id, r := range s.recetas {
		recetas[id] = r
	}

	return snapshot{
		usuarios:      usuarios,
		recetas:       recetas,
		nextUsuarioID: s.nextUsuarioID,
		nextRecetaID:  s.nextRecetaID,
	}
}

// restore replaces the state with a previously taken snapshot. Callers must
// hold the write lock.
func (s *Store) restore(snap snapshot) {
	s.usuarios = snap.usuarios
	s.recetas = snap.recetas
	s.nextUsuarioID = snap.nextUsuarioID
	s.nextRecetaID = snap.nextRecetaID
}
