package memory

import (
	"context"
	"sort"

	"recetario/internal/domain/entity"
	"recetario/internal/domain/repository"
)

// recetaRepository implements the domain.RecetaRepository interface over the
// in-memory store. With inTx set the locking is skipped, because the
// transaction manager already holds the store's write lock.
type recetaRepository struct {
	store *Store
	inTx  bool
}

// NewRecetaRepository is the constructor for recetaRepository.
func NewRecetaRepository(store *Store) repository.RecetaRepository {
	return &recetaRepository{store: store}
}

// lock takes the store's write lock and returns its release, as a no-op
// inside a transaction.
func (repo *recetaRepository) lock() func() {
	if repo.inTx {
		return func() {}
	}
	repo.store.mu.Lock()

	return repo.store.mu.Unlock
}

// rlock takes the store's read lock and returns its release, as a no-op
// inside a transaction.
func (repo *recetaRepository) rlock() func() {
	if repo.inTx {
		return func() {}
	}
	repo.store.mu.RLock()

	return repo.store.mu.RUnlock
}

// Create assigns the next ID and inserts the recipe. The author reference is
// stored as given; existence is not validated.
func (repo *recetaRepository) Create(_ context.Context, receta *entity.Receta) error {
	defer repo.lock()()
	s := repo.store

	receta.ID = s.nextRecetaID
	s.nextRecetaID++
	s.recetas[receta.ID] = *receta

	return nil
}

// FindByID retrieves a single recipe by its unique ID.
func (repo *recetaRepository) FindByID(_ context.Context, id uint) (*entity.Receta, error) {
	defer repo.rlock()()

	receta, ok := repo.store.recetas[id]
	if !ok {
		return nil, repository.ErrRecetaNotFound
	}

	return &receta, nil
}

// List returns all recipes ordered by ascending ID.
func (repo *recetaRepository) List(_ context.Context) ([]*entity.Receta, error) {
	defer repo.rlock()()
	s := repo.store

	recetas := make([]*entity.Receta, 0, len(s.recetas))
	for id := range s.recetas {
		receta := s.recetas[id]
		recetas = append(recetas, &receta)
	}
	sort.Slice(recetas, func(i, j int) bool { return recetas[i].ID < recetas[j].ID })

	return recetas, nil
}

// FindByAutor returns all recipes authored by the given user, ordered by
// ascending ID.
func (repo *recetaRepository) FindByAutor(_ context.Context, autorID uint) ([]*entity.Receta, error) {
	defer repo.rlock()()
	s := repo.store

	recetas := make([]*entity.Receta, 0)
	for id := range s.recetas {
		if s.recetas[id].AutorID != autorID {
			continue
		}
		receta := s.recetas[id]
		recetas = append(recetas, &receta)
	}
	sort.Slice(recetas, func(i, j int) bool { return recetas[i].ID < recetas[j].ID })

	return recetas, nil
}

// Update overwrites the stored row with the given recipe's fields.
func (repo *recetaRepository) Update(_ context.Context, receta *entity.Receta) error {
	defer repo.lock()()
	s := repo.store

	if _, ok := s.recetas[receta.ID]; !ok {
		return repository.ErrRecetaNotFound
	}
	s.recetas[receta.ID] = *receta

	return nil
}

// Delete removes the recipe with the given ID.
func (repo *recetaRepository) Delete(_ context.Context, id uint) (bool, error) {
	defer repo.lock()()
	s := repo.store

	if _, ok := s.recetas[id]; !ok {
		return false, nil
	}
	delete(s.recetas, id)

	return true, nil
}

// Count returns the number of stored recipes.
func (repo *recetaRepository) Count(_ context.Context) (int64, error) {
	defer repo.rlock()()

	return int64(len(repo.store.recetas)), nil
}
