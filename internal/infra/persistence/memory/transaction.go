package memory

import (
	"context"

	"recetario/internal/domain/repository"
)

// memTransactionManager implements the domain's TransactionManager for the
// in-memory store. Atomicity comes from snapshot-and-restore under the
// store's write lock: the lock is held for the whole callback, so no other
// reader or writer can observe intermediate state, and restoring the
// snapshot on failure can only undo the transaction's own writes.
type memTransactionManager struct {
	store *Store
}

// memRepositoryFactory hands out repositories that skip the store's
// locking, because Execute already holds the write lock for the whole
// transaction.
type memRepositoryFactory struct {
	store *Store
}

// UserRepo returns a user repository bound to the running transaction.
func (f *memRepositoryFactory) UserRepo() repository.UserRepository {
	return &userRepository{store: f.store, inTx: true}
}

// RecetaRepo returns a recipe repository bound to the running transaction.
func (f *memRepositoryFactory) RecetaRepo() repository.RecetaRepository {
	return &recetaRepository{store: f.store, inTx: true}
}

// NewTransactionManager is the constructor for memTransactionManager.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &memTransactionManager{store: store}
}

// Execute runs fn atomically against the store: on error or panic the state
// observed before the call is restored, so no partial write survives. The
// callback must only touch the store through the provided factory; going
// through an outside repository would deadlock on the held lock.
func (tm *memTransactionManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	s := tm.store
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.takeSnapshot()

	defer func() {
		if r := recover(); r != nil {
			s.restore(snap)
			panic(r)
		}
	}()

	if err := fn(&memRepositoryFactory{store: s}); err != nil {
		s.restore(snap)

		return err
	}

	return nil
}
